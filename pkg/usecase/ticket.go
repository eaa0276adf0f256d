package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/domain/model/category"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/domain/model/ticket"
	"github.com/santara-lab/santara/pkg/domain/types"
	slacksvc "github.com/santara-lab/santara/pkg/service/slack"
	"github.com/santara-lab/santara/pkg/utils/async"
	"github.com/santara-lab/santara/pkg/utils/clock"
	"github.com/santara-lab/santara/pkg/utils/logging"
)

// CreateTicket opens a ticket for the user: quota check, channel
// provisioning, durable persist, then the intake message. Nothing is
// persisted when provisioning fails.
func (x *UseCases) CreateTicket(ctx context.Context, userID types.UserID, key types.CategoryKey, details string) (*ticket.Ticket, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	mu := x.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	open := x.countOpen(userID)
	if open >= x.openQuota {
		return nil, goerr.Wrap(errs.ErrQuotaExceeded, "create rejected",
			goerr.V("user_id", userID),
			goerr.V("open", open),
			goerr.V("quota", x.openQuota))
	}

	cat, known := x.categories.Lookup(key)
	if !known {
		logging.From(ctx).Warn("ticket created with unregistered category",
			"category", key,
			"user_id", userID)
	}

	tk := ticket.New(ctx, userID, x.slackSvc.TeamID(), key)

	userName := x.slackSvc.UserDisplayName(ctx, userID)
	channelID, err := x.slackSvc.CreateTicketChannel(ctx,
		channelName(cat, userName, tk.ID),
		userID, x.supportUsers)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to provision ticket channel",
			goerr.V("ticket_id", tk.ID))
	}
	tk.ChannelID = channelID

	x.ticketMutex.Lock()
	x.tickets = append(x.tickets, tk)
	if err := x.persistLocked(ctx); err != nil {
		// Drop the unpersisted record and release the channel.
		x.tickets = x.tickets[:len(x.tickets)-1]
		x.ticketMutex.Unlock()
		if archiveErr := x.slackSvc.ArchiveChannel(ctx, channelID); archiveErr != nil {
			errs.Handle(ctx, archiveErr)
		}
		return nil, goerr.Wrap(err, "failed to persist ticket",
			goerr.V("ticket_id", tk.ID))
	}
	x.ticketMutex.Unlock()

	if _, err := x.store.RecordCreated(ctx); err != nil {
		errs.Handle(ctx, err)
	}

	// Cosmetic setup after the record is durable.
	topic := fmt.Sprintf("Ticket %s | %s | opened by %s", tk.ID.Short(), cat.Label, userName)
	if err := x.slackSvc.SetChannelTopic(ctx, channelID, topic); err != nil {
		errs.Handle(ctx, err)
	}
	if err := x.slackSvc.PostMessage(ctx, channelID, intakeMessage(cat, userID, details)); err != nil {
		errs.Handle(ctx, err)
	}
	if x.archiveChannel != types.EmptyChannelID {
		notice := fmt.Sprintf("Ticket `%s` (%s) opened by <@%s> in <#%s>",
			tk.ID.Short(), cat.Label, userID, channelID)
		if err := x.slackSvc.PostMessage(ctx, x.archiveChannel, notice); err != nil {
			errs.Handle(ctx, err)
		}
	}

	logging.From(ctx).Info("ticket created",
		"ticket_id", tk.ID,
		"user_id", userID,
		"category", key,
		"channel_id", channelID)
	return &tk, nil
}

func channelName(cat category.Category, userName string, id types.TicketID) string {
	prefix := cat.ChannelPrefix
	if prefix == "" {
		prefix = "ticket"
	}
	return slacksvc.SanitizeChannelName(fmt.Sprintf("%s-%s-%s", prefix, userName, id.Short()))
}

func intakeMessage(cat category.Category, userID types.UserID, details string) string {
	var sb strings.Builder

	label := cat.Label
	if cat.Icon != "" {
		label = cat.Icon + " " + label
	}
	fmt.Fprintf(&sb, "Hello <@%s>, your *%s* ticket is open.\n", userID, label)
	if cat.Description != "" {
		sb.WriteString(cat.Description + "\n")
	}

	if details != "" {
		fmt.Fprintf(&sb, "\n> %s\n", strings.ReplaceAll(details, "\n", "\n> "))
	}

	if len(cat.Fields) > 0 {
		sb.WriteString("\nPlease provide:\n")
		for _, f := range cat.Fields {
			line := "• " + f.Label
			if f.Required {
				line += " (required)"
			}
			if f.Hint != "" {
				line += " (" + f.Hint + ")"
			}
			sb.WriteString(line + "\n")
		}
	}

	sb.WriteString("\nA support member will be with you shortly. Use `/ticket close` when resolved.")
	return sb.String()
}

func (x *UseCases) countOpen(userID types.UserID) int {
	x.ticketMutex.RLock()
	defer x.ticketMutex.RUnlock()

	n := 0
	for _, tk := range x.tickets {
		if tk.UserID == userID && tk.IsOpen() {
			n++
		}
	}
	return n
}

// CloseTicket finishes a ticket. The closed record is durable before any
// destructive action: transcript delivery and channel archival are best
// effort and cannot lose the closure.
func (x *UseCases) CloseTicket(ctx context.Context, channelID types.ChannelID, closedBy types.UserID, reason string) (*ticket.Ticket, error) {
	x.ticketMutex.Lock()
	idx := -1
	for i := range x.tickets {
		if x.tickets[i].ChannelID == channelID {
			idx = i
			break
		}
	}
	if idx < 0 {
		x.ticketMutex.Unlock()
		return nil, goerr.Wrap(errs.ErrTicketNotFound, "no ticket for channel",
			goerr.V("channel_id", channelID))
	}

	// The mirror must not show a closed state the store never accepted:
	// restore the prior record if the write-through fails.
	prev := x.tickets[idx]
	if err := x.tickets[idx].Close(ctx, closedBy, reason, x.purgeDelay); err != nil {
		x.ticketMutex.Unlock()
		return nil, err
	}

	if err := x.persistLocked(ctx); err != nil {
		x.tickets[idx] = prev
		x.ticketMutex.Unlock()
		return nil, goerr.Wrap(err, "failed to persist closed ticket",
			goerr.V("ticket_id", prev.ID))
	}
	closed := x.tickets[idx]
	x.ticketMutex.Unlock()

	if x.transcript != nil {
		if err := x.transcript.Publish(ctx, x.archiveChannel, &closed); err != nil {
			errs.Handle(ctx, goerr.Wrap(err, "failed to publish transcript",
				goerr.V("ticket_id", closed.ID)))
		}
	}

	farewell := fmt.Sprintf("Ticket `%s` closed by <@%s>. This channel will be archived shortly.",
		closed.ID.Short(), closedBy)
	if err := x.slackSvc.PostMessage(ctx, channelID, farewell); err != nil {
		errs.Handle(ctx, err)
	}

	// The sweep also catches this purge if the process dies first.
	delay := x.purgeDelay
	async.Dispatch(ctx, func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		_, err := x.Sweep(ctx)
		return err
	})

	logging.From(ctx).Info("ticket closed",
		"ticket_id", closed.ID,
		"closed_by", closedBy,
		"reason", reason)
	return &closed, nil
}

// Sweep archives channels of closed tickets whose purge time has
// passed. It backs both the post-close timer and the periodic recovery
// pass after restarts.
func (x *UseCases) Sweep(ctx context.Context) (int, error) {
	now := clock.Now(ctx)

	x.ticketMutex.Lock()
	var due []ticket.Ticket
	for _, tk := range x.tickets {
		if !tk.IsOpen() && tk.ChannelPurgeAt != nil && !tk.ChannelPurgeAt.After(now) {
			due = append(due, tk)
		}
	}
	x.ticketMutex.Unlock()

	archived := 0
	for _, tk := range due {
		if err := x.slackSvc.ArchiveChannel(ctx, tk.ChannelID); err != nil {
			// Leave the purge mark so the next sweep retries.
			errs.Handle(ctx, err)
			continue
		}

		x.ticketMutex.Lock()
		for i := range x.tickets {
			if x.tickets[i].ID == tk.ID {
				x.tickets[i].ChannelPurgeAt = nil
				break
			}
		}
		if err := x.persistLocked(ctx); err != nil {
			x.ticketMutex.Unlock()
			return archived, err
		}
		x.ticketMutex.Unlock()
		archived++
	}

	if archived > 0 {
		logging.From(ctx).Info("archived ticket channels", "count", archived)
	}
	return archived, nil
}

// RunSweeper runs Sweep on a fixed interval until the context ends.
func (x *UseCases) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(x.sweepInterval)
	defer ticker.Stop()

	logging.From(ctx).Info("channel sweeper started", "interval", x.sweepInterval)
	for {
		select {
		case <-ctx.Done():
			logging.From(ctx).Info("channel sweeper stopped")
			return
		case <-ticker.C:
			if _, err := x.Sweep(ctx); err != nil {
				errs.Handle(ctx, err)
			}
		}
	}
}
