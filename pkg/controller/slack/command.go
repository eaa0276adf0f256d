package slack

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/domain/model/ticket"
	"github.com/santara-lab/santara/pkg/domain/types"
	"github.com/santara-lab/santara/pkg/usecase"
	"github.com/santara-lab/santara/pkg/utils/logging"
	"github.com/slack-go/slack"
)

// TicketUseCases is what the slash command controller needs from the
// lifecycle layer.
type TicketUseCases interface {
	CreateTicket(ctx context.Context, userID types.UserID, key types.CategoryKey, details string) (*ticket.Ticket, error)
	CloseTicket(ctx context.Context, channelID types.ChannelID, closedBy types.UserID, reason string) (*ticket.Ticket, error)
	GetTicketByChannel(ctx context.Context, channelID types.ChannelID) (*ticket.Ticket, error)
	GetUserTickets(ctx context.Context, userID types.UserID, openOnly bool) []ticket.Ticket
	Stats(ctx context.Context) (usecase.Stats, error)
}

type Controller struct {
	uc TicketUseCases
}

func New(uc TicketUseCases) *Controller {
	return &Controller{uc: uc}
}

// HandleCommand dispatches one `/ticket` slash command and returns the
// ephemeral reply text shown to the invoking user.
func (x *Controller) HandleCommand(ctx context.Context, cmd slack.SlashCommand) (string, error) {
	ctx = logging.With(ctx, logging.From(ctx).With(
		"user_id", cmd.UserID,
		"channel_id", cmd.ChannelID,
		"text", cmd.Text))

	args := strings.Fields(cmd.Text)
	if len(args) == 0 {
		return usage(), nil
	}

	switch args[0] {
	case "create", "open":
		if len(args) < 2 {
			return "Usage: `/ticket create <category> [details]`", nil
		}
		return x.handleCreate(ctx, cmd, types.CategoryKey(args[1]), strings.Join(args[2:], " "))

	case "close":
		return x.handleClose(ctx, cmd, strings.Join(args[1:], " "))

	case "status":
		return x.handleStatus(ctx, cmd)

	case "help":
		return usage(), nil

	default:
		return "", goerr.Wrap(errs.ErrUnknownCommand, "unknown subcommand",
			goerr.V("subcommand", args[0]))
	}
}

func (x *Controller) handleCreate(ctx context.Context, cmd slack.SlashCommand, key types.CategoryKey, details string) (string, error) {
	tk, err := x.uc.CreateTicket(ctx, types.UserID(cmd.UserID), key, details)
	if err != nil {
		if errors.Is(err, errs.ErrQuotaExceeded) {
			open := x.uc.GetUserTickets(ctx, types.UserID(cmd.UserID), true)
			if len(open) > 0 {
				return fmt.Sprintf("You already have an open ticket: <#%s>. Close it before opening another.",
					open[0].ChannelID), nil
			}
			return "You already have an open ticket. Close it before opening another.", nil
		}
		return "", err
	}

	return fmt.Sprintf("Your ticket `%s` is ready: <#%s>", tk.ID.Short(), tk.ChannelID), nil
}

func (x *Controller) handleClose(ctx context.Context, cmd slack.SlashCommand, reason string) (string, error) {
	tk, err := x.uc.CloseTicket(ctx, types.ChannelID(cmd.ChannelID), types.UserID(cmd.UserID), reason)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTicketNotFound):
			return "This channel is not a ticket channel.", nil
		case errors.Is(err, errs.ErrTicketAlreadyClosed):
			return "This ticket is already closed.", nil
		}
		return "", err
	}

	return fmt.Sprintf("Ticket `%s` closed.", tk.ID.Short()), nil
}

func (x *Controller) handleStatus(ctx context.Context, cmd slack.SlashCommand) (string, error) {
	// Inside a ticket channel, report that ticket. Elsewhere, report the
	// caller's own tickets and the workspace totals.
	if tk, err := x.uc.GetTicketByChannel(ctx, types.ChannelID(cmd.ChannelID)); err == nil {
		line := fmt.Sprintf("Ticket `%s` (%s): %s, opened by <@%s> %s",
			tk.ID.Short(), tk.Category, tk.Status.Label(), tk.UserID,
			humanize.Time(tk.CreatedAt))
		if !tk.IsOpen() {
			line += fmt.Sprintf(", closed by <@%s>", tk.ClosedBy)
		}
		return line, nil
	}

	stats, err := x.uc.Stats(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tickets: %d open, %d closed, %d created in total.\n",
		stats.Open, stats.Closed, stats.TotalCreated)

	mine := x.uc.GetUserTickets(ctx, types.UserID(cmd.UserID), true)
	if len(mine) == 0 {
		sb.WriteString("You have no open tickets.")
	} else {
		sb.WriteString("Your open tickets:\n")
		for _, tk := range mine {
			fmt.Fprintf(&sb, "• `%s` (%s) <#%s>\n", tk.ID.Short(), tk.Category, tk.ChannelID)
		}
	}
	return sb.String(), nil
}

func usage() string {
	return strings.Join([]string{
		"`/ticket create <category> [details]` open a new ticket",
		"`/ticket close [reason]` close the ticket of this channel",
		"`/ticket status` show ticket status",
	}, "\n")
}
