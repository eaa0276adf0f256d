package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/domain/model/ticket"
	"github.com/santara-lab/santara/pkg/domain/types"
	"github.com/santara-lab/santara/pkg/utils/clock"
	"github.com/santara-lab/santara/pkg/utils/logging"
)

func (x *UseCases) GetTicket(ctx context.Context, id types.TicketID) (*ticket.Ticket, error) {
	x.ticketMutex.RLock()
	defer x.ticketMutex.RUnlock()

	for i := range x.tickets {
		if x.tickets[i].ID == id {
			tk := x.tickets[i]
			return &tk, nil
		}
	}
	return nil, goerr.Wrap(errs.ErrTicketNotFound, "no such ticket", goerr.V("ticket_id", id))
}

func (x *UseCases) GetTicketByChannel(ctx context.Context, channelID types.ChannelID) (*ticket.Ticket, error) {
	x.ticketMutex.RLock()
	defer x.ticketMutex.RUnlock()

	for i := range x.tickets {
		if x.tickets[i].ChannelID == channelID {
			tk := x.tickets[i]
			return &tk, nil
		}
	}
	return nil, goerr.Wrap(errs.ErrTicketNotFound, "no ticket for channel", goerr.V("channel_id", channelID))
}

func (x *UseCases) GetUserTickets(ctx context.Context, userID types.UserID, openOnly bool) []ticket.Ticket {
	x.ticketMutex.RLock()
	defer x.ticketMutex.RUnlock()

	var out []ticket.Ticket
	for _, tk := range x.tickets {
		if tk.UserID != userID {
			continue
		}
		if openOnly && !tk.IsOpen() {
			continue
		}
		out = append(out, tk)
	}
	return out
}

// ListTickets returns tickets matching the status filter. An empty
// filter returns everything.
func (x *UseCases) ListTickets(ctx context.Context, status types.TicketStatus) []ticket.Ticket {
	x.ticketMutex.RLock()
	defer x.ticketMutex.RUnlock()

	var out []ticket.Ticket
	for _, tk := range x.tickets {
		if status != "" && tk.Status != status {
			continue
		}
		out = append(out, tk)
	}
	return out
}

// Stats aggregates the live set with the store's lifetime counters.
type Stats struct {
	Open          int           `json:"open"`
	Closed        int           `json:"closed"`
	TotalCreated  int64         `json:"total_created"`
	LastBackup    time.Time     `json:"last_backup,omitempty"`
	AvgResolution time.Duration `json:"avg_resolution_ns,omitempty"`
}

func (x *UseCases) Stats(ctx context.Context) (Stats, error) {
	storeStats, err := x.store.Stats(ctx)
	if err != nil {
		return Stats{}, goerr.Wrap(err, "failed to read store stats")
	}

	x.ticketMutex.RLock()
	defer x.ticketMutex.RUnlock()

	stats := Stats{
		TotalCreated: storeStats.TotalCreated,
		LastBackup:   storeStats.LastBackup,
	}

	var totalResolution time.Duration
	for _, tk := range x.tickets {
		if tk.IsOpen() {
			stats.Open++
		} else {
			stats.Closed++
			totalResolution += tk.Duration()
		}
	}
	if stats.Closed > 0 {
		stats.AvgResolution = totalResolution / time.Duration(stats.Closed)
	}
	return stats, nil
}

// Cleanup hard-deletes closed tickets older than the retention window.
// Open tickets are never removed regardless of age.
func (x *UseCases) Cleanup(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := clock.Now(ctx).Add(-olderThan)

	x.ticketMutex.Lock()
	defer x.ticketMutex.Unlock()

	kept := x.tickets[:0:0]
	removed := 0
	for _, tk := range x.tickets {
		if !tk.IsOpen() && tk.ClosedAt != nil && tk.ClosedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, tk)
	}
	if removed == 0 {
		return 0, nil
	}

	x.tickets = kept
	if err := x.persistLocked(ctx); err != nil {
		return 0, goerr.Wrap(err, "failed to persist after cleanup")
	}

	logging.From(ctx).Info("cleaned up old tickets",
		"removed", removed,
		"remaining", len(kept))
	return removed, nil
}

func (x *UseCases) Backup(ctx context.Context) (string, error) {
	return x.store.Backup(ctx)
}
