package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/santara-lab/santara/pkg/domain/interfaces"
	"github.com/santara-lab/santara/pkg/domain/model/ticket"
	"github.com/santara-lab/santara/pkg/utils/clock"
)

// Client is an in-memory TicketStore for tests and ephemeral runs.
type Client struct {
	mu      sync.RWMutex
	tickets []ticket.Ticket
	created int64
	stats   interfaces.StoreStats
	backups int
}

var _ interfaces.TicketStore = &Client{}

func New() *Client {
	return &Client{
		stats: interfaces.StoreStats{SchemaVersion: 1},
	}
}

func (r *Client) LoadAll(ctx context.Context) ([]ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ticket.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out, nil
}

func (r *Client) SaveAll(ctx context.Context, tickets []ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets = make([]ticket.Ticket, len(tickets))
	copy(r.tickets, tickets)
	return nil
}

func (r *Client) RecordCreated(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.created++
	r.stats.TotalCreated = r.created
	return r.created, nil
}

func (r *Client) Backup(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backups++
	r.stats.LastBackup = clock.Now(ctx)
	return fmt.Sprintf("memory://backup/%d", r.backups), nil
}

func (r *Client) Stats(ctx context.Context) (interfaces.StoreStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.stats, nil
}
