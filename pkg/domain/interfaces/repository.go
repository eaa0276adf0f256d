package interfaces

import (
	"context"
	"time"

	"github.com/santara-lab/santara/pkg/domain/model/ticket"
)

// StoreStats is the persistent bookkeeping of a ticket store.
// TotalCreated counts every ticket ever recorded and survives cleanup of
// the records themselves.
type StoreStats struct {
	SchemaVersion int       `json:"schema_version"`
	TotalCreated  int64     `json:"total_tickets_created"`
	LastBackup    time.Time `json:"last_backup,omitempty"`
}

// TicketStore persists the whole ticket set wholesale. Implementations
// replace the entire stored set on SaveAll; there is no per-record write.
type TicketStore interface {
	LoadAll(ctx context.Context) ([]ticket.Ticket, error)
	SaveAll(ctx context.Context, tickets []ticket.Ticket) error
	RecordCreated(ctx context.Context) (int64, error)
	Backup(ctx context.Context) (string, error)
	Stats(ctx context.Context) (StoreStats, error)
}
