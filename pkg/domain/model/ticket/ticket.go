package ticket

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/domain/types"
	"github.com/santara-lab/santara/pkg/utils/clock"
)

// Ticket is a single support request. The record is created once, mutated
// exactly once (by Close) and never physically deleted except by the
// retention cleanup.
type Ticket struct {
	ID        types.TicketID    `json:"id"`
	UserID    types.UserID      `json:"user_id"`
	TeamID    types.TeamID      `json:"team_id"`
	ChannelID types.ChannelID   `json:"channel_id"`
	Category  types.CategoryKey `json:"category"`
	Status    types.TicketStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`

	// Closure fields are set exactly once, all together, by Close. They are
	// absent iff the ticket is open.
	ClosedAt    *time.Time   `json:"closed_at,omitempty"`
	ClosedBy    types.UserID `json:"closed_by,omitempty"`
	CloseReason string       `json:"close_reason,omitempty"`

	// ChannelPurgeAt is the due time for archiving the provisioned channel
	// after closure. Persisting it lets a restart-safe sweep finish the job
	// when the in-process timer is lost.
	ChannelPurgeAt *time.Time `json:"channel_purge_at,omitempty"`
}

func New(ctx context.Context, userID types.UserID, teamID types.TeamID, category types.CategoryKey) Ticket {
	return Ticket{
		ID:        types.NewTicketID(),
		UserID:    userID,
		TeamID:    teamID,
		Category:  category,
		Status:    types.TicketStatusOpen,
		CreatedAt: clock.Now(ctx),
	}
}

func (x *Ticket) IsOpen() bool {
	return x.Status == types.TicketStatusOpen
}

// Close transitions the ticket to its terminal state. The transition is
// rejected for already-closed tickets and leaves the record untouched in
// that case.
func (x *Ticket) Close(ctx context.Context, closedBy types.UserID, reason string, purgeDelay time.Duration) error {
	if x.Status == types.TicketStatusClosed {
		return goerr.Wrap(errs.ErrTicketAlreadyClosed, "close rejected",
			goerr.V("ticket_id", x.ID),
			goerr.V("closed_at", x.ClosedAt))
	}

	now := clock.Now(ctx)
	purgeAt := now.Add(purgeDelay)

	x.Status = types.TicketStatusClosed
	x.ClosedAt = &now
	x.ClosedBy = closedBy
	x.CloseReason = reason
	x.ChannelPurgeAt = &purgeAt

	return nil
}

// Duration returns the lifetime of a closed ticket, zero while open.
func (x *Ticket) Duration() time.Duration {
	if x.ClosedAt == nil {
		return 0
	}
	return x.ClosedAt.Sub(x.CreatedAt)
}

func (x *Ticket) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid ticket ID")
	}
	if err := x.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user ID")
	}
	if err := x.Status.Validate(); err != nil {
		return goerr.Wrap(err, "invalid status")
	}
	if x.CreatedAt.IsZero() {
		return goerr.New("created_at is not set", goerr.V("ticket_id", x.ID))
	}

	closed := x.Status == types.TicketStatusClosed
	hasClosure := x.ClosedAt != nil && x.ClosedBy != ""
	if closed && !hasClosure {
		return goerr.New("closed ticket without closure fields", goerr.V("ticket_id", x.ID))
	}
	if !closed && (x.ClosedAt != nil || x.ClosedBy != "" || x.CloseReason != "") {
		return goerr.New("open ticket with closure fields", goerr.V("ticket_id", x.ID))
	}

	return nil
}
