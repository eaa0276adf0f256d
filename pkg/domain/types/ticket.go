package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type TicketID string

func (x TicketID) String() string {
	return string(x)
}

// NewTicketID returns a UUIDv7. The time-ordered prefix keeps IDs roughly
// sortable by creation time while the random tail makes collision
// probability negligible.
func NewTicketID() TicketID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return TicketID(id.String())
}

func (x TicketID) Validate() error {
	if x == EmptyTicketID {
		return goerr.New("empty ticket ID")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "invalid ticket ID format", goerr.V("id", x))
	}
	return nil
}

// Short returns the leading segment of the ID, used in provisioned channel
// names where the full UUID would be unwieldy.
func (x TicketID) Short() string {
	if len(x) < 8 {
		return string(x)
	}
	return string(x[:8])
}

const (
	EmptyTicketID TicketID = ""
)

type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

var ticketStatusLabels = map[TicketStatus]string{
	TicketStatusOpen:   "🎫 Open",
	TicketStatusClosed: "🔒 Closed",
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) Label() string {
	return ticketStatusLabels[s]
}

func (s TicketStatus) Validate() error {
	switch s {
	case TicketStatusOpen, TicketStatusClosed:
		return nil
	}
	return goerr.New("invalid ticket status", goerr.V("status", s))
}
