package types

import "github.com/m-mizutani/goerr/v2"

// UserID is a chat platform user identifier (Slack member ID).
type UserID string

func (x UserID) String() string { return string(x) }

func (x UserID) Validate() error {
	if x == "" {
		return goerr.New("empty user ID")
	}
	return nil
}

// TeamID identifies the owning workspace.
type TeamID string

func (x TeamID) String() string { return string(x) }

// ChannelID identifies a conversation channel provisioned for a ticket.
type ChannelID string

func (x ChannelID) String() string { return string(x) }

const EmptyChannelID ChannelID = ""

// CategoryKey selects display metadata and routing for a ticket. Unknown
// keys are tolerated; lookup falls back to the raw key as label.
type CategoryKey string

func (x CategoryKey) String() string { return string(x) }
