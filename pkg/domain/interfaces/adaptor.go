package interfaces

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack Web API the bot touches.
type SlackClient interface {
	AuthTest() (*slack.AuthTestResponse, error)
	GetTeamInfo() (*slack.TeamInfo, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	CreateConversationContext(ctx context.Context, params slack.CreateConversationParams) (*slack.Channel, error)
	InviteUsersToConversationContext(ctx context.Context, channelID string, users ...string) (*slack.Channel, error)
	SetTopicOfConversationContext(ctx context.Context, channelID string, topic string) (*slack.Channel, error)
	ArchiveConversationContext(ctx context.Context, channelID string) error
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
}
