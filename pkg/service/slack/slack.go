package slack

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/domain/interfaces"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/domain/types"
	"github.com/santara-lab/santara/pkg/utils/logging"
	"github.com/slack-go/slack"
)

// Service wraps the Slack Web API with the workspace metadata resolved at
// startup. Construction fails fast on a bad token so misconfiguration is
// caught before the server starts serving.
type Service struct {
	client     interfaces.SlackClient
	botUserID  types.UserID
	teamID     types.TeamID
	teamDomain string

	nameMutex sync.RWMutex
	nameCache map[types.UserID]string
}

func New(client interfaces.SlackClient) (*Service, error) {
	auth, err := client.AuthTest()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to auth test slack client")
	}

	s := &Service{
		client:    client,
		botUserID: types.UserID(auth.UserID),
		teamID:    types.TeamID(auth.TeamID),
		nameCache: make(map[types.UserID]string),
	}

	if team, err := client.GetTeamInfo(); err == nil {
		s.teamDomain = team.Domain
	}

	return s, nil
}

func (x *Service) Client() interfaces.SlackClient { return x.client }
func (x *Service) BotUserID() types.UserID        { return x.botUserID }
func (x *Service) TeamID() types.TeamID           { return x.teamID }
func (x *Service) TeamDomain() string             { return x.teamDomain }

var channelNameInvalid = regexp.MustCompile(`[^a-z0-9_-]+`)

// SanitizeChannelName lowers a candidate name into Slack's channel name
// charset and the 80 character limit.
func SanitizeChannelName(name string) string {
	name = strings.ToLower(name)
	name = channelNameInvalid.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "ticket"
	}
	if len(name) > 80 {
		name = name[:80]
	}
	return name
}

// CreateTicketChannel provisions a private channel and invites the
// requester plus the support members. A failure to reach the requester
// is fatal because the ticket would be unusable; support member invites
// are best effort.
func (x *Service) CreateTicketChannel(ctx context.Context, name string, requester types.UserID, support []types.UserID) (types.ChannelID, error) {
	ch, err := x.client.CreateConversationContext(ctx, slack.CreateConversationParams{
		ChannelName: SanitizeChannelName(name),
		IsPrivate:   true,
		TeamID:      x.teamID.String(),
	})
	if err != nil {
		return types.EmptyChannelID, goerr.Wrap(err, "failed to create ticket channel",
			goerr.V("name", name))
	}
	channelID := types.ChannelID(ch.ID)

	if _, err := x.client.InviteUsersToConversationContext(ctx, ch.ID, requester.String()); err != nil {
		return types.EmptyChannelID, goerr.Wrap(err, "failed to invite requester",
			goerr.V("channel_id", channelID),
			goerr.V("user_id", requester))
	}

	for _, member := range support {
		if member == requester || member == x.botUserID {
			continue
		}
		if _, err := x.client.InviteUsersToConversationContext(ctx, ch.ID, member.String()); err != nil {
			errs.Handle(ctx, goerr.Wrap(err, "failed to invite support member",
				goerr.V("channel_id", channelID),
				goerr.V("user_id", member)))
		}
	}

	return channelID, nil
}

func (x *Service) SetChannelTopic(ctx context.Context, channelID types.ChannelID, topic string) error {
	if _, err := x.client.SetTopicOfConversationContext(ctx, channelID.String(), topic); err != nil {
		return goerr.Wrap(err, "failed to set channel topic",
			goerr.V("channel_id", channelID))
	}
	return nil
}

func (x *Service) ArchiveChannel(ctx context.Context, channelID types.ChannelID) error {
	if err := x.client.ArchiveConversationContext(ctx, channelID.String()); err != nil {
		return goerr.Wrap(err, "failed to archive channel",
			goerr.V("channel_id", channelID))
	}
	return nil
}

func (x *Service) PostMessage(ctx context.Context, channelID types.ChannelID, text string) error {
	if _, _, err := x.client.PostMessageContext(ctx, channelID.String(),
		slack.MsgOptionText(text, false)); err != nil {
		return goerr.Wrap(err, "failed to post message",
			goerr.V("channel_id", channelID))
	}
	return nil
}

// UserDisplayName resolves a member ID to a readable name, falling back
// to the raw ID when the lookup fails. Results are cached for the
// process lifetime.
func (x *Service) UserDisplayName(ctx context.Context, userID types.UserID) string {
	x.nameMutex.RLock()
	name, ok := x.nameCache[userID]
	x.nameMutex.RUnlock()
	if ok {
		return name
	}

	user, err := x.client.GetUserInfoContext(ctx, userID.String())
	if err != nil {
		logging.From(ctx).Warn("failed to resolve user name",
			"user_id", userID,
			logging.ErrAttr(err))
		return userID.String()
	}

	name = user.Profile.DisplayName
	if name == "" {
		name = user.RealName
	}
	if name == "" {
		name = user.Name
	}
	if name == "" {
		name = userID.String()
	}

	x.nameMutex.Lock()
	x.nameCache[userID] = name
	x.nameMutex.Unlock()
	return name
}
