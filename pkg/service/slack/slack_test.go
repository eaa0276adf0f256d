package slack_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/santara-lab/santara/pkg/domain/mock"
	"github.com/santara-lab/santara/pkg/domain/types"
	slacksvc "github.com/santara-lab/santara/pkg/service/slack"
	slackapi "github.com/slack-go/slack"
)

func newMockClient() *mock.SlackClientMock {
	return &mock.SlackClientMock{
		AuthTestFunc: func() (*slackapi.AuthTestResponse, error) {
			return &slackapi.AuthTestResponse{
				UserID: "UBOT",
				TeamID: "T001",
			}, nil
		},
		GetTeamInfoFunc: func() (*slackapi.TeamInfo, error) {
			return &slackapi.TeamInfo{Domain: "santara"}, nil
		},
	}
}

func TestNewService(t *testing.T) {
	svc := gt.R1(slacksvc.New(newMockClient())).NoError(t)

	gt.Value(t, svc.BotUserID()).Equal(types.UserID("UBOT"))
	gt.Value(t, svc.TeamID()).Equal(types.TeamID("T001"))
	gt.Value(t, svc.TeamDomain()).Equal("santara")
}

func TestNewServiceAuthFailure(t *testing.T) {
	client := &mock.SlackClientMock{
		AuthTestFunc: func() (*slackapi.AuthTestResponse, error) {
			return nil, errors.New("invalid_auth")
		},
	}
	_, err := slacksvc.New(client)
	gt.Error(t, err)
}

func TestSanitizeChannelName(t *testing.T) {
	cases := map[string]struct {
		input  string
		expect string
	}{
		"already valid":   {"report-alice-1a2b3c4d", "report-alice-1a2b3c4d"},
		"uppercase":       {"Report-Alice", "report-alice"},
		"spaces and punc": {"unban request (alice!)", "unban-request-alice"},
		"empty":           {"", "ticket"},
		"only symbols":    {"###", "ticket"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			gt.Value(t, slacksvc.SanitizeChannelName(tc.input)).Equal(tc.expect)
		})
	}
}

func TestCreateTicketChannel(t *testing.T) {
	client := newMockClient()
	client.CreateConversationContextFunc = func(ctx context.Context, params slackapi.CreateConversationParams) (*slackapi.Channel, error) {
		gt.True(t, params.IsPrivate)
		ch := &slackapi.Channel{}
		ch.ID = "C123"
		ch.Name = params.ChannelName
		return ch, nil
	}
	client.InviteUsersToConversationContextFunc = func(ctx context.Context, channelID string, users ...string) (*slackapi.Channel, error) {
		return &slackapi.Channel{}, nil
	}

	svc := gt.R1(slacksvc.New(client)).NoError(t)

	channelID := gt.R1(svc.CreateTicketChannel(context.Background(),
		"Report Alice", "U100", []types.UserID{"U200", "UBOT", "U100"})).NoError(t)
	gt.Value(t, channelID).Equal(types.ChannelID("C123"))

	calls := client.InviteUsersToConversationContextCalls()
	// Requester once, one support member; the bot and the requester are
	// skipped from the support list.
	gt.Array(t, calls).Length(2)
	gt.Value(t, calls[0].Users[0]).Equal("U100")
	gt.Value(t, calls[1].Users[0]).Equal("U200")

	created := client.CreateConversationContextCalls()
	gt.Array(t, created).Length(1)
	gt.Value(t, created[0].Params.ChannelName).Equal("report-alice")
}

func TestCreateTicketChannelRequesterInviteFails(t *testing.T) {
	client := newMockClient()
	client.CreateConversationContextFunc = func(ctx context.Context, params slackapi.CreateConversationParams) (*slackapi.Channel, error) {
		ch := &slackapi.Channel{}
		ch.ID = "C123"
		return ch, nil
	}
	client.InviteUsersToConversationContextFunc = func(ctx context.Context, channelID string, users ...string) (*slackapi.Channel, error) {
		return nil, errors.New("user_not_found")
	}

	svc := gt.R1(slacksvc.New(client)).NoError(t)

	_, err := svc.CreateTicketChannel(context.Background(), "report", "U100", nil)
	gt.Error(t, err)
}

func TestUserDisplayNameCache(t *testing.T) {
	client := newMockClient()
	client.GetUserInfoContextFunc = func(ctx context.Context, user string) (*slackapi.User, error) {
		return &slackapi.User{
			Name:     "alice",
			RealName: "Alice Doe",
			Profile:  slackapi.UserProfile{DisplayName: "alice.d"},
		}, nil
	}

	svc := gt.R1(slacksvc.New(client)).NoError(t)
	ctx := context.Background()

	gt.Value(t, svc.UserDisplayName(ctx, "U100")).Equal("alice.d")
	gt.Value(t, svc.UserDisplayName(ctx, "U100")).Equal("alice.d")
	gt.Array(t, client.GetUserInfoContextCalls()).Length(1)
}

func TestUserDisplayNameFallback(t *testing.T) {
	client := newMockClient()
	client.GetUserInfoContextFunc = func(ctx context.Context, user string) (*slackapi.User, error) {
		return nil, errors.New("user_not_found")
	}

	svc := gt.R1(slacksvc.New(client)).NoError(t)
	gt.Value(t, svc.UserDisplayName(context.Background(), "U404")).Equal("U404")
}
