package slack_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	slack_controller "github.com/santara-lab/santara/pkg/controller/slack"
	"github.com/santara-lab/santara/pkg/domain/mock"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/repository/memory"
	slacksvc "github.com/santara-lab/santara/pkg/service/slack"
	"github.com/santara-lab/santara/pkg/usecase"
	"github.com/slack-go/slack"
)

func setup(t *testing.T) (*slack_controller.Controller, *mock.SlackClientMock) {
	t.Helper()

	client := &mock.SlackClientMock{
		AuthTestFunc: func() (*slack.AuthTestResponse, error) {
			return &slack.AuthTestResponse{UserID: "UBOT", TeamID: "T001"}, nil
		},
		GetTeamInfoFunc: func() (*slack.TeamInfo, error) {
			return &slack.TeamInfo{Domain: "santara"}, nil
		},
		CreateConversationContextFunc: func(ctx context.Context, params slack.CreateConversationParams) (*slack.Channel, error) {
			ch := &slack.Channel{}
			ch.ID = "C100"
			return ch, nil
		},
		InviteUsersToConversationContextFunc: func(ctx context.Context, channelID string, users ...string) (*slack.Channel, error) {
			return &slack.Channel{}, nil
		},
		SetTopicOfConversationContextFunc: func(ctx context.Context, channelID string, topic string) (*slack.Channel, error) {
			return &slack.Channel{}, nil
		},
		PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			return channelID, "", nil
		},
		ArchiveConversationContextFunc: func(ctx context.Context, channelID string) error {
			return nil
		},
		GetUserInfoContextFunc: func(ctx context.Context, user string) (*slack.User, error) {
			return &slack.User{Name: "user"}, nil
		},
	}

	svc := gt.R1(slacksvc.New(client)).NoError(t)
	uc := usecase.New(
		usecase.WithStore(memory.New()),
		usecase.WithSlackService(svc),
		usecase.WithPurgeDelay(time.Hour),
	)
	uc.Init(context.Background())

	return slack_controller.New(uc), client
}

func cmd(text, userID, channelID string) slack.SlashCommand {
	return slack.SlashCommand{
		Command:   "/ticket",
		Text:      text,
		UserID:    userID,
		ChannelID: channelID,
	}
}

func TestCommandCreate(t *testing.T) {
	ctrl, _ := setup(t)
	ctx := context.Background()

	reply := gt.R1(ctrl.HandleCommand(ctx, cmd("create player-report they stole my stuff", "U100", "CGENERAL"))).NoError(t)
	gt.True(t, strings.Contains(reply, "<#C100>"))

	// Second create hits the quota and gets a friendly reply, not an error.
	reply = gt.R1(ctrl.HandleCommand(ctx, cmd("create player-report", "U100", "CGENERAL"))).NoError(t)
	gt.True(t, strings.Contains(reply, "already have an open ticket"))
}

func TestCommandCreateMissingCategory(t *testing.T) {
	ctrl, _ := setup(t)

	reply := gt.R1(ctrl.HandleCommand(context.Background(), cmd("create", "U100", "CGENERAL"))).NoError(t)
	gt.True(t, strings.Contains(reply, "Usage"))
}

func TestCommandClose(t *testing.T) {
	ctrl, _ := setup(t)
	ctx := context.Background()

	gt.R1(ctrl.HandleCommand(ctx, cmd("create unban-request", "U100", "CGENERAL"))).NoError(t)

	reply := gt.R1(ctrl.HandleCommand(ctx, cmd("close sorted out", "U200", "C100"))).NoError(t)
	gt.True(t, strings.Contains(reply, "closed"))

	reply = gt.R1(ctrl.HandleCommand(ctx, cmd("close", "U200", "C100"))).NoError(t)
	gt.Value(t, reply).Equal("This ticket is already closed.")

	reply = gt.R1(ctrl.HandleCommand(ctx, cmd("close", "U200", "CRANDOM"))).NoError(t)
	gt.Value(t, reply).Equal("This channel is not a ticket channel.")
}

func TestCommandStatus(t *testing.T) {
	ctrl, _ := setup(t)
	ctx := context.Background()

	gt.R1(ctrl.HandleCommand(ctx, cmd("create player-report", "U100", "CGENERAL"))).NoError(t)

	// In the ticket channel the reply describes that ticket.
	reply := gt.R1(ctrl.HandleCommand(ctx, cmd("status", "U100", "C100"))).NoError(t)
	gt.True(t, strings.Contains(reply, "player-report"))
	gt.True(t, strings.Contains(reply, "<@U100>"))

	// Elsewhere the reply lists the caller's open tickets.
	reply = gt.R1(ctrl.HandleCommand(ctx, cmd("status", "U100", "CGENERAL"))).NoError(t)
	gt.True(t, strings.Contains(reply, "1 open"))
	gt.True(t, strings.Contains(reply, "<#C100>"))

	reply = gt.R1(ctrl.HandleCommand(ctx, cmd("status", "U999", "CGENERAL"))).NoError(t)
	gt.True(t, strings.Contains(reply, "no open tickets"))
}

func TestCommandHelpAndUnknown(t *testing.T) {
	ctrl, _ := setup(t)
	ctx := context.Background()

	reply := gt.R1(ctrl.HandleCommand(ctx, cmd("", "U100", "CGENERAL"))).NoError(t)
	gt.True(t, strings.Contains(reply, "/ticket create"))

	reply = gt.R1(ctrl.HandleCommand(ctx, cmd("help", "U100", "CGENERAL"))).NoError(t)
	gt.True(t, strings.Contains(reply, "/ticket close"))

	_, err := ctrl.HandleCommand(ctx, cmd("destroy", "U100", "CGENERAL"))
	gt.Error(t, err).Required()
	gt.True(t, errors.Is(err, errs.ErrUnknownCommand))
}
