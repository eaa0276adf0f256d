package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	http_controller "github.com/santara-lab/santara/pkg/controller/http"
	"github.com/santara-lab/santara/pkg/domain/mock"
	slack_model "github.com/santara-lab/santara/pkg/domain/model/slack"
	"github.com/santara-lab/santara/pkg/repository/memory"
	slacksvc "github.com/santara-lab/santara/pkg/service/slack"
	"github.com/santara-lab/santara/pkg/usecase"
	"github.com/slack-go/slack"
)

func newServer(t *testing.T, opts ...http_controller.Options) *http_controller.Server {
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

	return http_controller.New(uc, opts...)
}

func TestAliveEndpoint(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, rec.Body.String()).Equal("Bot is alive!")
}

func TestHealthEndpoint(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var body map[string]string
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
	gt.Value(t, body["status"]).Equal("ok")
}

func TestStatusEndpoint(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var stats usecase.Stats
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats)).Required()
	gt.Value(t, stats.Open).Equal(0)
}

func slashForm(text, userID, channelID string) *strings.Reader {
	form := url.Values{}
	form.Set("command", "/ticket")
	form.Set("text", text)
	form.Set("user_id", userID)
	form.Set("channel_id", channelID)
	form.Set("team_id", "T001")
	return strings.NewReader(form.Encode())
}

func TestSlashCommandEndpoint(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/hooks/slack/command",
		slashForm("create player-report", "U100", "CGENERAL"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp map[string]string
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Value(t, resp["response_type"]).Equal("ephemeral")
	gt.True(t, strings.Contains(resp["text"], "<#C100>"))
}

func TestSlashCommandUnknownSubcommand(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/hooks/slack/command",
		slashForm("frobnicate", "U100", "CGENERAL"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestSlashCommandRejectsBadSignature(t *testing.T) {
	verifier := slack_model.NewPayloadVerifier("signing-secret")
	server := newServer(t, http_controller.WithSlackVerifier(verifier))

	// No signature headers at all.
	req := httptest.NewRequest(http.MethodPost, "/hooks/slack/command",
		slashForm("status", "U100", "CGENERAL"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)
}
