package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	model "github.com/santara-lab/santara/pkg/domain/model/slack"
	"github.com/santara-lab/santara/pkg/domain/types"
	slacksvc "github.com/santara-lab/santara/pkg/service/slack"
	"github.com/urfave/cli/v3"

	sdk "github.com/slack-go/slack"
)

type Slack struct {
	oauthToken     string
	signingSecret  string
	archiveChannel string
	supportUsers   []string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token",
			Category:    "Slack",
			Destination: &x.oauthToken,
			Sources:     cli.EnvVars("SANTARA_SLACK_OAUTH_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret",
			Category:    "Slack",
			Destination: &x.signingSecret,
			Sources:     cli.EnvVars("SANTARA_SLACK_SIGNING_SECRET"),
		},
		&cli.StringFlag{
			Name:        "slack-archive-channel",
			Usage:       "Channel ID that receives ticket transcripts (empty disables transcripts)",
			Category:    "Slack",
			Destination: &x.archiveChannel,
			Sources:     cli.EnvVars("SANTARA_SLACK_ARCHIVE_CHANNEL"),
		},
		&cli.StringSliceFlag{
			Name:        "support-user",
			Usage:       "Slack member ID invited to every ticket channel (repeatable)",
			Category:    "Slack",
			Destination: &x.supportUsers,
			Sources:     cli.EnvVars("SANTARA_SUPPORT_USERS"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("oauth-token.len", len(x.oauthToken)),
		slog.Int("signing-secret.len", len(x.signingSecret)),
		slog.String("archive-channel", x.archiveChannel),
		slog.Int("support-users", len(x.supportUsers)),
	)
}

func (x *Slack) Configure() (*slacksvc.Service, error) {
	if x.oauthToken == "" {
		return nil, goerr.New("slack oauth token is not set")
	}

	client := sdk.New(x.oauthToken)

	return slacksvc.New(client)
}

func (x *Slack) Verifier() model.PayloadVerifier {
	if x.signingSecret == "" {
		return nil
	}
	return model.NewPayloadVerifier(x.signingSecret)
}

func (x *Slack) ArchiveChannel() types.ChannelID {
	return types.ChannelID(x.archiveChannel)
}

func (x *Slack) SupportUsers() []types.UserID {
	out := make([]types.UserID, 0, len(x.supportUsers))
	for _, u := range x.supportUsers {
		out = append(out, types.UserID(u))
	}
	return out
}
