package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/santara-lab/santara/pkg/cli/config"
	server "github.com/santara-lab/santara/pkg/controller/http"
	"github.com/santara-lab/santara/pkg/service/transcript"
	"github.com/santara-lab/santara/pkg/usecase"
	"github.com/santara-lab/santara/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		addr       string
		sentryCfg  config.Sentry
		slackCfg   config.Slack
		storageCfg config.Storage
		ticketCfg  config.Ticket
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("SANTARA_ADDR"),
				Usage:       "Listen address (default: 127.0.0.1:8080)",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
		},
		sentryCfg.Flags(),
		slackCfg.Flags(),
		storageCfg.Flags(),
		ticketCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the ticket bot server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Default().Info("starting server",
				"addr", addr,
				"sentry", sentryCfg,
				"slack", slackCfg,
				"storage", storageCfg,
				"ticket", ticketCfg,
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return err
			}

			store, err := storageCfg.Configure()
			if err != nil {
				return err
			}

			categories, err := ticketCfg.Categories()
			if err != nil {
				return err
			}

			builder := transcript.New(slackSvc.Client(), slackSvc.UserDisplayName)

			uc := usecase.New(
				usecase.WithStore(store),
				usecase.WithSlackService(slackSvc),
				usecase.WithCategories(categories),
				usecase.WithTranscript(builder),
				usecase.WithOpenQuota(ticketCfg.OpenQuota()),
				usecase.WithSupportUsers(slackCfg.SupportUsers()),
				usecase.WithArchiveChannel(slackCfg.ArchiveChannel()),
				usecase.WithPurgeDelay(ticketCfg.PurgeDelay()),
				usecase.WithSweepInterval(ticketCfg.SweepInterval()),
			)
			uc.Init(ctx)

			// Catch up on purges that were pending when the previous
			// process stopped.
			if _, err := uc.Sweep(ctx); err != nil {
				logging.From(ctx).Warn("initial sweep failed", logging.ErrAttr(err))
			}

			sweepCtx, stopSweeper := context.WithCancel(ctx)
			defer stopSweeper()
			go uc.RunSweeper(sweepCtx)

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(uc, server.WithSlackVerifier(slackCfg.Verifier())),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.From(ctx).Info("shutting down", "signal", sig.String())
				stopSweeper()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
		},
	}
}
