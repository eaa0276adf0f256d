package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/cli/config"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/domain/types"
	"github.com/santara-lab/santara/pkg/utils/clock"
	"github.com/santara-lab/santara/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// cmdTicket groups offline administration of the ticket store. These
// subcommands touch the data directory directly and must not run while
// the server is serving from the same directory.
func cmdTicket() *cli.Command {
	return &cli.Command{
		Name:    "ticket",
		Aliases: []string{"t"},
		Usage:   "Administer the ticket store",
		Commands: []*cli.Command{
			cmdTicketList(),
			cmdTicketStats(),
			cmdTicketForceClose(),
			cmdTicketCleanup(),
			cmdTicketBackup(),
		},
	}
}

func cmdTicketList() *cli.Command {
	var (
		storageCfg config.Storage
		status     string
	)

	flags := joinFlags(storageCfg.Flags(), []cli.Flag{
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Filter by status [open|closed]",
			Destination: &status,
		},
	})

	return &cli.Command{
		Name:  "list",
		Usage: "List tickets",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storageCfg.Configure()
			if err != nil {
				return err
			}

			tickets, err := store.LoadAll(ctx)
			if err != nil {
				return err
			}

			shown := 0
			for _, tk := range tickets {
				if status != "" && tk.Status.String() != status {
					continue
				}
				line := fmt.Sprintf("%s  %-10s  %-20s  %s  opened %s",
					tk.ID.Short(), tk.Status, tk.Category, tk.UserID,
					humanize.Time(tk.CreatedAt))
				if !tk.IsOpen() {
					line += fmt.Sprintf("  closed by %s", tk.ClosedBy)
				}
				fmt.Println(line)
				shown++
			}
			fmt.Printf("%d tickets\n", shown)
			return nil
		},
	}
}

func cmdTicketStats() *cli.Command {
	var storageCfg config.Storage

	return &cli.Command{
		Name:  "stats",
		Usage: "Show ticket store statistics",
		Flags: storageCfg.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storageCfg.Configure()
			if err != nil {
				return err
			}

			tickets, err := store.LoadAll(ctx)
			if err != nil {
				return err
			}
			stats, err := store.Stats(ctx)
			if err != nil {
				return err
			}

			open, closed := 0, 0
			var totalResolution time.Duration
			for _, tk := range tickets {
				if tk.IsOpen() {
					open++
				} else {
					closed++
					totalResolution += tk.Duration()
				}
			}

			fmt.Printf("Open:           %d\n", open)
			fmt.Printf("Closed:         %d\n", closed)
			fmt.Printf("Total created:  %d\n", stats.TotalCreated)
			if closed > 0 {
				avg := totalResolution / time.Duration(closed)
				fmt.Printf("Avg resolution: %s\n", avg.Round(time.Second))
			}
			if !stats.LastBackup.IsZero() {
				fmt.Printf("Last backup:    %s\n", humanize.Time(stats.LastBackup))
			}
			return nil
		},
	}
}

func cmdTicketForceClose() *cli.Command {
	var (
		storageCfg config.Storage
		ticketID   string
		closedBy   string
		reason     string
	)

	flags := joinFlags(storageCfg.Flags(), []cli.Flag{
		&cli.StringFlag{
			Name:        "id",
			Usage:       "Ticket ID or its short prefix",
			Required:    true,
			Destination: &ticketID,
		},
		&cli.StringFlag{
			Name:        "by",
			Usage:       "Member ID recorded as the closer",
			Value:       "admin",
			Destination: &closedBy,
		},
		&cli.StringFlag{
			Name:        "reason",
			Usage:       "Close reason",
			Value:       "closed by administrator",
			Destination: &reason,
		},
	})

	return &cli.Command{
		Name:  "force-close",
		Usage: "Close a ticket record without a Slack round trip",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storageCfg.Configure()
			if err != nil {
				return err
			}

			tickets, err := store.LoadAll(ctx)
			if err != nil {
				return err
			}

			idx := -1
			for i := range tickets {
				if strings.HasPrefix(tickets[i].ID.String(), ticketID) {
					if idx >= 0 {
						return goerr.New("ticket ID prefix is ambiguous", goerr.V("id", ticketID))
					}
					idx = i
				}
			}
			if idx < 0 {
				return goerr.Wrap(errs.ErrTicketNotFound, "no matching ticket", goerr.V("id", ticketID))
			}

			// Purge immediately: the next server start sweeps the channel.
			if err := tickets[idx].Close(ctx, types.UserID(closedBy), reason, 0); err != nil {
				return err
			}
			if err := store.SaveAll(ctx, tickets); err != nil {
				return err
			}

			logging.From(ctx).Info("ticket force-closed",
				"ticket_id", tickets[idx].ID,
				"closed_by", closedBy)
			fmt.Printf("closed %s\n", tickets[idx].ID)
			return nil
		},
	}
}

func cmdTicketCleanup() *cli.Command {
	var (
		storageCfg config.Storage
		olderThan  time.Duration
	)

	flags := joinFlags(storageCfg.Flags(), []cli.Flag{
		&cli.DurationFlag{
			Name:        "older-than",
			Usage:       "Remove closed tickets older than this window",
			Value:       30 * 24 * time.Hour,
			Destination: &olderThan,
		},
	})

	return &cli.Command{
		Name:  "cleanup",
		Usage: "Remove old closed tickets from the store",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storageCfg.Configure()
			if err != nil {
				return err
			}

			tickets, err := store.LoadAll(ctx)
			if err != nil {
				return err
			}

			cutoff := clock.Now(ctx).Add(-olderThan)
			kept := tickets[:0:0]
			removed := 0
			for _, tk := range tickets {
				if !tk.IsOpen() && tk.ClosedAt != nil && tk.ClosedAt.Before(cutoff) {
					removed++
					continue
				}
				kept = append(kept, tk)
			}

			if removed > 0 {
				if err := store.SaveAll(ctx, kept); err != nil {
					return err
				}
			}
			fmt.Printf("removed %d tickets, %d remaining\n", removed, len(kept))
			return nil
		},
	}
}

func cmdTicketBackup() *cli.Command {
	var storageCfg config.Storage

	return &cli.Command{
		Name:  "backup",
		Usage: "Snapshot the ticket store",
		Flags: storageCfg.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storageCfg.Configure()
			if err != nil {
				return err
			}

			path, err := store.Backup(ctx)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}
