package config

import (
	"log/slog"
	"time"

	"github.com/santara-lab/santara/pkg/domain/model/category"
	"github.com/urfave/cli/v3"
)

type Ticket struct {
	openQuota     int64
	purgeDelay    time.Duration
	sweepInterval time.Duration
	categoryFile  string
}

func (x *Ticket) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "open-quota",
			Usage:       "Max open tickets per user",
			Category:    "Ticket",
			Value:       1,
			Destination: &x.openQuota,
			Sources:     cli.EnvVars("SANTARA_OPEN_QUOTA"),
		},
		&cli.DurationFlag{
			Name:        "purge-delay",
			Usage:       "Grace period between closing a ticket and archiving its channel",
			Category:    "Ticket",
			Value:       30 * time.Second,
			Destination: &x.purgeDelay,
			Sources:     cli.EnvVars("SANTARA_PURGE_DELAY"),
		},
		&cli.DurationFlag{
			Name:        "sweep-interval",
			Usage:       "Interval of the channel archival sweep",
			Category:    "Ticket",
			Value:       time.Minute,
			Destination: &x.sweepInterval,
			Sources:     cli.EnvVars("SANTARA_SWEEP_INTERVAL"),
		},
		&cli.StringFlag{
			Name:        "category-file",
			Usage:       "YAML file with ticket categories (built-in set when empty)",
			Category:    "Ticket",
			Destination: &x.categoryFile,
			Sources:     cli.EnvVars("SANTARA_CATEGORY_FILE"),
		},
	}
}

func (x Ticket) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("open-quota", x.openQuota),
		slog.Duration("purge-delay", x.purgeDelay),
		slog.Duration("sweep-interval", x.sweepInterval),
		slog.String("category-file", x.categoryFile),
	)
}

func (x *Ticket) OpenQuota() int               { return int(x.openQuota) }
func (x *Ticket) PurgeDelay() time.Duration    { return x.purgeDelay }
func (x *Ticket) SweepInterval() time.Duration { return x.sweepInterval }

func (x *Ticket) Categories() (*category.Registry, error) {
	if x.categoryFile == "" {
		return category.Default(), nil
	}
	return category.LoadFile(x.categoryFile)
}
