package config

import (
	"log/slog"

	"github.com/santara-lab/santara/pkg/domain/interfaces"
	"github.com/santara-lab/santara/pkg/repository/filestore"
	"github.com/santara-lab/santara/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	dataDir   string
	ephemeral bool
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory for ticket data and backups",
			Category:    "Storage",
			Value:       "./data",
			Destination: &x.dataDir,
			Sources:     cli.EnvVars("SANTARA_DATA_DIR"),
		},
		&cli.BoolFlag{
			Name:        "ephemeral",
			Usage:       "Keep tickets in memory only (lost on restart)",
			Category:    "Storage",
			Destination: &x.ephemeral,
			Sources:     cli.EnvVars("SANTARA_EPHEMERAL"),
		},
	}
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("data-dir", x.dataDir),
		slog.Bool("ephemeral", x.ephemeral),
	)
}

func (x *Storage) Configure() (interfaces.TicketStore, error) {
	if x.ephemeral {
		return memory.New(), nil
	}
	return filestore.New(x.dataDir)
}
