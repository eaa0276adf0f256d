package cli_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/santara-lab/santara/pkg/cli"
)

func TestRunHelp(t *testing.T) {
	gt.NoError(t, cli.Run(context.Background(), []string{"santara", "--help"}))
}

func TestRunTicketStatsEphemeral(t *testing.T) {
	gt.NoError(t, cli.Run(context.Background(),
		[]string{"santara", "-q", "ticket", "stats", "--ephemeral"}))
}

func TestRunTicketListWithDataDir(t *testing.T) {
	gt.NoError(t, cli.Run(context.Background(),
		[]string{"santara", "-q", "ticket", "list", "--data-dir", t.TempDir()}))
}

func TestRunTicketBackupEphemeral(t *testing.T) {
	gt.NoError(t, cli.Run(context.Background(),
		[]string{"santara", "-q", "ticket", "backup", "--ephemeral"}))
}
