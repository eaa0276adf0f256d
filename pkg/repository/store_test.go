package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/santara-lab/santara/pkg/domain/interfaces"
	"github.com/santara-lab/santara/pkg/domain/model/ticket"
	"github.com/santara-lab/santara/pkg/domain/types"
	"github.com/santara-lab/santara/pkg/repository/filestore"
	"github.com/santara-lab/santara/pkg/repository/memory"
	"github.com/santara-lab/santara/pkg/utils/clock"
)

func newTicket(t *testing.T, user types.UserID) ticket.Ticket {
	t.Helper()
	ctx := clock.With(context.Background(), func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	})
	tk := ticket.New(ctx, user, "T001", "player-report")
	tk.ChannelID = "C-" + types.ChannelID(tk.ID.Short())
	return tk
}

func testStore(t *testing.T, store interfaces.TicketStore) {
	ctx := context.Background()

	t.Run("empty store loads empty set", func(t *testing.T) {
		tickets := gt.R1(store.LoadAll(ctx)).NoError(t)
		gt.Array(t, tickets).Length(0)
	})

	t.Run("save and reload", func(t *testing.T) {
		a := newTicket(t, "U001")
		b := newTicket(t, "U002")
		gt.NoError(t, store.SaveAll(ctx, []ticket.Ticket{a, b})).Required()

		tickets := gt.R1(store.LoadAll(ctx)).NoError(t)
		gt.Array(t, tickets).Length(2)
		gt.Value(t, tickets[0].ID).Equal(a.ID)
		gt.Value(t, tickets[1].UserID).Equal(types.UserID("U002"))
	})

	t.Run("save replaces the whole set", func(t *testing.T) {
		only := newTicket(t, "U003")
		gt.NoError(t, store.SaveAll(ctx, []ticket.Ticket{only})).Required()

		tickets := gt.R1(store.LoadAll(ctx)).NoError(t)
		gt.Array(t, tickets).Length(1)
		gt.Value(t, tickets[0].ID).Equal(only.ID)
	})

	t.Run("creation counter is monotonic", func(t *testing.T) {
		first := gt.R1(store.RecordCreated(ctx)).NoError(t)
		second := gt.R1(store.RecordCreated(ctx)).NoError(t)
		gt.Value(t, second).Equal(first + 1)

		// Shrinking the stored set must not roll the counter back.
		gt.NoError(t, store.SaveAll(ctx, nil)).Required()
		third := gt.R1(store.RecordCreated(ctx)).NoError(t)
		gt.Value(t, third).Equal(second + 1)

		stats := gt.R1(store.Stats(ctx)).NoError(t)
		gt.Value(t, stats.TotalCreated).Equal(third)
	})

	t.Run("backup records its timestamp", func(t *testing.T) {
		at := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
		bctx := clock.With(ctx, func() time.Time { return at })

		ref := gt.R1(store.Backup(bctx)).NoError(t)
		gt.True(t, ref != "")

		stats := gt.R1(store.Stats(ctx)).NoError(t)
		gt.Value(t, stats.LastBackup).Equal(at)
	})
}

func TestMemoryStore(t *testing.T) {
	testStore(t, memory.New())
}

func TestFileStore(t *testing.T) {
	store := gt.R1(filestore.New(t.TempDir())).NoError(t)
	testStore(t, store)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store := gt.R1(filestore.New(dir)).NoError(t)
	tk := newTicket(t, "U010")
	gt.NoError(t, store.SaveAll(ctx, []ticket.Ticket{tk})).Required()
	gt.R1(store.RecordCreated(ctx)).NoError(t)

	reopened := gt.R1(filestore.New(dir)).NoError(t)
	tickets := gt.R1(reopened.LoadAll(ctx)).NoError(t)
	gt.Array(t, tickets).Length(1)
	gt.Value(t, tickets[0].ID).Equal(tk.ID)

	stats := gt.R1(reopened.Stats(ctx)).NoError(t)
	gt.Value(t, stats.TotalCreated).Equal(int64(1))
}

func TestFileStoreBackupFile(t *testing.T) {
	ctx := clock.With(context.Background(), func() time.Time {
		return time.Date(2025, 6, 3, 9, 15, 30, 0, time.UTC)
	})
	dir := t.TempDir()

	store := gt.R1(filestore.New(dir)).NoError(t)
	gt.NoError(t, store.SaveAll(ctx, []ticket.Ticket{newTicket(t, "U020")})).Required()

	path := gt.R1(store.Backup(ctx)).NoError(t)
	gt.Value(t, filepath.Base(path)).Equal("tickets-backup-20250603-091530.json")

	raw := gt.R1(os.ReadFile(path)).NoError(t)
	gt.True(t, len(raw) > 0)
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "tickets.json"), []byte("{broken"), 0o644)).Required()

	store := gt.R1(filestore.New(dir)).NoError(t)
	_, err := store.LoadAll(context.Background())
	gt.Error(t, err)
}
