package ticket_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/domain/model/ticket"
	"github.com/santara-lab/santara/pkg/domain/types"
	"github.com/santara-lab/santara/pkg/utils/clock"
)

func TestNewTicket(t *testing.T) {
	fixed := time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)
	ctx := clock.With(context.Background(), func() time.Time { return fixed })

	tk := ticket.New(ctx, "U123", "T456", "player-report")

	gt.NoError(t, tk.Validate())
	gt.Value(t, tk.Status).Equal(types.TicketStatusOpen)
	gt.Value(t, tk.CreatedAt).Equal(fixed)
	gt.Nil(t, tk.ClosedAt)
	gt.Value(t, tk.ClosedBy).Equal(types.UserID(""))
	gt.True(t, tk.IsOpen())
}

func TestTicketClose(t *testing.T) {
	created := time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)
	closedAt := created.Add(2 * time.Hour)

	ctx := clock.With(context.Background(), func() time.Time { return created })
	tk := ticket.New(ctx, "U123", "T456", "player-report")
	tk.ChannelID = "C789"

	ctx = clock.With(context.Background(), func() time.Time { return closedAt })
	gt.NoError(t, tk.Close(ctx, "U999", "resolved", 30*time.Second))

	gt.NoError(t, tk.Validate())
	gt.Value(t, tk.Status).Equal(types.TicketStatusClosed)
	gt.Value(t, *tk.ClosedAt).Equal(closedAt)
	gt.Value(t, tk.ClosedBy).Equal(types.UserID("U999"))
	gt.Value(t, tk.CloseReason).Equal("resolved")
	gt.Value(t, *tk.ChannelPurgeAt).Equal(closedAt.Add(30 * time.Second))
	gt.Value(t, tk.Duration()).Equal(2 * time.Hour)
}

func TestTicketCloseTwice(t *testing.T) {
	ctx := context.Background()
	tk := ticket.New(ctx, "U123", "T456", "bug")

	gt.NoError(t, tk.Close(ctx, "U999", "resolved", time.Second))
	snapshot := tk

	err := tk.Close(ctx, "U888", "again", time.Second)
	gt.Error(t, err).Required()
	gt.True(t, errors.Is(err, errs.ErrTicketAlreadyClosed))

	// Record must be unchanged after the rejected transition.
	gt.Value(t, tk.ClosedBy).Equal(snapshot.ClosedBy)
	gt.Value(t, tk.CloseReason).Equal(snapshot.CloseReason)
	gt.Value(t, tk.ClosedAt).Equal(snapshot.ClosedAt)
}

func TestTicketValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("open ticket with closure fields", func(t *testing.T) {
		tk := ticket.New(ctx, "U1", "T1", "other")
		tk.ClosedBy = "U2"
		gt.Error(t, tk.Validate())
	})

	t.Run("closed ticket without closure fields", func(t *testing.T) {
		tk := ticket.New(ctx, "U1", "T1", "other")
		tk.Status = types.TicketStatusClosed
		gt.Error(t, tk.Validate())
	})

	t.Run("empty user", func(t *testing.T) {
		tk := ticket.New(ctx, "", "T1", "other")
		gt.Error(t, tk.Validate())
	})
}

func TestTicketIDShort(t *testing.T) {
	id := types.NewTicketID()
	gt.Value(t, len(id.Short())).Equal(8)
	gt.NoError(t, id.Validate())
}
