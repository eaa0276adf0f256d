package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/santara-lab/santara/pkg/domain/interfaces"
	"github.com/santara-lab/santara/pkg/domain/model/category"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/domain/model/ticket"
	"github.com/santara-lab/santara/pkg/domain/types"
	slacksvc "github.com/santara-lab/santara/pkg/service/slack"
	"github.com/santara-lab/santara/pkg/service/transcript"
	"github.com/santara-lab/santara/pkg/utils/logging"
)

const (
	defaultOpenQuota     = 1
	defaultPurgeDelay    = 30 * time.Second
	defaultSweepInterval = time.Minute
)

// UseCases implements the ticket lifecycle. The in-memory ticket set is
// the working copy; every mutation is written through to the store
// before any destructive side effect runs.
type UseCases struct {
	store          interfaces.TicketStore
	slackSvc       *slacksvc.Service
	categories     *category.Registry
	transcript     *transcript.Builder
	openQuota      int
	supportUsers   []types.UserID
	archiveChannel types.ChannelID
	purgeDelay     time.Duration
	sweepInterval  time.Duration

	ticketMutex sync.RWMutex
	tickets     []ticket.Ticket

	// userLocks serializes concurrent creates by the same user so the
	// quota check and the persist are atomic per user.
	userLocks map[types.UserID]*sync.Mutex
	lockMutex sync.Mutex
}

type Option func(*UseCases)

func WithStore(store interfaces.TicketStore) Option {
	return func(u *UseCases) { u.store = store }
}

func WithSlackService(svc *slacksvc.Service) Option {
	return func(u *UseCases) { u.slackSvc = svc }
}

func WithCategories(r *category.Registry) Option {
	return func(u *UseCases) { u.categories = r }
}

func WithTranscript(b *transcript.Builder) Option {
	return func(u *UseCases) { u.transcript = b }
}

func WithOpenQuota(n int) Option {
	return func(u *UseCases) { u.openQuota = n }
}

func WithSupportUsers(users []types.UserID) Option {
	return func(u *UseCases) { u.supportUsers = users }
}

func WithArchiveChannel(ch types.ChannelID) Option {
	return func(u *UseCases) { u.archiveChannel = ch }
}

func WithPurgeDelay(d time.Duration) Option {
	return func(u *UseCases) { u.purgeDelay = d }
}

func WithSweepInterval(d time.Duration) Option {
	return func(u *UseCases) { u.sweepInterval = d }
}

func New(opts ...Option) *UseCases {
	u := &UseCases{
		categories:    category.Default(),
		openQuota:     defaultOpenQuota,
		purgeDelay:    defaultPurgeDelay,
		sweepInterval: defaultSweepInterval,
		userLocks:     make(map[types.UserID]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Init loads the persisted ticket set. An unreadable store degrades to
// an empty set so the bot keeps serving; the error is reported, not
// propagated.
func (x *UseCases) Init(ctx context.Context) {
	tickets, err := x.store.LoadAll(ctx)
	if err != nil {
		errs.Handle(ctx, err)
		tickets = []ticket.Ticket{}
	}

	x.ticketMutex.Lock()
	x.tickets = tickets
	x.ticketMutex.Unlock()

	open := 0
	for _, tk := range tickets {
		if tk.IsOpen() {
			open++
		}
	}
	logging.From(ctx).Info("ticket store loaded",
		"total", len(tickets),
		"open", open)
}

func (x *UseCases) userLock(userID types.UserID) *sync.Mutex {
	x.lockMutex.Lock()
	defer x.lockMutex.Unlock()

	mu, ok := x.userLocks[userID]
	if !ok {
		mu = &sync.Mutex{}
		x.userLocks[userID] = mu
	}
	return mu
}

// persistLocked writes the working set through to the store. Caller
// holds ticketMutex.
func (x *UseCases) persistLocked(ctx context.Context) error {
	snapshot := make([]ticket.Ticket, len(x.tickets))
	copy(snapshot, x.tickets)
	return x.store.SaveAll(ctx, snapshot)
}
