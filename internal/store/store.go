// Package store is the single mutation gateway for the dashboard state.
//
// The state is split into four slices (session, transactions, budgets,
// categories). Every change goes through Dispatch with a named intent;
// reads go through Snapshot. Each applied action publishes a new State value
// and never modifies an earlier one; callers get private copies, so nothing
// they do to a snapshot reaches the store.
//
// Asynchronous intents (Login, Logout, LoadTransactions) apply their pending
// action immediately, call the backend in a goroutine and apply exactly one
// terminal action when the call returns. They cannot be cancelled: the
// dispatcher's context only contributes values, never cancellation.
// Overlapping calls are not coalesced, so the last one to resolve wins.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"finboard/internal/backend"
	"finboard/internal/core"
	"finboard/internal/log"
)

// Listener receives every snapshot the store publishes, in version order.
type Listener func(State)

// Reducer applies an action to a snapshot and returns the next one.
type Reducer func(State, Action) State

// Middleware wraps the reducer, e.g. to log or record actions.
type Middleware func(next Reducer) Reducer

type subscription struct {
	id int
	fn Listener
}

type Store struct {
	mu       sync.Mutex
	state    State
	api      backend.API
	ids      IDGenerator
	logger   *log.Logger
	reduce   Reducer
	subs     []subscription
	nextSub  int
	queue    []State
	draining bool
	session  *log.Logger

	// inflight counts running thunks; idle is closed when it drops to zero.
	inflight int
	idle     chan struct{}

	dispatched atomic.Int64
	rejected   atomic.Int64
}

type Option func(*Store)

// WithIDGenerator overrides the uuid generator used for new records.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithMiddleware wraps the reducer. The first middleware is the outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(s *Store) {
		for i := len(mw) - 1; i >= 0; i-- {
			s.reduce = mw[i](s.reduce)
		}
	}
}

// New builds an independent store seeded from api. Transactions start empty
// until LoadTransactions is dispatched.
func New(api backend.API, opts ...Option) *Store {
	s := &Store{
		api:    api,
		ids:    UUIDs,
		reduce: baseReducer,
		state: State{
			Transactions: TransactionState{Transactions: []core.Transaction{}},
			Budgets:      BudgetState{Budgets: slices.Clone(api.Budgets())},
			Categories:   CategoryState{Categories: slices.Clone(api.Categories())},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Discard()
	}
	s.session = s.logger.WithComponent(log.ComponentSession)
	return s
}

func baseReducer(s State, a Action) State {
	next := a.apply(s)
	next.Version = s.Version + 1
	return next
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies an intent. Synchronous actions are applied before
// Dispatch returns and yield a resolved Future; thunks return a Future that
// resolves after their terminal action has been applied.
func (s *Store) Dispatch(ctx context.Context, in Intent) *Future {
	switch in := in.(type) {
	case Thunk:
		return s.start(ctx, in)
	case Action:
		s.apply(in)
		return resolved(nil)
	default:
		return resolved(fmt.Errorf("%w: %T", ErrUnknownIntent, in))
	}
}

func (s *Store) start(ctx context.Context, t Thunk) *Future {
	f := newFuture()
	ctx, traceID := log.EnsureTraceID(context.WithoutCancel(ctx))
	logger := s.loggerFor(t)
	s.dispatched.Add(1)
	logger.DebugContext(ctx, "Intent dispatched",
		log.FieldAction, t.ActionType(),
		log.FieldTraceID, traceID)

	s.mu.Lock()
	s.inflight++
	if s.inflight == 1 {
		s.idle = make(chan struct{})
	}
	s.mu.Unlock()
	s.apply(t.pending())

	go func() {
		defer s.settled()
		start := time.Now()
		terminal, err := t.run(ctx, s.api)
		s.apply(terminal)
		if err != nil {
			s.rejected.Add(1)
			logger.WarnContext(ctx, "Intent rejected",
				log.FieldAction, t.ActionType(),
				log.FieldTraceID, traceID,
				log.FieldDuration, time.Since(start).Milliseconds(),
				log.FieldError, err)
		} else {
			logger.DebugContext(ctx, "Intent fulfilled",
				log.FieldAction, t.ActionType(),
				log.FieldTraceID, traceID,
				log.FieldDuration, time.Since(start).Milliseconds())
		}
		f.resolve(err)
	}()
	return f
}

func (s *Store) settled() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if s.inflight == 0 {
		close(s.idle)
		s.idle = nil
	}
}

func (s *Store) loggerFor(t Thunk) *log.Logger {
	switch t.(type) {
	case Login, Logout:
		return s.session
	default:
		return s.logger
	}
}

// Stats counts asynchronous intents since the store was created.
type Stats struct {
	Dispatched int64
	Rejected   int64
}

func (s *Store) Stats() Stats {
	return Stats{Dispatched: s.dispatched.Load(), Rejected: s.rejected.Load()}
}

// apply reduces under the lock and then notifies listeners outside it.
// Notifications are drained by whichever goroutine finds the queue idle, so
// listeners see snapshots in version order and may dispatch themselves.
func (s *Store) apply(a Action) {
	s.mu.Lock()
	if g, ok := a.(idAssigner); ok {
		a = g.assignID(s.ids())
	}
	s.state = s.reduce(s.state, a)
	s.queue = append(s.queue, s.state)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true

	// A panicking listener leaves the lock released; hand draining back so
	// the next apply delivers what is still queued.
	finished := false
	defer func() {
		if !finished {
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
		}
	}()

	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		subs := slices.Clone(s.subs)
		s.mu.Unlock()
		for _, sub := range subs {
			sub.fn(next.clone())
		}
		s.mu.Lock()
	}
	s.draining = false
	finished = true
	s.mu.Unlock()
}

// Subscribe registers fn for every future snapshot. The returned function
// removes it and is safe to call more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.logger.Debug("Listener subscribed", log.FieldSubscribers, len(s.subs))
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs = slices.DeleteFunc(slices.Clone(s.subs), func(sub subscription) bool { return sub.id == id })
	}
}

// Wait blocks until every in-flight thunk has settled or ctx is done.
// Thunks dispatched after Wait starts are not waited for.
func (s *Store) Wait(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()
	if idle == nil {
		return nil
	}
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
