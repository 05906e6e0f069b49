package store

import (
	"context"
	"errors"

	"finboard/internal/backend"
)

// ErrUnknownIntent is returned by Dispatch for intents the store cannot apply.
var ErrUnknownIntent = errors.New("unknown intent")

// Intent is a named request to change the store.
type Intent interface {
	ActionType() string
}

// Action is a synchronous transition confined to one slice.
type Action interface {
	Intent
	apply(State) State
}

// Thunk is an asynchronous intent with pending, fulfilled and rejected phases.
// run performs the backend call and returns the terminal action to apply.
type Thunk interface {
	Intent
	pending() Action
	run(ctx context.Context, api backend.API) (Action, error)
}

// idAssigner is implemented by add actions that need a fresh record id.
type idAssigner interface {
	assignID(id string) Action
}

// Phase is the lifecycle position of a dispatched intent.
type Phase string

const (
	PhasePending   Phase = "pending"
	PhaseFulfilled Phase = "fulfilled"
	PhaseRejected  Phase = "rejected"
)

// Future resolves once the terminal transition of a dispatched intent has
// been applied to the store. Synchronous actions return resolved futures.
type Future struct {
	done chan struct{}
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func resolved(err error) *Future {
	f := newFuture()
	f.resolve(err)
	return f
}

func (f *Future) resolve(err error) {
	f.err = err
	close(f.done)
}

// Done is closed when the intent has settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Phase reports pending until the intent settles, then fulfilled or rejected.
func (f *Future) Phase() Phase {
	select {
	case <-f.done:
		if f.err != nil {
			return PhaseRejected
		}
		return PhaseFulfilled
	default:
		return PhasePending
	}
}

// Err returns the rejection cause once settled, nil before that.
func (f *Future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Wait blocks until the intent settles or ctx is done. Giving up on the wait
// does not cancel the intent.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
