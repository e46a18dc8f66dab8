package asynctask

import (
	"context"
	"errors"
	"sync"

	"github.com/dlane/statekit/notify"
)

// State is the lifecycle phase of a runner.
type State int

const (
	// StateIdle means no run has started yet.
	StateIdle State = iota

	// StateRunning means a run is in flight.
	StateRunning

	// StateSucceeded means the last run returned a value.
	StateSucceeded

	// StateFailed means the last run returned an error.
	StateFailed

	// StateCanceled means the last run's context was canceled.
	StateCanceled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is a run outcome.
func (s State) Terminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateCanceled:
		return true
	default:
		return false
	}
}

// Snapshot is a consistent view of a runner's observable state.
// Value is meaningful only in StateSucceeded; Err only in StateFailed
// and StateCanceled.
type Snapshot[T any] struct {
	State State
	Value T
	Err   error
}

// Fn is the operation a runner executes.
type Fn[T any] func(context.Context) (T, error)

// Runner executes one operation at a time and publishes lifecycle
// snapshots. All methods are safe for concurrent use.
type Runner[T any] struct {
	mu sync.Mutex

	state State
	value T
	err   error

	gen    uint64
	cancel context.CancelFunc

	hub *notify.Hub[Snapshot[T]]
}

// NewRunner creates an idle runner.
func NewRunner[T any]() *Runner[T] {
	return &Runner[T]{hub: notify.NewHub[Snapshot[T]]()}
}

// Run starts fn in a new goroutine, canceling any run already in
// flight. The returned channel closes when this run reaches a terminal
// state or is superseded by a newer run.
func (r *Runner[T]) Run(ctx context.Context, fn Fn[T]) <-chan struct{} {
	done := make(chan struct{})

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.gen++
	gen := r.gen

	r.state = StateRunning
	var zero T
	r.value = zero
	r.err = nil
	snap := r.snapshotLocked()
	r.mu.Unlock()

	r.hub.Publish(snap)

	go func() {
		defer close(done)
		defer cancel()

		v, err := fn(runCtx)
		r.finish(gen, runCtx, v, err)
	}()

	return done
}

// finish records a run outcome unless a newer run has started since.
func (r *Runner[T]) finish(gen uint64, ctx context.Context, v T, err error) {
	r.mu.Lock()
	if gen != r.gen {
		// Superseded; this outcome is stale.
		r.mu.Unlock()
		return
	}

	switch {
	case err == nil:
		r.state = StateSucceeded
		r.value = v
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		r.state = StateCanceled
		r.err = err
	default:
		r.state = StateFailed
		r.err = err
	}

	snap := r.snapshotLocked()
	r.mu.Unlock()

	r.hub.Publish(snap)
}

// Cancel cancels the run in flight, if any.
func (r *Runner[T]) Cancel() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// State returns the current lifecycle phase.
func (r *Runner[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Value returns the last successful result, or the zero value.
func (r *Runner[T]) Value() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Err returns the last run's error, or nil.
func (r *Runner[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Snapshot returns the full observable state in one consistent read.
func (r *Runner[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Runner[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{State: r.state, Value: r.value, Err: r.err}
}

// Watch registers a handler for lifecycle snapshots.
func (r *Runner[T]) Watch(fn func(Snapshot[T])) *notify.Subscription {
	return r.hub.Subscribe(fn)
}

// Unwatch removes a subscription registered with Watch.
func (r *Runner[T]) Unwatch(sub *notify.Subscription) bool {
	return r.hub.Unsubscribe(sub)
}
