package notify

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// State represents the delivery state of a subscription.
type State int32

const (
	// StateActive means the subscription is receiving values.
	StateActive State = iota

	// StatePaused means delivery is temporarily suspended.
	StatePaused

	// StateCancelled means the subscription is permanently done.
	StateCancelled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Subscription is a handle to a registered subscriber.
// All methods are safe for concurrent use.
type Subscription struct {
	id    string
	state atomic.Int32
}

func newSubscription() *Subscription {
	return &Subscription{id: uuid.NewString()}
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// State returns the current subscription state.
func (s *Subscription) State() State {
	return State(s.state.Load())
}

// IsActive returns true if the subscription can receive values.
func (s *Subscription) IsActive() bool {
	return s.State() == StateActive
}

// Pause temporarily stops delivery to this subscription.
// Pausing a cancelled subscription has no effect.
func (s *Subscription) Pause() {
	s.state.CompareAndSwap(int32(StateActive), int32(StatePaused))
}

// Resume restarts delivery after a pause.
// Resuming a cancelled subscription has no effect.
func (s *Subscription) Resume() {
	s.state.CompareAndSwap(int32(StatePaused), int32(StateActive))
}

// Cancel permanently stops delivery. Cancel is idempotent.
func (s *Subscription) Cancel() {
	s.state.Store(int32(StateCancelled))
}
