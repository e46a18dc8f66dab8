package history

import (
	"errors"
	"sync"

	"github.com/dlane/statekit/notify"
)

// ErrInvalidCapacity is returned by New when the configured capacity
// is less than 1.
var ErrInvalidCapacity = errors.New("history: capacity must be at least 1")

// History is a bounded log of committed values with a cursor.
// The value at the cursor is the current value. The zero value is
// not usable; construct with New.
type History[T comparable] struct {
	mu      sync.Mutex
	entries []T
	cursor  int

	capacity int

	hub *notify.Hub[Snapshot[T]]
}

// New creates a container holding initial as its only entry,
// with the cursor on it.
func New[T comparable](initial T, opts ...Option) (*History[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &History[T]{
		entries:  []T{initial},
		cursor:   0,
		capacity: cfg.capacity,
		hub:      notify.NewHub[Snapshot[T]](),
	}, nil
}

// Set commits v as the new current value.
// If v equals the entry at the cursor the log and cursor are left
// unchanged and no watcher fires. Otherwise the forward branch is
// discarded, v is appended, the oldest entries are evicted until the
// log fits the capacity, and the cursor lands on v.
// Returns the current value.
func (h *History[T]) Set(v T) T {
	return h.commit(v)
}

// Update commits fn(current) as the new current value. fn sees only
// the current value, never any other log entry. A nil fn is a no-op.
// Returns the current value.
func (h *History[T]) Update(fn func(T) T) T {
	if fn == nil {
		return h.Current()
	}

	h.mu.Lock()
	v := fn(h.entries[h.cursor])
	h.mu.Unlock()

	return h.commit(v)
}

func (h *History[T]) commit(v T) T {
	h.mu.Lock()

	if v == h.entries[h.cursor] {
		// Duplicate of the cursor entry: the visible value is v,
		// but the log does not grow and nobody is notified.
		h.entries[h.cursor] = v
		h.mu.Unlock()
		return v
	}

	// A new commit invalidates the forward (redo) branch.
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}

	h.entries = append(h.entries, v)

	// Evict from the front, never the back.
	if excess := len(h.entries) - h.capacity; excess > 0 {
		h.entries = h.entries[excess:]
	}

	h.cursor = len(h.entries) - 1

	snap := h.snapshotLocked()
	h.mu.Unlock()

	h.hub.Publish(snap)
	return v
}

// Back moves the cursor one entry toward the oldest. At the oldest
// entry it is a no-op. Returns the current value.
func (h *History[T]) Back() T {
	return h.moveTo(func(cursor, n int) int { return cursor - 1 })
}

// Forward moves the cursor one entry toward the newest. At the newest
// entry it is a no-op. Returns the current value.
func (h *History[T]) Forward() T {
	return h.moveTo(func(cursor, n int) int { return cursor + 1 })
}

// GoTo moves the cursor to index. Out-of-range indexes are silent
// no-ops, matching Back and Forward. Returns the current value.
func (h *History[T]) GoTo(index int) T {
	return h.moveTo(func(cursor, n int) int { return index })
}

// moveTo applies a cursor transition, ignoring out-of-range targets.
func (h *History[T]) moveTo(next func(cursor, n int) int) T {
	h.mu.Lock()

	target := next(h.cursor, len(h.entries))
	if target < 0 || target > len(h.entries)-1 || target == h.cursor {
		v := h.entries[h.cursor]
		h.mu.Unlock()
		return v
	}

	h.cursor = target
	v := h.entries[h.cursor]
	snap := h.snapshotLocked()
	h.mu.Unlock()

	h.hub.Publish(snap)
	return v
}

// Current returns the value at the cursor.
func (h *History[T]) Current() T {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.cursor]
}

// Index returns the cursor position.
func (h *History[T]) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

// Len returns the number of retained entries. It is never zero and
// never exceeds the capacity.
func (h *History[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Capacity returns the configured capacity.
func (h *History[T]) Capacity() int {
	return h.capacity
}

// CanBack returns true if Back would move the cursor.
func (h *History[T]) CanBack() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor > 0
}

// CanForward returns true if Forward would move the cursor.
func (h *History[T]) CanForward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor < len(h.entries)-1
}

// Entries returns a copy of the log, oldest first.
func (h *History[T]) Entries() []T {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]T, len(h.entries))
	copy(out, h.entries)
	return out
}

// Snapshot returns the full observable state in one consistent read.
func (h *History[T]) Snapshot() Snapshot[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *History[T]) snapshotLocked() Snapshot[T] {
	entries := make([]T, len(h.entries))
	copy(entries, h.entries)

	return Snapshot[T]{
		Entries:    entries,
		Cursor:     h.cursor,
		Current:    h.entries[h.cursor],
		CanBack:    h.cursor > 0,
		CanForward: h.cursor < len(h.entries)-1,
	}
}

// Watch registers a handler that receives a Snapshot after every
// state-changing call. No-op calls never fire it.
func (h *History[T]) Watch(fn func(Snapshot[T])) *notify.Subscription {
	return h.hub.Subscribe(fn)
}

// Unwatch removes a subscription registered with Watch.
func (h *History[T]) Unwatch(sub *notify.Subscription) bool {
	return h.hub.Unsubscribe(sub)
}
