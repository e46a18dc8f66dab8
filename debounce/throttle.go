package debounce

import (
	"sync"
	"time"
)

// Throttler runs a function at most once per interval, on the leading
// edge: the first Trigger runs immediately, later ones are dropped
// until the interval has passed.
type Throttler struct {
	mu sync.Mutex

	interval time.Duration
	fn       func()

	lastRun time.Time
	stopped bool
}

// NewThrottler creates a throttler around fn.
func NewThrottler(interval time.Duration, fn func()) *Throttler {
	return &Throttler{
		interval: interval,
		fn:       fn,
	}
}

// Trigger runs fn if the interval has passed since the last run.
// It reports whether fn ran.
func (t *Throttler) Trigger() bool {
	t.mu.Lock()
	if t.stopped || t.fn == nil {
		t.mu.Unlock()
		return false
	}

	now := time.Now()
	if !t.lastRun.IsZero() && now.Sub(t.lastRun) < t.interval {
		t.mu.Unlock()
		return false
	}
	t.lastRun = now
	fn := t.fn
	t.mu.Unlock()

	fn()
	return true
}

// Stop prevents future runs. Stop is idempotent.
func (t *Throttler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}
