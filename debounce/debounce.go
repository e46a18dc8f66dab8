package debounce

import (
	"sync"
	"time"
)

// Debouncer delays a function until an interval has passed with no
// further triggers. All methods are safe for concurrent use.
type Debouncer struct {
	mu sync.Mutex

	interval time.Duration
	fn       func()

	timer   *time.Timer
	pending bool
	stopped bool
}

// New creates a debouncer that runs fn once interval has elapsed since
// the last Trigger. A non-positive interval means fn runs on the next
// timer tick, effectively immediately.
func New(interval time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		interval: interval,
		fn:       fn,
	}
}

// Trigger schedules fn, restarting the countdown if one is already
// running. Triggering a stopped debouncer has no effect.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || d.fn == nil {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = true
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped || !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	fn := d.fn
	d.mu.Unlock()

	fn()
}

// Flush runs a pending call immediately instead of waiting out the
// interval. It does nothing when no call is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped || !d.pending {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
	fn := d.fn
	d.mu.Unlock()

	fn()
}

// Pending reports whether a call is scheduled but not yet run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Stop cancels any pending call and prevents future ones.
// Stop is idempotent.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
}
