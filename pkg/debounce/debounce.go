// Package debounce delays running a function until a quiet period has
// elapsed since the last request. Used to hold off search passes while
// the user is still typing.
package debounce

import (
	"sync"
	"time"
)

// Debouncer owns a single pending timer. Each Do call discards any
// previously scheduled function, so only the most recent one runs once
// the wait elapses. Fire-and-forget: nothing is returned from the
// scheduled function.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

// New creates a debouncer with the given quiet period.
func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Do schedules fn to run after the quiet period, superseding any
// pending invocation. fn runs on its own goroutine.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Cancel discards the pending invocation, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Wait returns the configured quiet period.
func (d *Debouncer) Wait() time.Duration {
	return d.wait
}
