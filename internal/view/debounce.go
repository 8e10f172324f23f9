package view

import "time"

// DefaultQuiet is the quiet period a free-text query must settle for before
// it becomes an active filter.
const DefaultQuiet = 400 * time.Millisecond

// Debounce gates a raw input value behind a quiet period. It holds no timer
// of its own; callers feed it the current time from their tick loop, which
// keeps it deterministic under test.
type Debounce struct {
	quiet    time.Duration
	pending  string
	applied  string
	deadline time.Time
}

// NewDebounce builds a Debounce. A non-positive quiet uses DefaultQuiet.
func NewDebounce(quiet time.Duration) *Debounce {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debounce{quiet: quiet}
}

// Input records a new raw value and restarts the quiet period.
func (d *Debounce) Input(value string, now time.Time) {
	if value == d.pending {
		return
	}
	d.pending = value
	d.deadline = now.Add(d.quiet)
}

// Tick applies the pending value once the quiet period has elapsed. It
// returns true when the settled value changed, signalling a recompute.
func (d *Debounce) Tick(now time.Time) bool {
	if d.pending == d.applied {
		return false
	}
	if now.Before(d.deadline) {
		return false
	}
	d.applied = d.pending
	return true
}

// Value returns the settled query value.
func (d *Debounce) Value() string {
	return d.applied
}
