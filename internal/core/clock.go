package core

import "time"

// Clock abstracts the wall clock so the simulation can be driven
// deterministically in tests. Production code uses SystemClock; tests use
// ManualClock and advance it by hand.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock whose time only moves when Advance is called.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set jumps the clock to an exact instant.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}
