// Package clock measures wall-clock time between presented frames.
package clock

import "time"

// Clock reports the time elapsed between successive Tick calls.
type Clock struct {
	now  func() time.Time
	last time.Time
	dt   time.Duration
}

// New returns a clock reading time.Now.
func New() *Clock {
	return NewWithClock(time.Now)
}

// NewWithClock returns a clock reading now. A nil now falls back to time.Now.
func NewWithClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick ends the current interval and starts the next one from the same
// sample. The first Tick only starts timing and returns 0.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		c.dt = 0
		return 0
	}
	c.dt = now.Sub(c.last)
	if c.dt < 0 {
		c.dt = 0
	}
	c.last = now
	return c.dt
}

// Elapsed returns the interval measured by the last Tick.
func (c *Clock) Elapsed() time.Duration { return c.dt }

// Seconds returns Elapsed in fractional seconds.
func (c *Clock) Seconds() float64 { return c.dt.Seconds() }
