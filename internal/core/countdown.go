package core

import "time"

// Countdown tracks a polled delay between automaton cycles. It never sleeps;
// the owner asks each tick whether the delay has run out.
type Countdown struct {
	start  time.Time
	active bool
}

// Begin starts the countdown at the provided instant.
func (c *Countdown) Begin(now time.Time) {
	c.start = now
	c.active = true
}

// Active reports whether a countdown is in progress.
func (c *Countdown) Active() bool { return c.active }

// Expired reports whether at least d has passed since Begin. It always
// reports false while the countdown is inactive.
func (c *Countdown) Expired(now time.Time, d time.Duration) bool {
	return c.active && now.Sub(c.start) >= d
}

// Clear stops the countdown.
func (c *Countdown) Clear() {
	c.start = time.Time{}
	c.active = false
}
