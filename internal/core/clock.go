package core

import "time"

// Clock supplies the current time to the simulation. Tests inject a
// ManualClock so timed behavior is deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// TickClock advances a fixed step on every Tick call. Headless runs and
// the SSH server use it so simulated time follows simulated ticks.
type TickClock struct {
	ManualClock
	step time.Duration
}

// NewTickClock creates a clock advancing by one tick of the given rate.
func NewTickClock(start time.Time, tickRate int) *TickClock {
	return &TickClock{
		ManualClock: ManualClock{now: start},
		step:        time.Second / time.Duration(max(1, tickRate)),
	}
}

// Tick advances the clock by one step.
func (c *TickClock) Tick() { c.Advance(c.step) }
