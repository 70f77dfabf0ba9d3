package core

import "time"

// StepClock paces simulation updates at a steady ticks-per-second rate.
// Unlike a plain ticker it reports how many ticks are due since the previous
// poll, bounded by a catch-up limit so a stalled frame does not trigger a
// burst of updates.
type StepClock struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
}

// NewStepClock constructs a StepClock targeting the given TPS.
func NewStepClock(tps int) *StepClock {
	c := &StepClock{maxCatchUp: 4}
	c.SetTPS(tps)
	c.accumulator = c.step
	return c
}

// SetTPS changes the tick rate. Safe to call between polls.
func (c *StepClock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 30
	}
	c.step = time.Second / time.Duration(tps)
}

// Ticks reports how many simulation updates are due. At most the catch-up
// bound is returned; excess backlog is discarded.
func (c *StepClock) Ticks() int {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	c.accumulator += now.Sub(c.last)
	c.last = now

	n := 0
	for c.accumulator >= c.step {
		c.accumulator -= c.step
		n++
	}
	if n > c.maxCatchUp {
		c.accumulator = 0
		n = c.maxCatchUp
	}
	return n
}
