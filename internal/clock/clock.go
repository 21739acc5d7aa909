// Package clock supplies the time sources that drive a play session and the
// deferred tasks that run inside its frame loop.
//
// Every time value is a monotonic offset (time.Duration) from an arbitrary
// origin. The simulation never reads wall-clock time directly.
package clock

import (
	"time"
)

// Clock provides monotonic timestamps.
type Clock interface {
	Now() time.Duration
}

var _ Clock = (*Stepper)(nil)

// Stepper is a fixed-step clock: every Step advances it by exactly one tick.
// Fixed steps make a run reproducible from its seed and input ticks.
type Stepper struct {
	rate  int
	step  time.Duration
	ticks int
}

// NewStepper creates a fixed-step clock for the given tick rate.
func NewStepper(tickRate int) *Stepper {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Stepper{rate: tickRate, step: time.Second / time.Duration(tickRate)}
}

// Step advances the clock by one tick and returns the new time.
func (c *Stepper) Step() time.Duration {
	c.ticks++
	return c.Now()
}

// Now returns the time of the latest tick.
func (c *Stepper) Now() time.Duration {
	return time.Duration(c.ticks) * c.step
}

// Ticks returns how many ticks have elapsed.
func (c *Stepper) Ticks() int {
	return c.ticks
}

// Interval returns the duration of one tick.
func (c *Stepper) Interval() time.Duration {
	return c.step
}

// Rate returns the tick rate in ticks per second.
func (c *Stepper) Rate() int {
	return c.rate
}
