// Package clock supplies the time used to stamp placed instances.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Stepping returns a fixed time that moves forward by step after every read,
// so consecutive instances get distinct, ordered timestamps in tests.
type Stepping struct {
	next time.Time
	step time.Duration
}

// NewStepping starts a Stepping clock at start.
func NewStepping(start time.Time, step time.Duration) *Stepping {
	return &Stepping{next: start, step: step}
}

// Now returns the current reading and advances the clock.
func (c *Stepping) Now() time.Time {
	t := c.next
	c.next = c.next.Add(c.step)
	return t
}

// Peek returns the next reading without advancing.
func (c *Stepping) Peek() time.Time {
	return c.next
}
