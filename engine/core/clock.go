package core

import "time"

// Clock tracks seconds elapsed since it was created and the delta between
// the two most recent Update calls.
type Clock struct {
	start    time.Time
	now      func() time.Time
	time     float32
	prevTime float32
}

func NewClock() *Clock { return newClock(time.Now) }

func newClock(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Update samples the time source. The Host calls it once per frame.
func (c *Clock) Update() {
	c.prevTime = c.time
	c.time = float32(c.now().Sub(c.start).Seconds())
}

func (c *Clock) Time() float32      { return c.time }
func (c *Clock) DeltaTime() float32 { return c.time - c.prevTime }
