package game

import "time"

// FrameClock turns frame timestamps into delta times.
type FrameClock struct {
	last    time.Time
	started bool
}

// Delta returns the seconds elapsed since the previous call, or zero on the
// first call. A timestamp earlier than the previous one also yields zero.
func (c *FrameClock) Delta(now time.Time) float32 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return float32(d.Seconds())
}
