package typing

import "github.com/vovakirdan/rush-arcade/internal/core"

// Countdown turns simulation ticks into whole countdown seconds.
type Countdown struct {
	ticksPerSecond int
	ticks          int
}

// NewCountdown creates a countdown for the given tick rate. A non-positive
// rate means the platform default, matching the tick loop's own fallback.
func NewCountdown(tickRate int) Countdown {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return Countdown{ticksPerSecond: tickRate}
}

// Advance counts one tick and reports whether a full second has elapsed.
func (c *Countdown) Advance() bool {
	c.ticks++
	if c.ticks >= c.ticksPerSecond {
		c.ticks = 0
		return true
	}
	return false
}

// Restart drops the partial second so the next second starts now.
func (c *Countdown) Restart() {
	c.ticks = 0
}
