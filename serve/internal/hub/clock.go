package hub

import "time"

// clock counts down the current turn. It is guarded by the owning room's
// mutex; a fire whose generation is stale is ignored by the room.
type clock struct {
	turn     time.Duration
	enabled  bool
	gen      uint64
	timer    *time.Timer
	deadline time.Time
}

func (c *clock) restart(fire func(gen uint64)) {
	c.stop()
	if !c.enabled || c.turn <= 0 {
		return
	}

	gen := c.gen
	c.deadline = time.Now().Add(c.turn)
	c.timer = time.AfterFunc(c.turn, func() { fire(gen) })
}

func (c *clock) stop() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.deadline = time.Time{}
}

func (c *clock) running() bool {
	return c.timer != nil
}

func (c *clock) remaining(now time.Time) time.Duration {
	if !c.running() || now.After(c.deadline) {
		return 0
	}
	return c.deadline.Sub(now)
}
