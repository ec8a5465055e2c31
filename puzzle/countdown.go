package puzzle

import (
	"time"
)

const DefaultTimeLimit = 60

// Countdown counts whole seconds down from Budget.
//
// It does not read the wall clock. The owner feeds it elapsed time
// through Advance, which keeps it on the same thread as the rest of the
// session state.
type Countdown struct {
	Budget int

	// fires after every whole second, with the new remaining value
	OnTick func(remaining int)
	// fires once, when remaining reaches zero
	OnExpire func()

	remaining int
	carry     time.Duration
	running   bool
}

func NewCountdown(budget int) *Countdown {
	return &Countdown{
		Budget:    budget,
		remaining: budget,
	}
}

// Start resets the countdown to Budget and starts it.
func (c *Countdown) Start() {
	c.remaining = c.Budget
	c.carry = 0
	c.running = c.remaining > 0
}

// Stop halts the countdown. Stopping a stopped countdown does nothing.
func (c *Countdown) Stop() {
	c.running = false
}

func (c *Countdown) IsRunning() bool {
	return c.running
}

func (c *Countdown) Remaining() int {
	return c.remaining
}

// Advance consumes dt and fires OnTick for every whole second crossed.
// Once the countdown expires the rest of dt is discarded.
func (c *Countdown) Advance(dt time.Duration) {
	if !c.running || dt <= 0 {
		return
	}

	c.carry += dt

	for c.running && c.carry >= time.Second {
		c.carry -= time.Second
		c.remaining--

		if c.OnTick != nil {
			c.OnTick(c.remaining)
		}

		if c.remaining <= 0 {
			c.running = false
			c.carry = 0
			if c.OnExpire != nil {
				c.OnExpire()
			}
		}
	}
}
