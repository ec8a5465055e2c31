package puzzle

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"time"
)

var ErrImageNotReady = errors.New("image is not ready")

// Controller owns the current session and everything that outlives it:
// settings, the listener and the pending input.
//
// All methods must be called from the same goroutine.
type Controller struct {
	Settings Settings
	Listener Listener

	// NewRand returns the random source for the next scramble.
	// Defaults to a randomly seeded PCG.
	NewRand func() *rand.Rand

	session *Session
	pending Queue[PointerEvent]
}

func NewController(settings Settings, listener Listener) *Controller {
	return &Controller{
		Settings: settings,
		Listener: listener,
	}
}

// Start discards the current session, if any, and starts a new one
// on a canvasSize canvas.
//
// picture is the image the tiles are cut from; a nil picture means it is
// still loading and the session is not started.
func (c *Controller) Start(difficulty int, canvasSize FPoint, picture image.Image) error {
	if picture == nil {
		return ErrImageNotReady
	}

	grid, err := NewGrid(canvasSize.X, canvasSize.Y, difficulty)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	c.Teardown()

	settings := c.Settings
	settings.Difficulty = difficulty
	c.Settings = settings

	c.session = NewSession(grid, settings, c.newRand(), c.Listener)

	return nil
}

// Teardown drops the current session and any input queued for it.
func (c *Controller) Teardown() {
	if c.session != nil {
		c.session.Stop()
	}
	c.session = nil
	c.pending.Clear()
}

func (c *Controller) newRand() *rand.Rand {
	if c.NewRand != nil {
		return c.NewRand()
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Session returns the live session or nil.
func (c *Controller) Session() *Session {
	return c.session
}

func (c *Controller) HasSession() bool {
	return c.session != nil
}

// Push queues an input event for the next Update.
// Events without a session are dropped.
func (c *Controller) Push(ev PointerEvent) {
	if c.session == nil {
		return
	}
	c.pending.Enqueue(ev)
}

// Update applies queued input in arrival order, then advances the clock by dt.
// An expired session is torn down at the end of the update.
func (c *Controller) Update(dt time.Duration) {
	s := c.session
	if s == nil {
		c.pending.Clear()
		return
	}

	for !c.pending.IsEmpty() {
		s.HandlePointer(c.pending.Dequeue())
	}

	s.Advance(dt)

	if s.State == StateExpired {
		c.Teardown()
	}
}

// NeedsRedraw reports whether the board changed since it was last rendered.
func (c *Controller) NeedsRedraw() bool {
	return c.session != nil && c.session.NeedsRedraw()
}

// Render draws the live session. It does nothing without one.
func (c *Controller) Render(dst Surface, picture image.Image, style RenderStyle) {
	if c.session == nil {
		return
	}
	c.session.Render(dst, picture, style)
}
