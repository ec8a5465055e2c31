package puzzle

import (
	"image"
	"math/rand/v2"
	"time"
)

type SessionState int

const (
	StatePlaying SessionState = iota
	StateSolved
	StateExpired
)

func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateSolved:
		return "solved"
	case StateExpired:
		return "expired"
	}
	return "unknown"
}

// Listener receives the session's outward notifications.
//
// Every session calls exactly one of Solved or TimeExpired, at most once.
type Listener interface {
	TimeChanged(remaining int)
	Solved()
	TimeExpired()
}

// DropListener is optionally implemented by a Listener
// that wants to know about every dropped tile.
type DropListener interface {
	Dropped(result DropResult)
}

type Settings struct {
	Difficulty int
	// seconds
	TimeLimit     int
	SnapTolerance float64
}

func DefaultSettings() Settings {
	return Settings{
		Difficulty:    DefaultDifficulty,
		TimeLimit:     DefaultTimeLimit,
		SnapTolerance: DefaultSnapTolerance,
	}
}

// Session is one play-through, from scramble to solved or expired.
// A restart builds a new Session; nothing is carried over.
type Session struct {
	Board     *Board
	Drag      *DragController
	Countdown *Countdown

	State SessionState

	listener Listener
	redraw   bool
}

// NewSession scrambles a board over grid and starts the countdown.
func NewSession(grid Grid, settings Settings, rng *rand.Rand, listener Listener) *Session {
	s := &Session{
		Board:     NewBoard(grid, rng),
		Drag:      NewDragController(settings.SnapTolerance),
		Countdown: NewCountdown(settings.TimeLimit),
		State:     StatePlaying,
		listener:  listener,
		redraw:    true,
	}

	s.Countdown.OnTick = func(remaining int) {
		if s.listener != nil {
			s.listener.TimeChanged(remaining)
		}
	}
	s.Countdown.OnExpire = s.expire

	s.Countdown.Start()
	if s.listener != nil {
		s.listener.TimeChanged(s.Countdown.Remaining())
	}

	return s
}

func (s *Session) IsPlaying() bool {
	return s.State == StatePlaying
}

// HandlePointer applies one input event.
// Returns true if the board changed.
func (s *Session) HandlePointer(ev PointerEvent) bool {
	if !s.IsPlaying() {
		return false
	}

	changed := false

	switch ev.Kind {
	case PointerDown:
		changed = s.Drag.Press(s.Board, ev.Pos)
	case PointerMove:
		changed = s.Drag.Move(s.Board, ev.Pos)
	case PointerUp:
		var result DropResult
		result, changed = s.Drag.Release(s.Board)
		if changed {
			s.dropped(result)
		}
	}

	if changed {
		s.redraw = true
	}

	return changed
}

func (s *Session) dropped(result DropResult) {
	if dl, ok := s.listener.(DropListener); ok {
		dl.Dropped(result)
	}

	if result.Solved {
		s.solve()
	}
}

func (s *Session) solve() {
	if !s.IsPlaying() {
		return
	}

	s.Countdown.Stop()
	s.State = StateSolved
	s.redraw = true

	if s.listener != nil {
		s.listener.Solved()
	}
}

func (s *Session) expire() {
	if !s.IsPlaying() {
		return
	}

	s.Drag.Cancel()
	s.State = StateExpired
	s.redraw = true

	if s.listener != nil {
		s.listener.TimeExpired()
	}
}

// Advance feeds elapsed time to the countdown.
func (s *Session) Advance(dt time.Duration) {
	s.Countdown.Advance(dt)
}

// Stop halts the countdown without ending the session.
// Used when a new session replaces this one.
func (s *Session) Stop() {
	s.Countdown.Stop()
	s.Drag.Cancel()
}

func (s *Session) TimeRemaining() int {
	return s.Countdown.Remaining()
}

// NeedsRedraw reports whether the board changed since the last Render.
func (s *Session) NeedsRedraw() bool {
	return s.redraw
}

func (s *Session) Render(dst Surface, picture image.Image, style RenderStyle) {
	Render(dst, picture, s.Board, s.Drag.Highlighted(), style)
	s.redraw = false
}
