package puzzle

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func newTestController(t *testing.T, listener Listener) *Controller {
	t.Helper()
	c := NewController(DefaultSettings(), listener)
	c.NewRand = newTestRand
	if err := c.Start(3, FPt(300, 300), testPicture); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return c
}

// drag presses at the tile's origin plus one pixel, so the grab offset is (1,1)
// and the tile ends up exactly at to.
func drag(c *Controller, tile int, to FPoint) {
	from := c.Session().Board.Tiles[tile].Current.Add(FPt(1, 1))
	c.Push(PointerEvent{Kind: PointerDown, Pos: from})
	c.Push(PointerEvent{Kind: PointerMove, Pos: to.Add(FPt(1, 1))})
	c.Push(PointerEvent{Kind: PointerUp})
	c.Update(0)
}

// spread moves every tile into its own column far apart so presses hit only one tile.
func spread(board *Board) {
	for i := range board.Tiles {
		board.MoveTile(i, FPt(float64(i)*1000, 5000))
	}
}

func TestControllerStartErrors(t *testing.T) {
	c := NewController(DefaultSettings(), nil)

	if err := c.Start(3, FPt(300, 300), nil); !errors.Is(err, ErrImageNotReady) {
		t.Fatalf("expected ErrImageNotReady, got %v", err)
	}
	if err := c.Start(0, FPt(300, 300), testPicture); !errors.Is(err, ErrUnsupportedDifficulty) {
		t.Fatalf("expected ErrUnsupportedDifficulty, got %v", err)
	}
	if err := c.Start(3, FPt(0, 0), testPicture); !errors.Is(err, ErrInvalidCanvas) {
		t.Fatalf("expected ErrInvalidCanvas, got %v", err)
	}
	if c.HasSession() {
		t.Fatalf("failed starts must not create a session")
	}
}

func TestControllerFailedStartKeepsRunningSession(t *testing.T) {
	listener := &countingListener{}
	c := newTestController(t, listener)
	old := c.Session()

	if err := c.Start(9, FPt(300, 300), testPicture); err == nil {
		t.Fatalf("expected an error")
	}
	if c.Session() != old || !old.Countdown.IsRunning() {
		t.Fatalf("a rejected start must leave the current session alone")
	}
}

// Scenario A: a tile dropped 2 and 3 pixels away from its cell snaps onto it.
func TestScenarioSnapWithinTolerance(t *testing.T) {
	listener := &countingListener{}
	c := newTestController(t, listener)
	board := c.Session().Board
	spread(board)

	drag(c, 4, FPt(98, 97))

	if got := board.Tiles[4].Current; !got.Eq(FPt(100, 100)) {
		t.Fatalf("expected tile 4 at (100,100), got %+v", got)
	}
	if len(listener.drops) != 1 || !listener.drops[0].Snapped {
		t.Fatalf("expected one snapped drop, got %+v", listener.drops)
	}
}

// Scenario B: a tile 20 pixels off stays where it was dropped
// and the board is not solved even with everything else in place.
func TestScenarioNoSnapOutsideTolerance(t *testing.T) {
	listener := &countingListener{}
	c := newTestController(t, listener)
	board := c.Session().Board
	placeAll(board)
	board.MoveTile(4, FPt(2000, 2000))

	drag(c, 4, FPt(80, 80))

	if got := board.Tiles[4].Current; !got.Eq(FPt(80, 80)) {
		t.Fatalf("expected tile 4 to stay at (80,80), got %+v", got)
	}
	if listener.solved != 0 || c.Session().State != StatePlaying {
		t.Fatalf("board must not be solved")
	}
}

// Scenario C: placing every tile by dragging fires one win and stops the clock.
func TestScenarioSolveByDragging(t *testing.T) {
	listener := &countingListener{}
	c := newTestController(t, listener)
	s := c.Session()
	spread(s.Board)

	for i := range s.Board.Tiles {
		target := s.Board.Tiles[i].Correct.Add(FPt(4, -3))
		drag(c, i, target)
		c.Update(100 * time.Millisecond)
	}

	if listener.solved != 1 {
		t.Fatalf("expected exactly one win, got %d", listener.solved)
	}
	if s.State != StateSolved || s.Countdown.IsRunning() {
		t.Fatalf("expected solved session with a stopped clock, got %v running=%v", s.State, s.Countdown.IsRunning())
	}

	remaining := s.TimeRemaining()
	c.Update(10 * time.Second)
	if s.TimeRemaining() != remaining {
		t.Fatalf("clock kept ticking after the win")
	}

	// input after the win is ignored, so the win can not fire again
	drag(c, 0, FPt(150, 150))
	drag(c, 0, FPt(0, 0))
	if listener.solved != 1 || listener.expired != 0 {
		t.Fatalf("expected one win and no expiry, got %d/%d", listener.solved, listener.expired)
	}
}

// Scenario D: the clock runs out, one expiry fires and the session is gone.
func TestScenarioTimeExpires(t *testing.T) {
	listener := &countingListener{}
	c := newTestController(t, listener)
	board := c.Session().Board
	spread(board)
	before := board.Tiles[0].Current

	for range 61 * 60 {
		c.Update(time.Second / 60)
	}

	if listener.expired != 1 || listener.solved != 0 {
		t.Fatalf("expected one expiry and no win, got %d/%d", listener.expired, listener.solved)
	}
	if c.HasSession() {
		t.Fatalf("expired session was not torn down")
	}
	if listener.ticks[0] != 60 || listener.ticks[len(listener.ticks)-1] != 0 || len(listener.ticks) != 61 {
		t.Fatalf("unexpected ticks %v", listener.ticks)
	}

	c.Push(PointerEvent{Kind: PointerDown, Pos: before.Add(FPt(1, 1))})
	c.Push(PointerEvent{Kind: PointerMove, Pos: FPt(3, 3)})
	c.Push(PointerEvent{Kind: PointerUp})
	c.Update(time.Second)

	if !board.Tiles[0].Current.Eq(before) {
		t.Fatalf("stale tile moved after teardown")
	}
	if listener.expired != 1 {
		t.Fatalf("expiry fired again")
	}
}

func TestControllerRestartCancelsOldClock(t *testing.T) {
	listener := &countingListener{}
	c := newTestController(t, listener)
	old := c.Session()

	c.Update(20 * time.Second)

	if err := c.Start(5, FPt(500, 500), testPicture); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if old.Countdown.IsRunning() {
		t.Fatalf("old clock still running")
	}
	s := c.Session()
	if s == old || s.Board.TileCount() != 25 || s.TimeRemaining() != 60 {
		t.Fatalf("expected a fresh 5x5 session with a full clock")
	}

	c.Update(59 * time.Second)
	if listener.expired != 0 {
		t.Fatalf("old clock leaked into the new session")
	}
	c.Update(time.Second)
	if listener.expired != 1 {
		t.Fatalf("expected the new session to expire once, got %d", listener.expired)
	}
}

func TestControllerDropsEventsAcrossRestart(t *testing.T) {
	c := newTestController(t, nil)
	c.Push(PointerEvent{Kind: PointerDown, Pos: FPt(1, 1)})

	c.NewRand = func() *rand.Rand { return rand.New(rand.NewPCG(7, 7)) }
	if err := c.Start(3, FPt(300, 300), testPicture); err != nil {
		t.Fatalf("Start: %v", err)
	}
	c.Update(0)

	if c.Session().Drag.IsDragging() {
		t.Fatalf("input queued for the old session reached the new one")
	}
}

func TestControllerEventsApplyInOrder(t *testing.T) {
	c := newTestController(t, nil)
	board := c.Session().Board
	spread(board)

	start := board.Tiles[2].Current
	c.Push(PointerEvent{Kind: PointerDown, Pos: start.Add(FPt(10, 10))})
	c.Push(PointerEvent{Kind: PointerMove, Pos: FPt(50, 50)})
	c.Push(PointerEvent{Kind: PointerMove, Pos: FPt(211, 12)})
	c.Push(PointerEvent{Kind: PointerUp})
	c.Update(0)

	if got := board.Tiles[2].Current; !got.Eq(FPt(200, 0)) {
		t.Fatalf("expected the last move to win and snap to (200,0), got %+v", got)
	}
	if !c.NeedsRedraw() {
		t.Fatalf("expected a redraw after the drop")
	}
}
