package puzzle

import (
	"testing"
)

func newDragTestBoard(t *testing.T) *Board {
	t.Helper()
	grid := newTestGrid(t, 300, 300, 3)
	board := NewBoard(grid, newTestRand())
	for i := range board.Tiles {
		board.MoveTile(i, FPt(200, 200))
	}
	board.MoveTile(4, FPt(10, 20))
	return board
}

func TestDragKeepsGrabOffset(t *testing.T) {
	board := newDragTestBoard(t)
	dc := NewDragController(DefaultSnapTolerance)

	if !dc.Press(board, FPt(40, 70)) {
		t.Fatalf("expected to pick up a tile")
	}
	if dc.Dragged() != 4 || dc.Highlighted() != 4 {
		t.Fatalf("expected tile 4 held and highlighted, got %d/%d", dc.Dragged(), dc.Highlighted())
	}
	if !dc.GrabOffset().Eq(FPt(30, 50)) {
		t.Fatalf("unexpected grab offset %+v", dc.GrabOffset())
	}

	dc.Move(board, FPt(140, 170))
	if got := board.Tiles[4].Current; !got.Eq(FPt(110, 120)) {
		t.Fatalf("expected tile at (110,120), got %+v", got)
	}

	dc.Move(board, FPt(0, 0))
	if got := board.Tiles[4].Current; !got.Eq(FPt(-30, -50)) {
		t.Fatalf("expected tile at (-30,-50), got %+v", got)
	}
}

func TestDragPressOnEmptySpace(t *testing.T) {
	board := newDragTestBoard(t)
	dc := NewDragController(DefaultSnapTolerance)

	if dc.Press(board, FPt(150, 5)) {
		t.Fatalf("expected no tile under the pointer")
	}
	if dc.IsDragging() || dc.Highlighted() != NoTile {
		t.Fatalf("press on empty space must not change state")
	}

	before := board.Tiles[4].Current
	if dc.Move(board, FPt(20, 20)) {
		t.Fatalf("move without a held tile must be a no-op")
	}
	if !board.Tiles[4].Current.Eq(before) {
		t.Fatalf("tile moved without being held")
	}

	if _, ok := dc.Release(board); ok {
		t.Fatalf("release without a held tile must be a no-op")
	}
}

func TestDragReleaseClearsState(t *testing.T) {
	board := newDragTestBoard(t)
	dc := NewDragController(DefaultSnapTolerance)

	dc.Press(board, FPt(15, 25))
	dc.Move(board, FPt(103, 105))

	result, ok := dc.Release(board)
	if !ok {
		t.Fatalf("expected a drop")
	}
	if result.Tile != 4 || !result.Snapped {
		t.Fatalf("unexpected drop %+v", result)
	}
	if !board.Tiles[4].Current.Eq(FPt(100, 100)) {
		t.Fatalf("expected snap to (100,100), got %+v", board.Tiles[4].Current)
	}
	if dc.IsDragging() || dc.Highlighted() != NoTile {
		t.Fatalf("release must clear dragged and highlighted tiles")
	}
}

func TestDragSecondPressReplacesHeldTile(t *testing.T) {
	board := newDragTestBoard(t)
	dc := NewDragController(DefaultSnapTolerance)

	dc.Press(board, FPt(15, 25))
	dc.Press(board, FPt(250, 250))

	if dc.Dragged() != 8 {
		t.Fatalf("expected the latest press to win, got tile %d", dc.Dragged())
	}

	dc.Move(board, FPt(260, 260))
	if !board.Tiles[4].Current.Eq(FPt(10, 20)) {
		t.Fatalf("the replaced tile must stay put, got %+v", board.Tiles[4].Current)
	}
	if !board.Tiles[8].Current.Eq(FPt(210, 210)) {
		t.Fatalf("expected tile 8 at (210,210), got %+v", board.Tiles[8].Current)
	}
}
