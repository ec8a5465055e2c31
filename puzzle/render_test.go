package puzzle

import (
	"testing"
)

func TestRenderDrawsTilesInBoardOrder(t *testing.T) {
	grid := newTestGrid(t, 300, 300, 3)
	board := NewBoard(grid, newTestRand())
	board.MoveTile(2, FPt(17, 23))

	surface := &recordingSurface{size: FPt(300, 300)}
	Render(surface, testPicture, board, 2, DefaultRenderStyle)

	if len(surface.ops) != 1+2*board.TileCount() {
		t.Fatalf("expected clear plus two ops per tile, got %d ops", len(surface.ops))
	}
	if !surface.ops[0].Clear {
		t.Fatalf("expected the surface to be cleared first")
	}

	for i := range board.Tiles {
		stroke := surface.ops[1+2*i].Stroke
		img := surface.ops[2+2*i].Image
		if stroke == nil || img == nil {
			t.Fatalf("tile %d: expected stroke then image", i)
		}

		wantDst := FRectXYWH(board.Tiles[i].Current.X, board.Tiles[i].Current.Y, 100, 100)
		if stroke.Rect != wantDst || img.Dst != wantDst {
			t.Fatalf("tile %d: drawn at %+v/%+v, want %+v", i, stroke.Rect, img.Dst, wantDst)
		}

		wantSrc := FRectXYWH(board.Tiles[i].Correct.X, board.Tiles[i].Correct.Y, 100, 100)
		if img.Src != wantSrc {
			t.Fatalf("tile %d: source %+v, want %+v", i, img.Src, wantSrc)
		}

		wantColor := DefaultRenderStyle.StrokeColor
		if i == 2 {
			wantColor = DefaultRenderStyle.HighlightColor
		}
		if stroke.Color != wantColor || stroke.Width != DefaultRenderStyle.StrokeWidth {
			t.Fatalf("tile %d: stroke %v/%v, want %v/%v", i, stroke.Color, stroke.Width, wantColor, DefaultRenderStyle.StrokeWidth)
		}
	}
}

func TestRenderDoesNotTouchTiles(t *testing.T) {
	grid := newTestGrid(t, 300, 300, 4)
	board := NewBoard(grid, newTestRand())

	before := make([]Tile, len(board.Tiles))
	copy(before, board.Tiles)

	Render(&recordingSurface{}, testPicture, board, NoTile, DefaultRenderStyle)

	for i := range before {
		if before[i] != board.Tiles[i] {
			t.Fatalf("tile %d changed during render", i)
		}
	}
}

func TestSessionRenderClearsRedraw(t *testing.T) {
	c := newTestController(t, nil)
	s := c.Session()

	if !s.NeedsRedraw() {
		t.Fatalf("a new session must be drawn")
	}
	s.Render(&recordingSurface{}, testPicture, DefaultRenderStyle)
	if s.NeedsRedraw() {
		t.Fatalf("redraw flag survived a render")
	}

	spread(s.Board)
	c.Push(PointerEvent{Kind: PointerDown, Pos: FPt(4, 5004)})
	c.Update(0)
	if !s.NeedsRedraw() {
		t.Fatalf("picking up a tile must request a redraw")
	}
}
