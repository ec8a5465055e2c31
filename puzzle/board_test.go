package puzzle

import (
	"testing"
)

func TestNewBoardCreatesOneTilePerCell(t *testing.T) {
	for _, n := range SupportedDifficulties {
		grid := newTestGrid(t, 640, 480, n)
		board := NewBoard(grid, newTestRand())

		if board.TileCount() != n*n {
			t.Fatalf("n=%d: expected %d tiles, got %d", n, n*n, board.TileCount())
		}

		seen := make(map[FPoint]bool)
		for i, tile := range board.Tiles {
			if seen[tile.Correct] {
				t.Fatalf("n=%d: duplicate correct position %+v", n, tile.Correct)
			}
			seen[tile.Correct] = true

			if want := grid.CorrectPosition(tile.Row, tile.Col); !tile.Correct.Eq(want) {
				t.Fatalf("n=%d: tile %d correct %+v, want %+v", n, i, tile.Correct, want)
			}
			if wantRow, wantCol := i/n, i%n; tile.Row != wantRow || tile.Col != wantCol {
				t.Fatalf("n=%d: tile %d at (%d,%d), want row-major (%d,%d)", n, i, tile.Row, tile.Col, wantRow, wantCol)
			}
		}
	}
}

func TestNewBoardScattersInsideCanvas(t *testing.T) {
	rng := newTestRand()

	for round := 0; round < 50; round++ {
		for _, n := range SupportedDifficulties {
			grid := newTestGrid(t, 500, 333, n)
			board := NewBoard(grid, rng)

			maxX := grid.CanvasWidth - grid.TileWidth
			maxY := grid.CanvasHeight - grid.TileHeight

			for i, tile := range board.Tiles {
				p := tile.Current
				if p.X < 0 || p.X > maxX || p.Y < 0 || p.Y > maxY {
					t.Fatalf("n=%d: tile %d scattered to %+v, bounds [0,%v]x[0,%v]", n, i, p, maxX, maxY)
				}
			}
		}
	}
}

func TestNewBoardSameSeedSameScramble(t *testing.T) {
	grid := newTestGrid(t, 300, 300, 4)

	a := NewBoard(grid, newTestRand())
	b := NewBoard(grid, newTestRand())

	for i := range a.Tiles {
		if !a.Tiles[i].Current.Eq(b.Tiles[i].Current) {
			t.Fatalf("tile %d differs: %+v vs %+v", i, a.Tiles[i].Current, b.Tiles[i].Current)
		}
	}
}

func TestTileAtPicksTopmost(t *testing.T) {
	grid := newTestGrid(t, 300, 300, 3)
	board := NewBoard(grid, newTestRand())

	// stack three tiles on the same spot
	board.MoveTile(0, FPt(50, 50))
	board.MoveTile(4, FPt(60, 60))
	board.MoveTile(7, FPt(70, 70))
	for _, i := range []int{1, 2, 3, 5, 6, 8} {
		board.MoveTile(i, FPt(200, 200))
	}

	tests := []struct {
		pt   FPoint
		want int
		ok   bool
	}{
		{FPt(55, 55), 0, true},
		{FPt(65, 65), 4, true},
		{FPt(100, 100), 7, true},
		{FPt(169.9, 169.9), 7, true},
		{FPt(170, 170), NoTile, false},
		{FPt(10, 10), NoTile, false},
		{FPt(250, 250), 8, true},
	}

	for _, tc := range tests {
		got, ok := board.TileAt(tc.pt)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("TileAt(%+v) = %d, %v; want %d, %v", tc.pt, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTileAtIsHalfOpen(t *testing.T) {
	grid := newTestGrid(t, 300, 300, 3)
	board := NewBoard(grid, newTestRand())
	placeAll(board)

	if got, _ := board.TileAt(FPt(100, 100)); got != 4 {
		t.Fatalf("expected tile 4 to own its top left corner, got %d", got)
	}
	if got, _ := board.TileAt(FPt(99.999, 99.999)); got != 0 {
		t.Fatalf("expected tile 0 just before the corner, got %d", got)
	}
}

func TestCheckWin(t *testing.T) {
	grid := newTestGrid(t, 300, 300, 3)
	board := NewBoard(grid, newTestRand())

	placeAll(board)
	if !board.CheckWin() {
		t.Fatalf("expected a fully placed board to win")
	}
	if board.PlacedCount() != 9 {
		t.Fatalf("expected 9 placed, got %d", board.PlacedCount())
	}

	board.MoveTile(5, board.Tiles[5].Correct.Add(FPt(1, 0)))
	if board.CheckWin() {
		t.Fatalf("one tile off by a pixel must not win")
	}
	if board.PlacedCount() != 8 {
		t.Fatalf("expected 8 placed, got %d", board.PlacedCount())
	}
}

func TestCheckWinAllDifficultiesOffByOne(t *testing.T) {
	for _, n := range SupportedDifficulties {
		grid := newTestGrid(t, 600, 600, n)
		board := NewBoard(grid, newTestRand())

		for off := range board.Tiles {
			placeAll(board)
			board.MoveTile(off, board.Tiles[off].Correct.Add(FPt(0, 1)))
			if board.CheckWin() {
				t.Fatalf("n=%d: tile %d off by one still wins", n, off)
			}
		}
	}
}
