package puzzle

import (
	"errors"
	"testing"
)

func TestNewGridTileSize(t *testing.T) {
	grid, err := NewGrid(300, 300, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if grid.TileWidth != 100 || grid.TileHeight != 100 {
		t.Fatalf("expected 100x100 tiles, got %vx%v", grid.TileWidth, grid.TileHeight)
	}

	if got := grid.CorrectPosition(1, 1); !got.Eq(FPt(100, 100)) {
		t.Fatalf("expected (1,1) at (100,100), got %+v", got)
	}
	if got := grid.CorrectPosition(2, 0); !got.Eq(FPt(0, 200)) {
		t.Fatalf("expected (2,0) at (0,200), got %+v", got)
	}
}

func TestNewGridNonIntegralTiles(t *testing.T) {
	grid, err := NewGrid(500, 350, 6)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if grid.TileWidth != 500.0/6 || grid.TileHeight != 350.0/6 {
		t.Fatalf("unexpected tile size %vx%v", grid.TileWidth, grid.TileHeight)
	}
}

func TestNewGridRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		n      int
		target error
	}{
		{"zero difficulty", 300, 300, 0, ErrUnsupportedDifficulty},
		{"negative difficulty", 300, 300, -3, ErrUnsupportedDifficulty},
		{"unlisted difficulty", 300, 300, 7, ErrUnsupportedDifficulty},
		{"zero width", 0, 300, 3, ErrInvalidCanvas},
		{"negative height", 300, -1, 3, ErrInvalidCanvas},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.w, tc.h, tc.n)
			if !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
		})
	}
}

func TestClampDifficulty(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 3}, {0, 3}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 6}, {100, 6},
	}

	for _, tc := range tests {
		if got := ClampDifficulty(tc.in); got != tc.want {
			t.Errorf("ClampDifficulty(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

// Every supported difficulty must cover the canvas exactly once.
// The canvas divides evenly by 3..6 so cell edges compare exactly.
func TestGridPartitionCoversCanvas(t *testing.T) {
	const w, h = 600.0, 420.0

	for _, n := range SupportedDifficulties {
		grid, err := NewGrid(w, h, n)
		if err != nil {
			t.Fatalf("NewGrid(%d): %v", n, err)
		}

		seen := make(map[FPoint]bool)
		var rects []FRectangle

		iter := grid.Iterator()
		for iter.HasNext() {
			row, col := iter.GetNext()
			pos := grid.CorrectPosition(row, col)
			if seen[pos] {
				t.Fatalf("n=%d: duplicate correct position %+v", n, pos)
			}
			seen[pos] = true
			rects = append(rects, grid.CellRect(row, col))
		}

		if len(seen) != n*n {
			t.Fatalf("n=%d: expected %d cells, got %d", n, n*n, len(seen))
		}

		area := 0.0
		for i, r := range rects {
			if r.Min.X < 0 || r.Min.Y < 0 || r.Max.X > w || r.Max.Y > h {
				t.Fatalf("n=%d: cell %d out of canvas: %+v", n, i, r)
			}
			area += r.Dx() * r.Dy()
			for j := i + 1; j < len(rects); j++ {
				if r.Overlaps(rects[j]) {
					t.Fatalf("n=%d: cells %d and %d overlap", n, i, j)
				}
			}
		}

		if Abs(area-w*h) > 1e-6 {
			t.Fatalf("n=%d: cells cover %v, canvas is %v", n, area, w*h)
		}
	}
}

func TestGridIteratorRowMajor(t *testing.T) {
	grid, _ := NewGrid(300, 300, 3)

	var got [][2]int
	iter := grid.Iterator()
	for iter.HasNext() {
		row, col := iter.GetNext()
		got = append(got, [2]int{row, col})
	}

	want := [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
