package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnsupportedDifficulty = errors.New("unsupported difficulty")
	ErrInvalidCanvas         = errors.New("invalid canvas size")
)

// SupportedDifficulties lists the grid dimensions a session can be started with.
// Difficulty N means an N x N grid.
var SupportedDifficulties = []int{3, 4, 5, 6}

const DefaultDifficulty = 4

func IsSupportedDifficulty(n int) bool {
	return slices.Contains(SupportedDifficulties, n)
}

func ValidateDifficulty(n int) error {
	if !IsSupportedDifficulty(n) {
		return fmt.Errorf("%w: %d (want one of %v)", ErrUnsupportedDifficulty, n, SupportedDifficulties)
	}
	return nil
}

// ClampDifficulty returns the supported difficulty closest to n.
// Ties go to the smaller grid.
func ClampDifficulty(n int) int {
	best := SupportedDifficulties[0]
	for _, d := range SupportedDifficulties {
		if Abs(d-n) < Abs(best-n) {
			best = d
		}
	}
	return best
}

// Grid is an immutable partition of a canvas into Rows x Cols equal cells.
type Grid struct {
	Rows int
	Cols int

	CanvasWidth  float64
	CanvasHeight float64

	TileWidth  float64
	TileHeight float64
}

func NewGrid(canvasWidth, canvasHeight float64, n int) (Grid, error) {
	if err := ValidateDifficulty(n); err != nil {
		return Grid{}, err
	}
	if !(canvasWidth > 0 && canvasHeight > 0) {
		return Grid{}, fmt.Errorf("%w: %vx%v", ErrInvalidCanvas, canvasWidth, canvasHeight)
	}

	return Grid{
		Rows: n,
		Cols: n,

		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,

		TileWidth:  canvasWidth / float64(n),
		TileHeight: canvasHeight / float64(n),
	}, nil
}

func (g Grid) TileSize() FPoint {
	return FPt(g.TileWidth, g.TileHeight)
}

func (g Grid) CellCount() int {
	return g.Rows * g.Cols
}

func (g Grid) CanvasRect() FRectangle {
	return FRectWH(g.CanvasWidth, g.CanvasHeight)
}

// CorrectPosition returns the top left corner of the cell at (row, col).
func (g Grid) CorrectPosition(row, col int) FPoint {
	return FPt(float64(col)*g.TileWidth, float64(row)*g.TileHeight)
}

// CellRect returns the rectangle covered by the cell at (row, col).
func (g Grid) CellRect(row, col int) FRectangle {
	return FRectMoveTo(FRectWH(g.TileWidth, g.TileHeight), g.CorrectPosition(row, col))
}

// ScatterBounds is the largest rectangle a tile origin can occupy
// while the whole tile stays on the canvas.
func (g Grid) ScatterBounds() FRectangle {
	return FRectWH(g.CanvasWidth-g.TileWidth, g.CanvasHeight-g.TileHeight)
}

// NearestCellOrigin returns the cell origin closest to p on each axis.
// The result is not clamped to the canvas.
func (g Grid) NearestCellOrigin(p FPoint) FPoint {
	return FPt(
		RoundToStep(p.X, g.TileWidth),
		RoundToStep(p.Y, g.TileHeight),
	)
}

//==============================================
// grid iterator
//==============================================

// GridIterator walks cells in row-major order.
type GridIterator struct {
	MinCol int
	MinRow int
	MaxCol int
	MaxRow int

	CurrentCol int
	CurrentRow int
}

// inclusive
func NewGridIterator(col1, row1, col2, row2 int) GridIterator {
	iterator := GridIterator{
		MinCol: min(col1, col2),
		MinRow: min(row1, row2),

		MaxCol: max(col1, col2),
		MaxRow: max(row1, row2),
	}

	iterator.CurrentCol = iterator.MinCol
	iterator.CurrentRow = iterator.MinRow

	return iterator
}

func (g Grid) Iterator() GridIterator {
	return NewGridIterator(0, 0, g.Cols-1, g.Rows-1)
}

func (gi *GridIterator) HasNext() bool {
	return gi.CurrentRow <= gi.MaxRow
}

// GetNext returns the next (row, col) pair.
func (gi *GridIterator) GetNext() (int, int) {
	row := gi.CurrentRow
	col := gi.CurrentCol

	gi.CurrentCol++
	if gi.CurrentCol > gi.MaxCol {
		gi.CurrentCol = gi.MinCol
		gi.CurrentRow++
	}

	return row, col
}

func (gi *GridIterator) Reset() {
	gi.CurrentCol = gi.MinCol
	gi.CurrentRow = gi.MinRow
}
