package puzzle

import (
	"math/rand/v2"
)

//==============================================
// BOARD STUFFS
//==============================================

// Tile is one rectangular piece of the picture.
//
// Correct is the origin of the tile's home cell and never changes.
// Current is where the tile is drawn and dragged.
type Tile struct {
	Row int
	Col int

	Correct FPoint
	Current FPoint
}

func (t Tile) IsPlaced() bool {
	return t.Current.Eq(t.Correct)
}

// Board holds the tiles of one session.
//
// Tiles are kept in row-major creation order for the whole session.
// That order is also the draw order, so later tiles are on top.
type Board struct {
	Grid  Grid
	Tiles []Tile
}

// NewBoard creates one tile per grid cell and scatters them with rng.
func NewBoard(grid Grid, rng *rand.Rand) *Board {
	board := &Board{
		Grid:  grid,
		Tiles: make([]Tile, 0, grid.CellCount()),
	}

	bounds := grid.ScatterBounds()

	iter := grid.Iterator()
	for iter.HasNext() {
		row, col := iter.GetNext()

		board.Tiles = append(board.Tiles, Tile{
			Row:     row,
			Col:     col,
			Correct: grid.CorrectPosition(row, col),
			Current: FPt(
				bounds.Min.X+rng.Float64()*bounds.Dx(),
				bounds.Min.Y+rng.Float64()*bounds.Dy(),
			),
		})
	}

	return board
}

func (b *Board) TileCount() int {
	return len(b.Tiles)
}

func (b *Board) IsValidTile(index int) bool {
	return 0 <= index && index < len(b.Tiles)
}

// TileRect returns the area tile index currently covers.
func (b *Board) TileRect(index int) FRectangle {
	return FRectMoveTo(FRectWH(b.Grid.TileWidth, b.Grid.TileHeight), b.Tiles[index].Current)
}

// SourceRect returns the region of the picture tile index shows.
func (b *Board) SourceRect(index int) FRectangle {
	return FRectMoveTo(FRectWH(b.Grid.TileWidth, b.Grid.TileHeight), b.Tiles[index].Correct)
}

// TileAt returns the topmost tile containing pt.
// Tiles are scanned in draw order and the last match wins.
func (b *Board) TileAt(pt FPoint) (int, bool) {
	found := -1

	for i := range b.Tiles {
		if pt.In(b.TileRect(i)) {
			found = i
		}
	}

	return found, found >= 0
}

func (b *Board) MoveTile(index int, pos FPoint) {
	b.Tiles[index].Current = pos
}

func (b *Board) PlacedCount() int {
	count := 0
	for _, t := range b.Tiles {
		if t.IsPlaced() {
			count++
		}
	}
	return count
}

// CheckWin reports whether every tile sits exactly on its home cell.
func (b *Board) CheckWin() bool {
	for _, t := range b.Tiles {
		if !t.IsPlaced() {
			return false
		}
	}

	return true
}
