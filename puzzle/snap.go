package puzzle

// DefaultSnapTolerance is the distance in pixels, per axis, under which a
// dropped tile is pulled onto the nearest cell origin.
const DefaultSnapTolerance = 10

// SnapPosition returns the position a tile dropped at pos should end up at.
//
// The nearest cell origin is used only when both axes are strictly closer
// than tolerance. Otherwise pos is returned unchanged.
func SnapPosition(grid Grid, pos FPoint, tolerance float64) (FPoint, bool) {
	target := grid.NearestCellOrigin(pos)

	if Abs(pos.X-target.X) < tolerance && Abs(pos.Y-target.Y) < tolerance {
		return target, true
	}

	return pos, false
}

type DropResult struct {
	Tile    int
	Snapped bool
	Solved  bool
}

// DropTile snaps tile index and evaluates the board.
//
// The snapped value is stored as is, so a tile snapped onto its home cell
// compares equal to Correct without any tolerance.
func DropTile(board *Board, index int, tolerance float64) DropResult {
	snapped, didSnap := SnapPosition(board.Grid, board.Tiles[index].Current, tolerance)
	if didSnap {
		board.MoveTile(index, snapped)
	}

	return DropResult{
		Tile:    index,
		Snapped: didSnap,
		Solved:  board.CheckWin(),
	}
}
