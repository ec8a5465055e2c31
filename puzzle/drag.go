package puzzle

const NoTile = -1

// DragController tracks which tile is held by the pointer.
//
// It only moves tiles. Snapping and the win check happen in DropTile,
// which Release calls for the tile that was held.
type DragController struct {
	Tolerance float64

	dragged     int
	highlighted int
	grabOffset  FPoint
}

func NewDragController(tolerance float64) *DragController {
	return &DragController{
		Tolerance:   tolerance,
		dragged:     NoTile,
		highlighted: NoTile,
	}
}

func (dc *DragController) IsDragging() bool {
	return dc.dragged != NoTile
}

// Dragged returns the index of the held tile or NoTile.
func (dc *DragController) Dragged() int {
	return dc.dragged
}

// Highlighted returns the index of the tile drawn with the highlight outline or NoTile.
func (dc *DragController) Highlighted() int {
	return dc.highlighted
}

func (dc *DragController) GrabOffset() FPoint {
	return dc.grabOffset
}

// Press picks up the topmost tile under pt.
// A press while already dragging replaces the held tile.
// Returns false if pt is not over any tile.
func (dc *DragController) Press(board *Board, pt FPoint) bool {
	index, ok := board.TileAt(pt)
	if !ok {
		return false
	}

	dc.dragged = index
	dc.highlighted = index
	dc.grabOffset = pt.Sub(board.Tiles[index].Current)

	return true
}

// Move keeps the grab offset between pt and the held tile.
// Returns false if nothing is held.
func (dc *DragController) Move(board *Board, pt FPoint) bool {
	if !dc.IsDragging() {
		return false
	}

	board.MoveTile(dc.dragged, pt.Sub(dc.grabOffset))

	return true
}

// Release drops the held tile.
// Returns false if nothing is held.
func (dc *DragController) Release(board *Board) (DropResult, bool) {
	if !dc.IsDragging() {
		return DropResult{Tile: NoTile}, false
	}

	result := DropTile(board, dc.dragged, dc.Tolerance)

	dc.Cancel()

	return result, true
}

// Cancel forgets the held tile without dropping it.
func (dc *DragController) Cancel() {
	dc.dragged = NoTile
	dc.highlighted = NoTile
	dc.grabOffset = FPoint{}
}
