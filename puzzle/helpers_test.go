package puzzle

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func newTestGrid(t *testing.T, w, h float64, n int) Grid {
	t.Helper()
	grid, err := NewGrid(w, h, n)
	if err != nil {
		t.Fatalf("NewGrid(%v, %v, %d): %v", w, h, n, err)
	}
	return grid
}

// placeAll puts every tile on its home cell except the ones in skip.
func placeAll(board *Board, skip ...int) {
	for i := range board.Tiles {
		board.Tiles[i].Current = board.Tiles[i].Correct
	}
	for _, i := range skip {
		board.Tiles[i].Current = board.Tiles[i].Correct.Add(FPt(1000, 1000))
	}
}

type strokeOp struct {
	Rect  FRectangle
	Width float64
	Color color.Color
}

type imageOp struct {
	Src, Dst FRectangle
}

type surfaceOp struct {
	Clear  bool
	Stroke *strokeOp
	Image  *imageOp
}

type recordingSurface struct {
	size FPoint
	ops  []surfaceOp
}

func (s *recordingSurface) Size() FPoint {
	return s.size
}

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, surfaceOp{Clear: true})
}

func (s *recordingSurface) StrokeRect(rect FRectangle, strokeWidth float64, clr color.Color) {
	s.ops = append(s.ops, surfaceOp{Stroke: &strokeOp{rect, strokeWidth, clr}})
}

func (s *recordingSurface) DrawImageRegion(src image.Image, srcRect, dstRect FRectangle) {
	s.ops = append(s.ops, surfaceOp{Image: &imageOp{srcRect, dstRect}})
}

type countingListener struct {
	ticks   []int
	solved  int
	expired int
	drops   []DropResult
}

func (l *countingListener) TimeChanged(remaining int) {
	l.ticks = append(l.ticks, remaining)
}

func (l *countingListener) Solved() {
	l.solved++
}

func (l *countingListener) TimeExpired() {
	l.expired++
}

func (l *countingListener) Dropped(result DropResult) {
	l.drops = append(l.drops, result)
}

var testPicture = image.NewNRGBA(image.Rect(0, 0, 300, 300))
