package puzzle

import (
	"image"
	"image/color"
)

// Surface is a raster the board is drawn onto.
type Surface interface {
	// Size returns the drawable size in pixels.
	Size() FPoint

	Clear()

	StrokeRect(rect FRectangle, strokeWidth float64, clr color.Color)

	// DrawImageRegion copies srcRect of src to dstRect.
	DrawImageRegion(src image.Image, srcRect, dstRect FRectangle)
}

type RenderStyle struct {
	StrokeColor    color.Color
	HighlightColor color.Color
	StrokeWidth    float64
}

var DefaultRenderStyle = RenderStyle{
	StrokeColor:    color.NRGBA{0, 0, 0, 255},
	HighlightColor: color.NRGBA{255, 0, 0, 255},
	StrokeWidth:    2,
}

// Render clears dst and draws every tile of board at its current position.
// Tiles are drawn in board order, so later tiles cover earlier ones.
// The tile at highlighted gets the highlight outline; pass NoTile for none.
func Render(dst Surface, picture image.Image, board *Board, highlighted int, style RenderStyle) {
	dst.Clear()

	for i := range board.Tiles {
		strokeColor := style.StrokeColor
		if i == highlighted {
			strokeColor = style.HighlightColor
		}

		dstRect := board.TileRect(i)

		dst.StrokeRect(dstRect, style.StrokeWidth, strokeColor)
		dst.DrawImageRegion(picture, board.SourceRect(i), dstRect)
	}
}
