package main

import (
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"

	"jigsaw/puzzle"
)

func FillRect(
	dst *eb.Image,
	rect FRectangle,
	clr color.Color,
) {
	ebv.DrawFilledRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		clr,
		IsAntiAliasOn(),
	)
}

func StrokeRect(
	dst *eb.Image,
	rect FRectangle,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		f32(strokeWidth),
		clr,
		IsAntiAliasOn(),
	)
}

// CanvasSurface draws the board onto an ebiten image.
type CanvasSurface struct {
	Image *eb.Image

	BgColor color.Color

	// ebiten copies of sources that were not ebiten images
	converted map[image.Image]*eb.Image
}

var _ puzzle.Surface = (*CanvasSurface)(nil)

func NewCanvasSurface(width, height int) *CanvasSurface {
	return &CanvasSurface{
		Image:   eb.NewImage(width, height),
		BgColor: color.NRGBA{255, 255, 255, 255},
	}
}

func (cs *CanvasSurface) Size() FPoint {
	return ImageSizeFPt(cs.Image)
}

func (cs *CanvasSurface) Clear() {
	cs.Image.Fill(cs.BgColor)
}

func (cs *CanvasSurface) StrokeRect(rect FRectangle, strokeWidth float64, clr color.Color) {
	StrokeRect(cs.Image, rect, strokeWidth, clr)
}

func (cs *CanvasSurface) DrawImageRegion(src image.Image, srcRect, dstRect FRectangle) {
	if src == nil || srcRect.Empty() || dstRect.Empty() {
		return
	}

	ebSrc := cs.toEbitenImage(src)
	sub := ebSrc.SubImage(FRectToRect(srcRect)).(*eb.Image)

	subSize := ImageSizeFPt(sub)
	if subSize.X <= 0 || subSize.Y <= 0 {
		return
	}

	op := &DrawImageOptions{}
	op.GeoM.Scale(dstRect.Dx()/subSize.X, dstRect.Dy()/subSize.Y)
	op.GeoM.Translate(dstRect.Min.X, dstRect.Min.Y)

	DrawImage(cs.Image, sub, op)
}

func (cs *CanvasSurface) toEbitenImage(src image.Image) *eb.Image {
	if img, ok := src.(*eb.Image); ok {
		return img
	}

	if cs.converted == nil {
		cs.converted = make(map[image.Image]*eb.Image)
	}
	if img, ok := cs.converted[src]; ok {
		return img
	}

	img := eb.NewImageFromImage(src)
	cs.converted[src] = img
	return img
}

// Resize replaces the backing image if the size changed.
func (cs *CanvasSurface) Resize(width, height int) {
	b := cs.Image.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	cs.Image.Deallocate()
	cs.Image = eb.NewImage(width, height)
}
