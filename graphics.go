package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var TheGraphicsContext struct {
	FilterStack []eb.Filter
	AntiAlias   bool
}

func init() {
	ctx := &TheGraphicsContext

	ctx.FilterStack = append(ctx.FilterStack, eb.FilterLinear)
	ctx.AntiAlias = true
}

func BeginFilter(filter eb.Filter) {
	ctx := &TheGraphicsContext

	ctx.FilterStack = append(ctx.FilterStack, filter)
}

func EndFilter() {
	ctx := &TheGraphicsContext

	ctx.FilterStack = ctx.FilterStack[0 : len(ctx.FilterStack)-1]
}

func CurrentFilter() eb.Filter {
	ctx := &TheGraphicsContext

	return ctx.FilterStack[len(ctx.FilterStack)-1]
}

func IsAntiAliasOn() bool {
	return TheGraphicsContext.AntiAlias
}

func SetAntiAlias(onOff bool) {
	TheGraphicsContext.AntiAlias = onOff
}

type DrawImageOptions struct {
	GeoM eb.GeoM

	ColorScale eb.ColorScale
}

type DrawTextOptions struct {
	DrawImageOptions
	ebt.LayoutOptions
}

func DrawImage(dst *eb.Image, src *eb.Image, options *DrawImageOptions) {
	if options == nil {
		options = &DrawImageOptions{}
	}
	op := &eb.DrawImageOptions{}
	op.GeoM = options.GeoM
	op.ColorScale = options.ColorScale
	op.Filter = CurrentFilter()
	dst.DrawImage(src, op)
}

func DrawText(
	dst *eb.Image,
	text string,
	face ebt.Face,
	options *DrawTextOptions,
) {
	if options == nil {
		options = &DrawTextOptions{}
	}
	op := &ebt.DrawOptions{}
	op.GeoM = options.GeoM
	op.ColorScale = options.ColorScale
	op.Filter = CurrentFilter()
	op.LayoutOptions = options.LayoutOptions
	ebt.Draw(dst, text, face, op)
}

// DrawTextInRect draws text scaled to fit rect and centered in it.
func DrawTextInRect(
	dst *eb.Image,
	text string,
	face *ebt.GoTextFace,
	rect FRectangle,
	options *DrawTextOptions,
) {
	if len(text) <= 0 || rect.Empty() {
		return
	}
	if options == nil {
		options = &DrawTextOptions{}
	}

	lineSpacing := FontLineSpacing(face)
	textW, textH := ebt.Measure(text, face, lineSpacing)
	if textW <= 0 || textH <= 0 {
		return
	}

	scale := min(rect.Dx()/textW, rect.Dy()/textH)

	op := *options
	op.LayoutOptions.LineSpacing = lineSpacing
	op.GeoM = TransformToCenter(textW, textH, scale, scale, 0)
	center := rect.Center()
	op.GeoM.Translate(center.X, center.Y)

	DrawText(dst, text, face, &op)
}

func FontSize(face *ebt.GoTextFace) float64 {
	return face.Size
}

func FontLineSpacing(face *ebt.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

func drawTextAligned(
	dst *eb.Image,
	text string,
	face *ebt.GoTextFace,
	rect FRectangle,
	options *DrawTextOptions,
	alignRight bool,
) {
	if len(text) <= 0 || rect.Empty() {
		return
	}
	if options == nil {
		options = &DrawTextOptions{}
	}

	lineSpacing := FontLineSpacing(face)
	textW, textH := ebt.Measure(text, face, lineSpacing)
	if textW <= 0 || textH <= 0 {
		return
	}

	scale := min(rect.Dx()/textW, rect.Dy()/textH)

	x := rect.Min.X
	if alignRight {
		x = rect.Max.X - textW*scale
	}
	y := rect.Min.Y + rect.Dy()*0.5 - textH*scale*0.5

	op := *options
	op.LayoutOptions.LineSpacing = lineSpacing
	op.GeoM = eb.GeoM{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)

	DrawText(dst, text, face, &op)
}

func drawTextLeft(dst *eb.Image, text string, face *ebt.GoTextFace, rect FRectangle, options *DrawTextOptions) {
	drawTextAligned(dst, text, face, rect, options, false)
}

func drawTextRight(dst *eb.Image, text string, face *ebt.GoTextFace, rect FRectangle, options *DrawTextOptions) {
	drawTextAligned(dst, text, face, rect, options, true)
}
