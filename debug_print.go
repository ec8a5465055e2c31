package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type DebugMsg struct {
	Key   string
	Value string
	// survives ClearDebugMsgs
	Persist bool
}

var TheDebugPrintManager struct {
	Msgs []DebugMsg

	RenderTarget *eb.Image

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	putDebugMsg(key, fmt.Sprintf(fmtStr, values...), false)
}

func DebugPrint(key string, values ...any) {
	putDebugMsg(key, fmt.Sprint(values...), false)
}

func DebugPutsPersist(key, value string) {
	putDebugMsg(key, value, true)
}

func putDebugMsg(key, value string, persist bool) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.Msgs {
		if msg.Key == key {
			dm.Msgs[i].Value = value
			dm.Msgs[i].Persist = persist
			return
		}
	}

	dm.Msgs = append(dm.Msgs, DebugMsg{
		Key:     key,
		Value:   value,
		Persist: persist,
	})
}

// DebugText is the overlay text, persistent messages first.
func DebugText() string {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	write := func(msg DebugMsg) {
		if dm.builder.Len() > 0 {
			dm.builder.WriteString("\n")
		}
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)
	}

	for _, msg := range dm.Msgs {
		if msg.Persist {
			write(msg)
		}
	}
	for _, msg := range dm.Msgs {
		if !msg.Persist {
			write(msg)
		}
	}

	return dm.builder.String()
}

// DrawDebugMsgs draws the overlay in the bottom right corner of dst.
func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	const fontSize = 16
	const margin = 5

	text := DebugText()
	if text == "" {
		return
	}

	scale := fontSize / FontSize(MonoFace)
	lineSpacing := FontLineSpacing(MonoFace) + 3

	w, h := ebt.Measure(text, MonoFace, lineSpacing)

	boxW, boxH := w*scale+margin*2, h*scale+margin*2

	if dm.RenderTarget == nil ||
		dm.RenderTarget.Bounds().Dx() < int(boxW+1) ||
		dm.RenderTarget.Bounds().Dy() < int(boxH+1) {
		if dm.RenderTarget != nil {
			dm.RenderTarget.Deallocate()
		}
		dm.RenderTarget = eb.NewImageWithOptions(
			RectWH(int(boxW+1), int(boxH+1)),
			&eb.NewImageOptions{Unmanaged: true},
		)
	}

	dm.RenderTarget.Clear()

	rect := FRectWH(boxW, boxH)
	FillRect(dm.RenderTarget, rect, color.NRGBA{255, 255, 255, 255})
	FillRect(dm.RenderTarget, rect.Inset(2), color.NRGBA{0, 0, 0, 220})

	{
		op := &DrawTextOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(margin, margin)
		op.ColorScale.ScaleWithColor(color.NRGBA{255, 255, 255, 255})
		op.LayoutOptions.LineSpacing = lineSpacing

		DrawText(dm.RenderTarget, text, MonoFace, op)
	}

	{
		dstRect := RectToFRect(dst.Bounds())
		op := &DrawImageOptions{}
		op.GeoM.Translate(dstRect.Max.X-boxW, dstRect.Max.Y-boxH)
		DrawImage(dst, dm.RenderTarget, op)
	}
}

// ClearDebugMsgs drops every message that isn't persistent.
func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	kept := dm.Msgs[:0]
	for _, msg := range dm.Msgs {
		if msg.Persist {
			kept = append(kept, msg)
		}
	}
	dm.Msgs = kept
}
