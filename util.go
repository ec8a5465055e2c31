package main

import (
	"image"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func TouchFPt(touchId eb.TouchID) FPoint {
	x, y := eb.TouchPosition(touchId)
	return FPt(f64(x), f64(y))
}

func PrevTouchFPt(touchId eb.TouchID) FPoint {
	x, y := ebi.TouchPositionInPreviousTick(touchId)
	return FPt(f64(x), f64(y))
}

func ImageSizeFPt(img image.Image) FPoint {
	bound := img.Bounds()
	return FPoint{f64(bound.Dx()), f64(bound.Dy())}
}
