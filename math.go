package main

import (
	"image"

	"golang.org/x/exp/constraints"

	"jigsaw/puzzle"
)

type (
	FPoint     = puzzle.FPoint
	FRectangle = puzzle.FRectangle
)

var (
	FPt       = puzzle.FPt
	FRect     = puzzle.FRect
	FRectWH   = puzzle.FRectWH
	FRectXYWH = puzzle.FRectXYWH

	CenterFRectangle = puzzle.CenterFRectangle
)

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

func PointToFPoint(p image.Point) FPoint {
	return FPoint{X: float64(p.X), Y: float64(p.Y)}
}

func FPointToPoint(p FPoint) image.Point {
	return image.Point{X: int(p.X), Y: int(p.Y)}
}

func RectToFRect(rect image.Rectangle) FRectangle {
	return FRectangle{
		Min: PointToFPoint(rect.Min),
		Max: PointToFPoint(rect.Max),
	}
}

func FRectToRect(rect FRectangle) image.Rectangle {
	return image.Rectangle{
		Min: FPointToPoint(rect.Min),
		Max: FPointToPoint(rect.Max),
	}
}

func RectWH(w, h int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{},
		Max: image.Point{w, h},
	}
}
