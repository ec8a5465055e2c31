// Package picture loads the images puzzles are cut from.
//
// Images are decoded off the main goroutine, fitted to the available width
// and scaled so that one image pixel is one canvas pixel.
package picture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	ErrEmptyImage = errors.New("image has no pixels")
)

// WidthRatio is the share of the available width a canvas may take.
const WidthRatio = 0.9

// Decode decodes png, jpeg, gif, bmp and webp data.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}

// CanvasSize returns the canvas size for an imageW x imageH image shown
// in availableWidth pixels.
//
// The canvas is never wider than the image or than WidthRatio of the
// available width, and keeps the image's aspect ratio.
func CanvasSize(imageW, imageH int, availableWidth float64) (int, int) {
	if imageW <= 0 || imageH <= 0 {
		return 0, 0
	}

	w := min(availableWidth*WidthRatio, float64(imageW))
	w = max(math.Floor(w), 1)

	h := math.Round(w * float64(imageH) / float64(imageW))
	h = max(h, 1)

	return int(w), int(h)
}

// Scale resamples src to w x h using Catmull-Rom.
func Scale(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Fit scales src to its canvas size for availableWidth.
func Fit(src image.Image, availableWidth float64) (*image.NRGBA, error) {
	b := src.Bounds()
	w, h := CanvasSize(b.Dx(), b.Dy(), availableWidth)
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}
	return Scale(src, w, h), nil
}

// Placeholder is what the canvas shows while no image is ready.
func Placeholder(w, h int, clr color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(clr), image.Point{}, xdraw.Src)
	return img
}
