package picture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"
)

const (
	GeneratedWidth  = 800
	GeneratedHeight = 600
)

type generator func(img *image.NRGBA)

var generators = map[string]generator{
	"sunset":  drawSunset,
	"checker": drawChecker,
	"rings":   drawRings,
	"waves":   drawWaves,
}

// GeneratedNames lists the built-in pictures in a stable order.
func GeneratedNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Generate draws the built-in picture called name.
func Generate(name string, w, h int) (*image.NRGBA, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("no generated picture called %q", name)
	}
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	gen(img)
	return img, nil
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpColor(c1, c2 color.NRGBA, t float64) color.NRGBA {
	t = min(max(t, 0), 1)
	return color.NRGBA{
		R: lerpChannel(c1.R, c2.R, t),
		G: lerpChannel(c1.G, c2.G, t),
		B: lerpChannel(c1.B, c2.B, t),
		A: 255,
	}
}

func drawSunset(img *image.NRGBA) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	top := color.NRGBA{0x1B, 0x26, 0x5C, 255}
	mid := color.NRGBA{0xE8, 0x6A, 0x3C, 255}
	ground := color.NRGBA{0x23, 0x3D, 0x2B, 255}
	sun := color.NRGBA{0xFF, 0xD8, 0x6B, 255}

	horizon := h * 0.65
	sunX, sunY, sunR := w*0.62, horizon, min(w, h)*0.16

	for y := b.Min.Y; y < b.Max.Y; y++ {
		fy := float64(y - b.Min.Y)
		for x := b.Min.X; x < b.Max.X; x++ {
			fx := float64(x - b.Min.X)

			var c color.NRGBA
			if fy < horizon {
				c = lerpColor(top, mid, fy/horizon)
				if math.Hypot(fx-sunX, fy-sunY) < sunR {
					c = sun
				}
			} else {
				// rolling hills
				hill := horizon + math.Sin(fx/w*math.Pi*3)*h*0.04
				if fy < hill {
					c = mid
				} else {
					c = lerpColor(ground, color.NRGBA{0, 0, 0, 255}, (fy-horizon)/(h-horizon)*0.6)
				}
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

func drawChecker(img *image.NRGBA) {
	b := img.Bounds()

	colors := []color.NRGBA{
		{0xE6, 0x39, 0x46, 255},
		{0xF1, 0xFA, 0xEE, 255},
		{0xA8, 0xDA, 0xDC, 255},
		{0x45, 0x7B, 0x9D, 255},
		{0x1D, 0x35, 0x57, 255},
	}

	const cells = 10
	cellW := max(b.Dx()/cells, 1)
	cellH := max(b.Dy()/cells, 1)

	for y := b.Min.Y; y < b.Max.Y; y += cellH {
		for x := b.Min.X; x < b.Max.X; x += cellW {
			i := (x/cellW + y/cellH*3) % len(colors)
			rect := image.Rect(x, y, x+cellW, y+cellH).Intersect(b)
			draw.Draw(img, rect, image.NewUniform(colors[i]), image.Point{}, draw.Src)
		}
	}
}

func drawRings(img *image.NRGBA) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	cx, cy := w*0.5, h*0.5
	maxR := math.Hypot(cx, cy)

	inner := color.NRGBA{0xFF, 0xBE, 0x0B, 255}
	outer := color.NRGBA{0x83, 0x38, 0xEC, 255}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r := math.Hypot(float64(x-b.Min.X)-cx, float64(y-b.Min.Y)-cy)
			c := lerpColor(inner, outer, r/maxR)
			if int(r/(maxR/12))%2 == 1 {
				c = lerpColor(c, color.NRGBA{255, 255, 255, 255}, 0.35)
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

func drawWaves(img *image.NRGBA) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	deep := color.NRGBA{0x03, 0x30, 0x5C, 255}
	light := color.NRGBA{0x4C, 0xC9, 0xF0, 255}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		fy := float64(y-b.Min.Y) / h
		for x := b.Min.X; x < b.Max.X; x++ {
			fx := float64(x-b.Min.X) / w
			v := math.Sin(fx*math.Pi*6+fy*math.Pi*2) * math.Cos(fy*math.Pi*5-fx*math.Pi)
			img.SetNRGBA(x, y, lerpColor(deep, light, (v+1)*0.5))
		}
	}
}
