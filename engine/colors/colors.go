package colors

import "image/color"

// Color is linear RGBA in [0,1], laid out the way GL clear/uniform calls take it.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Charcoal = Color{0.2, 0.2, 0.2, 1} // default clear color
	SkyBlue  = Color{0.7, 0.8, 0.9, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// NRGBA converts to an 8-bit color for CPU-side image generation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
