// Package colorutil provides the RGB color type assigned to fitted lines
// and helpers for converting to the rendering color representation.
package colorutil

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Common overlay colors used by the canvas.
var (
	MarkerRed = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// RGB is an 8-bit-per-channel color. Assigned once when a line is created
// and never recomputed.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NewRGB creates an RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// RGBA converts to the standard library color representation, fully opaque.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// FromRGBA converts from the standard library color representation,
// discarding alpha.
func FromRGBA(c color.RGBA) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Random returns a random saturated color via HSV generation. Hue is drawn
// uniformly; saturation and value stay high so lines remain visible against
// a screenshot background.
func Random(r *rand.Rand) RGB {
	h := r.Float64() * 360.0
	s := 0.6 + r.Float64()*0.4
	v := 0.7 + r.Float64()*0.3

	red, green, blue := colorful.Hsv(h, s, v).RGB255()
	return RGB{R: red, G: green, B: blue}
}
