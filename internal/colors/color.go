// Package colors parses, blends and formats RGBA colors expressed in the
// textual encodings used by theme files: hex, rgb(a) and hsl(a).
package colors

import (
	"image/color"
	"math"
)

// Color holds four normalized channels in [0, 1]. Values are immutable in
// practice: every operation returns a new Color.
type Color struct {
	R, G, B, A float64
}

// Black is opaque black, the zero value of a parsed empty color.
var Black = Color{A: 1}

// RGBA implements image/color.Color using premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a16 := math.Round(clamp(c.A, 0, 1) * 0xffff)
	r = uint32(math.Round(clamp(c.R, 0, 1) * a16))
	g = uint32(math.Round(clamp(c.G, 0, 1) * a16))
	b = uint32(math.Round(clamp(c.B, 0, 1) * a16))
	return r, g, b, uint32(a16)
}

// NRGBA converts the color to 8-bit non-premultiplied channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// FromStd converts any image/color.Color into a Color.
func FromStd(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// Lerp interpolates every channel of a and b linearly. t is not clamped so
// callers may extrapolate.
func Lerp(t float64, a, b Color) Color {
	return Color{
		R: lerp(t, a.R, b.R),
		G: lerp(t, a.G, b.G),
		B: lerp(t, a.B, b.B),
		A: lerp(t, a.A, b.A),
	}
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}
