package colors

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// String renders the color in rgb()/rgba() form.
func (c Color) String() string { return c.ToRGB() }

// ToHex renders #rrggbb, or #rrggbbaa when the color is translucent.
func (c Color) ToHex() string {
	if c.A < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A))
	}
	return fmt.Sprintf("#%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B))
}

// ToRGB renders channels as bytes with two decimals and alpha with three.
func (c Color) ToRGB() string {
	r, g, b := c.R*255, c.G*255, c.B*255
	if c.A < 1 {
		return fmt.Sprintf("rgba(%.2f, %.2f, %.2f, %.3f)", r, g, b, c.A)
	}
	return fmt.Sprintf("rgb(%.2f, %.2f, %.2f)", r, g, b)
}

// ToHSL renders hue in degrees and saturation/lightness as percentages.
func (c Color) ToHSL() string {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	if c.A < 1 {
		return fmt.Sprintf("hsla(%.2f, %.2f%%, %.2f%%, %.3f)", h, s*100, l*100, c.A)
	}
	return fmt.Sprintf("hsl(%.2f, %.2f%%, %.2f%%)", h, s*100, l*100)
}
