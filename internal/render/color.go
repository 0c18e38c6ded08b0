// internal/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with a new alpha. Colors are not premultiplied here;
// ebiten's vector helpers take straight RGBA.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
