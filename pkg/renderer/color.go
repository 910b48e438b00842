package renderer

import (
	"image/color"
	"math"
)

// Common colors
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Sky   = color.RGBA{R: 127, G: 178, B: 255, A: 255}
)

// clampChannel clamps a channel value to [0, 255] and truncates it
func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Scale multiplies each color channel by intensity. Alpha stays opaque.
func Scale(c color.RGBA, intensity float64) color.RGBA {
	return color.RGBA{
		R: clampChannel(float64(c.R) * intensity),
		G: clampChannel(float64(c.G) * intensity),
		B: clampChannel(float64(c.B) * intensity),
		A: 255,
	}
}

// Add sums two colors channel by channel, saturating at 255. Alpha stays opaque.
func Add(c1, c2 color.RGBA) color.RGBA {
	return color.RGBA{
		R: clampChannel(float64(c1.R) + float64(c2.R)),
		G: clampChannel(float64(c1.G) + float64(c2.G)),
		B: clampChannel(float64(c1.B) + float64(c2.B)),
		A: 255,
	}
}

// Lerp blends from a (t=0) to b (t=1): (1-t)*a + t*b
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	return Add(Scale(a, 1.0-t), Scale(b, t))
}
