package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV converts hue (degrees), saturation and value (0-1) into a packed RGB565
// color. Hue wraps modulo 360; saturation and value are clamped.
func HSV(h, s, v float64) RGB565 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// a tiny negative hue rounds up to exactly 360
	if h >= 360 {
		h -= 360
	}
	r, g, b := colorful.Hsv(h, clamp01(s), clamp01(v)).RGB255()
	return Pack(r, g, b)
}

// ToHSV recovers hue, saturation and value from a packed color.
func ToHSV(c RGB565) (h, s, v float64) {
	r, g, b := c.RGB()
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hsv()
}

// Gray packs an 8-bit gray level, clamping it into 0-255.
func Gray(level int) RGB565 {
	if level < 0 {
		level = 0
	}
	if level > 255 {
		level = 255
	}
	l := uint8(level)
	return Pack(l, l, l)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
