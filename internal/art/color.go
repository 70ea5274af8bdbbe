package art

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LerpColor interpolates each channel of a towards b. t is clamped to [0, 1].
func LerpColor(a, b Color, t float64) Color {
	t = Clamp(t, 0, 1)
	return Color{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// Fade returns c with its alpha multiplied by alpha (clamped to [0, 1]).
func Fade(c Color, alpha float64) Color {
	c.A = uint8(float64(c.A) * Clamp(alpha, 0, 1))
	return c
}

// WithAlpha replaces the alpha channel with alpha*255.
func WithAlpha(c Color, alpha float64) Color {
	c.A = to8(Clamp(alpha, 0, 1))
	return c
}

// ColorFromHSV converts hue in degrees, saturation and value in [0, 1] to an opaque color.
func ColorFromHSV(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, Clamp(s, 0, 1), Clamp(v, 0, 1))
	r, g, b := c.Clamped().RGB255()
	return Color{r, g, b, 255}
}

// Luma is the perceived brightness of c in [0, 1], ignoring alpha.
func Luma(c Color) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// Hex formats c as #rrggbb.
func Hex(c Color) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

func to8(f float64) uint8 {
	return uint8(math.Round(Clamp(f, 0, 1) * 255))
}
