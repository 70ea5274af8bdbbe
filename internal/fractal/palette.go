package fractal

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/artgen/internal/art"
)

const PaletteSize = 256

type Palette [PaletteSize]art.Color

// Color maps an iteration count to a color. Points that never escaped are black.
func (p *Palette) Color(iter, maxIter int) art.Color {
	if iter >= maxIter {
		return art.Black
	}
	if iter < 0 {
		iter = -iter
	}
	return p[iter%PaletteSize]
}

// hueLift brightens every channel of the hue palette.
const hueLift = 0.2

// HuePalette spreads a full hue turn over the palette, rotated by shift
// degrees. The result depends only on shift.
func HuePalette(shift float64) Palette {
	var p Palette
	for i := range p {
		t := float64(i) / (PaletteSize - 1)
		c := art.ColorFromHSV(math.Mod(t*360+shift, 360), 1, 1)
		p[i] = art.Color{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: 255}
	}
	return p
}

func lift(v uint8) uint8 {
	return uint8(art.Clamp(float64(v)+hueLift*255, 0, 255))
}

// SinePalette is a soft rainbow built from phase-shifted sine waves.
func SinePalette() Palette {
	var p Palette
	for i := range p {
		t := float64(i) / (PaletteSize - 1)
		ch := func(phase float64) uint8 { return uint8(math.Sin(t*math.Pi+phase)*127 + 128) }
		p[i] = art.Color{R: ch(0), G: ch(2), B: ch(4), A: 255}
	}
	return p
}

type Scheme int

const (
	SchemeEarth Scheme = iota
	SchemeOcean
	SchemeSunset
	SchemeForest
	SchemeMonochrome
	schemeCount
)

var schemeNames = [...]string{"earth", "ocean", "sunset", "forest", "monochrome"}

func (s Scheme) String() string {
	if s < 0 || s >= schemeCount {
		return fmt.Sprintf("scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// Next cycles through the schemes.
func (s Scheme) Next() Scheme { return (s + 1) % schemeCount }

func ParseScheme(name string) (Scheme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color scheme %q: %w", name, art.ErrUnknownParam)
}

func Schemes() []string { return append([]string(nil), schemeNames[:]...) }

// SchemeColor returns the scheme's color at position t in [0, 1].
func SchemeColor(s Scheme, t float64) art.Color {
	t = art.SmoothStep(0, 1, t)
	ch := func(base, span float64) uint8 { return uint8(art.Clamp(base+span*t, 0, 255)) }
	switch s {
	case SchemeEarth:
		return art.Color{R: ch(139, 116), G: ch(69, 100), B: ch(19, 80), A: 255}
	case SchemeOcean:
		return art.Color{R: ch(0, 70), G: ch(90, 130), B: ch(140, 115), A: 255}
	case SchemeSunset:
		return art.Color{R: ch(180, 75), G: ch(0, 100), B: ch(60, -60), A: 255}
	case SchemeForest:
		return art.Color{R: ch(34, 100), G: ch(100, 155), B: ch(34, 50), A: 255}
	default:
		v := ch(0, 255)
		return art.Color{R: v, G: v, B: v, A: 255}
	}
}

// SchemePalette samples SchemeColor across the palette.
func SchemePalette(s Scheme) Palette {
	var p Palette
	for i := range p {
		p[i] = SchemeColor(s, float64(i)/(PaletteSize-1))
	}
	return p
}
