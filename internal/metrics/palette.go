package metrics

import (
	"math"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/fractal"
	"github.com/san-kum/artgen/internal/module"
)

type fractalSource interface {
	State() *fractal.State
}

// PaletteSpread tracks the largest luma standard deviation seen across the
// palettes of a fractal module. A flat palette scores 0.
type PaletteSpread struct {
	name    string
	max     float64
	samples int
}

func NewPaletteSpread() *PaletteSpread {
	return &PaletteSpread{name: "palette_spread"}
}

func (p *PaletteSpread) Name() string { return p.name }

func (p *PaletteSpread) Observe(m module.Module, frame int, t float64) {
	src, ok := m.(fractalSource)
	if !ok || src.State() == nil {
		return
	}
	p.max = math.Max(p.max, Spread(&src.State().Palette))
	p.samples++
}

func (p *PaletteSpread) Value() float64 { return p.max }

func (p *PaletteSpread) Reset() {
	p.max = 0
	p.samples = 0
}

// Spread is the population standard deviation of the palette's luma in [0,1].
func Spread(pal *fractal.Palette) float64 {
	var sum, sq float64
	for _, c := range pal {
		l := art.Luma(c)
		sum += l
		sq += l * l
	}
	n := float64(len(pal))
	mean := sum / n
	return math.Sqrt(math.Max(0, sq/n-mean*mean))
}
