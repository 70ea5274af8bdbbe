package metrics

import (
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/particles"
)

type particleSource interface {
	Particles() *particles.System
}

// ParticleLife averages the mean remaining particle life over a run.
// Modules without a particle field are ignored.
type ParticleLife struct {
	name    string
	total   float64
	samples int
}

func NewParticleLife() *ParticleLife {
	return &ParticleLife{name: "particle_life"}
}

func (p *ParticleLife) Name() string { return p.name }

func (p *ParticleLife) Observe(m module.Module, frame int, t float64) {
	src, ok := m.(particleSource)
	if !ok {
		return
	}
	sys := src.Particles()
	if sys == nil || sys.Len() == 0 {
		return
	}
	p.total += sys.MeanLife()
	p.samples++
}

func (p *ParticleLife) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.total / float64(p.samples)
}

func (p *ParticleLife) Reset() {
	p.total = 0
	p.samples = 0
}
