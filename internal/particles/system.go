package particles

import (
	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/render"
)

// System owns a particle slice together with the viewport and random source
// it animates against.
type System struct {
	Particles []Particle
	Bounds    art.Vec2
	rng       art.Rand
}

// NewSystem allocates n particles (clamped to [0, MaxParticles]) without
// initializing them.
func NewSystem(n int, bounds art.Vec2, rng art.Rand) *System {
	n = art.ClampInt(n, 0, MaxParticles)
	return &System{Particles: make([]Particle, n), Bounds: bounds, rng: rng}
}

func (s *System) Init()             { Initialize(s.Particles, s.Bounds, s.rng) }
func (s *System) Update(dt float64) { Update(s.Particles, s.Bounds, dt, s.rng) }

func (s *System) Draw(surf render.Surface, alpha float64) { Render(surf, s.Particles, alpha) }

// Resize changes the viewport used for spawning and wrapping.
func (s *System) Resize(bounds art.Vec2) { s.Bounds = bounds }

func (s *System) Len() int { return len(s.Particles) }

// MeanLife is the average remaining lifetime, zero for an empty system.
func (s *System) MeanLife() float64 {
	if len(s.Particles) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range s.Particles {
		total += p.Life
	}
	return total / float64(len(s.Particles))
}
