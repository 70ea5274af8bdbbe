// Package particles animates fixed-capacity particle fields that drift across
// the viewport, wrap at its edges and respawn when their lifetime runs out.
package particles

import (
	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/render"
)

// MaxParticles is the capacity used by modules that embed a System.
const MaxParticles = 500

// turnRate is the heading change in radians per second of animation time.
const turnRate = 0.5

type Particle struct {
	Position art.Vec2
	Radius   float64
	Color    art.Color
	Angle    float64 // heading in radians
	Speed    float64 // pixels per frame
	Life     float64 // remaining lifetime in seconds
}

// Initialize fills every particle with fresh random attributes.
func Initialize(ps []Particle, bounds art.Vec2, rng art.Rand) {
	for i := range ps {
		p := &ps[i]
		spawn(p, bounds, rng)
		p.Radius = float64(art.Between(rng, 2, 8))
		p.Color = art.Color{
			R: uint8(art.Between(rng, 100, 255)),
			G: uint8(art.Between(rng, 100, 255)),
			B: uint8(art.Between(rng, 100, 255)),
			A: uint8(art.Between(rng, 50, 150)),
		}
		p.Speed = float64(art.Between(rng, 10, 50)) * 0.01
	}
}

// spawn re-draws position, heading and lifetime.
func spawn(p *Particle, bounds art.Vec2, rng art.Rand) {
	p.Position = art.V(
		float64(art.Between(rng, 0, int(bounds.X))),
		float64(art.Between(rng, 0, int(bounds.Y))),
	)
	p.Angle = float64(art.Between(rng, 0, 360)) * art.Deg2Rad
	p.Life = float64(art.Between(rng, 3, 10))
}

// Update ages every particle by dt. Expired particles respawn in place of
// moving; the rest advance along their heading and wrap around the viewport.
func Update(ps []Particle, bounds art.Vec2, dt float64, rng art.Rand) {
	for i := range ps {
		p := &ps[i]
		p.Life -= dt
		if p.Life <= 0 {
			spawn(p, bounds, rng)
			continue
		}

		p.Position = p.Position.Add(art.PolarToCartesian(p.Angle, p.Speed))
		p.Angle += dt * turnRate
		p.Position.X = wrap(p.Position.X, bounds.X)
		p.Position.Y = wrap(p.Position.Y, bounds.Y)
	}
}

func wrap(v, limit float64) float64 {
	switch {
	case v < 0:
		return limit
	case v > limit:
		return 0
	}
	return v
}

// Render draws each particle as a filled circle with its color faded by alpha.
func Render(s render.Surface, ps []Particle, alpha float64) {
	for _, p := range ps {
		s.Circle(p.Position, p.Radius, art.Fade(p.Color, alpha))
	}
}
