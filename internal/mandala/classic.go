package mandala

import (
	"math"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/render"
)

const (
	MinSegments = 3
	MaxSegments = 24

	MinSpeed = 0.1
	MaxSpeed = 2.0

	baseRadius = 200.0
	ringCount  = 3
)

// Classic is the segmented three-ring mandala.
type Classic struct {
	Center    art.Vec2
	Segments  int
	Rotation  float64
	Scale     float64
	Primary   art.Color
	Secondary art.Color
	Anim      art.AnimationSettings
}

func NewClassic(center art.Vec2) Classic {
	return Classic{
		Center:    center,
		Segments:  12,
		Scale:     1,
		Primary:   art.Brown,
		Secondary: art.Gold,
		Anim:      art.NewAnimation(0.3),
	}
}

// Update advances time and sways the rotation. Paused mandalas do not move.
func (c *Classic) Update(dt float64) {
	if c.Anim.Paused {
		return
	}
	c.Anim.Advance(dt)
	c.Rotation = math.Sin(c.Anim.Time) * 0.2 * c.Anim.Smoothness
}

func (c *Classic) AdjustSegments(delta int) {
	c.Segments = art.ClampInt(c.Segments+delta, MinSegments, MaxSegments)
}

func (c *Classic) AdjustSpeed(delta float64) {
	c.Anim.AdjustSpeed(delta, MinSpeed, MaxSpeed)
}

// RingRadius is the animated radius of ring l.
func (c *Classic) RingRadius(l int) float64 {
	r := baseRadius * c.Scale * (1 + float64(l)*0.3)
	return r * (1 + math.Sin(c.Anim.Time+float64(l))*0.1*c.Anim.Smoothness)
}

func (c *Classic) Draw(s render.Surface) {
	for l := range ringCount {
		c.drawRing(s, c.RingRadius(l), c.Segments+l*4, c.Rotation+float64(l)*math.Pi/6)
	}
}

func (c *Classic) drawRing(s render.Surface, radius float64, segments int, rotation float64) {
	step := 2 * math.Pi / float64(segments)
	at := func(angle, r float64) art.Vec2 { return c.Center.Add(art.FastPolar(angle, r)) }

	petal := art.Fade(c.Primary, 0.6)
	inner := art.Fade(c.Secondary, 0.8)
	decor := art.Fade(c.Primary, 0.4)

	for i := range segments {
		a := float64(i)*step + rotation
		p1, p2 := at(a, radius), at(a+step, radius)
		s.Triangle(c.Center, p1, p2, petal)
		s.TriangleLines(c.Center, p1, p2, c.Secondary)
		s.Circle(at(a+step/2, radius*0.5), 10, inner)
		s.Line(c.Center, at(a, radius*0.7), 2, decor)
	}
	s.Circle(c.Center, radius*0.15, c.Primary)
	s.CircleLines(c.Center, radius*0.15, c.Secondary)
}
