package mandala

import (
	"math"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/render"
)

type Shape int

const (
	ShapeCircle Shape = iota
	ShapeStar
	ShapeEye
	ShapeTriangleSpiral
	ShapeFlower
	ShapeCrescent
	ShapeHexWeb
	ShapeSpiralDots
	ShapeCount
)

var shapeNames = [...]string{
	"circle", "star", "eye", "triangle-spiral", "flower", "crescent", "hexagon-web", "spiral-dots",
}

func (s Shape) String() string { return shapeNames[norm(s)] }

func norm(s Shape) Shape {
	return ((s % ShapeCount) + ShapeCount) % ShapeCount
}

// DrawShape draws one motif centred on pos. shape is taken modulo ShapeCount,
// rotation is in radians and t is the pattern time driving the morphing
// circle.
func DrawShape(s render.Surface, pos art.Vec2, size float64, shape Shape, c art.Color, rotation, t float64) {
	at := func(angle, r float64) art.Vec2 { return pos.Add(art.PolarToCartesian(angle, r)) }

	switch norm(shape) {
	case ShapeCircle:
		s.Circle(pos, size*(1+0.3*math.Sin(t*3)), c)

	case ShapeStar:
		for i := range 5 {
			a1 := rotation + float64(i)*72*art.Deg2Rad
			a2 := rotation + float64(i+1)*72*art.Deg2Rad
			s.Triangle(pos, at(a1, size), at(a2, size*0.4), c)
		}

	case ShapeEye:
		s.Ellipse(pos, size*1.5, size*0.7, c)
		s.Circle(pos, size*0.4, art.Fade(art.Black, 0.8))
		s.Circle(pos.Add(art.V(size*0.1, -size*0.1)), size*0.15, art.White)

	case ShapeTriangleSpiral:
		for i := range 3 {
			scale := 1 - float64(i)*0.3
			angle := rotation + float64(i)*30*art.Deg2Rad
			s.Poly(pos, 3, size*scale, angle*art.Rad2Deg, c)
		}

	case ShapeFlower:
		for i := range 8 {
			s.Ellipse(at(rotation+float64(i)*45*art.Deg2Rad, size*0.5), size*0.6, size*0.3, c)
		}
		s.Circle(pos, size*0.3, art.Fade(c, 0.7))

	case ShapeCrescent:
		s.Circle(pos, size, c)
		s.Circle(pos.Add(art.V(size*0.3, 0)), size*0.9, art.Black)

	case ShapeHexWeb:
		s.Poly(pos, 6, size, rotation*art.Rad2Deg, c)
		spoke := art.Fade(c, 0.5)
		for i := range 6 {
			s.Line(pos, at(rotation+float64(i)*60*art.Deg2Rad, size), 1, spoke)
		}

	case ShapeSpiralDots:
		for i := range 12 {
			r := size * (0.2 + float64(i)*0.08)
			s.Circle(at(rotation+float64(i)*30*art.Deg2Rad, r), size*0.15, c)
		}
	}
}
