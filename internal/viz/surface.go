package viz

import (
	"math"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/render"
)

var _ render.Surface = (*Surface)(nil)

// DefaultThreshold is the luminance above which a dot is lit.
const DefaultThreshold = 0.35

// Surface rasterizes render primitives into a luminance buffer sized to a
// Canvas, scaling from world coordinates. Flush copies it into the canvas.
type Surface struct {
	World     art.Vec2
	Threshold float64

	canvas *Canvas
	w, h   int
	lum    []float32
	sx, sy float64
}

func NewSurface(world art.Vec2, c *Canvas) *Surface {
	s := &Surface{World: world, Threshold: DefaultThreshold}
	s.Attach(c)
	return s
}

// Attach switches to a new canvas, e.g. after a terminal resize.
func (s *Surface) Attach(c *Canvas) {
	s.canvas = c
	s.w, s.h = c.Dots()
	s.lum = make([]float32, s.w*s.h)
	s.sx = float64(s.w) / math.Max(s.World.X, 1)
	s.sy = float64(s.h) / math.Max(s.World.Y, 1)
}

func (s *Surface) Canvas() *Canvas { return s.canvas }

// Flush writes the thresholded buffer into the canvas.
func (s *Surface) Flush() {
	th := float32(s.Threshold)
	for y := range s.h {
		for x := range s.w {
			if s.lum[y*s.w+x] >= th {
				s.canvas.Set(x, y)
			} else {
				s.canvas.Unset(x, y)
			}
		}
	}
}

func (s *Surface) dot(x, y int, c art.Color) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	a := float32(c.A) / 255
	i := y*s.w + x
	s.lum[i] = s.lum[i]*(1-a) + float32(art.Luma(c))*a
}

func (s *Surface) toDots(p art.Vec2) (float64, float64) { return p.X * s.sx, p.Y * s.sy }

func (s *Surface) Size() art.Vec2 { return s.World }

func (s *Surface) Clear(c art.Color) {
	l := float32(art.Luma(c))
	for i := range s.lum {
		s.lum[i] = l
	}
}

func (s *Surface) Ellipse(center art.Vec2, rx, ry float64, c art.Color) {
	cx, cy := s.toDots(center)
	rx, ry = rx*s.sx, ry*s.sy
	if rx <= 0 || ry <= 0 {
		s.dot(int(cx), int(cy), c)
		return
	}
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			dx, dy := (float64(x)-cx)/rx, (float64(y)-cy)/ry
			if dx*dx+dy*dy <= 1 {
				s.dot(x, y, c)
			}
		}
	}
}

func (s *Surface) Circle(center art.Vec2, radius float64, c art.Color) {
	s.Ellipse(center, radius, radius, c)
}

func (s *Surface) CircleLines(center art.Vec2, radius float64, c art.Color) {
	const segments = 48
	prev := center.Add(art.V(radius, 0))
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		next := center.Add(art.PolarToCartesian(a, radius))
		s.Line(prev, next, 1, c)
		prev = next
	}
}

func edge(a, b art.Vec2, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
}

func (s *Surface) Triangle(a, b, c art.Vec2, col art.Color) {
	ax, ay := s.toDots(a)
	bx, by := s.toDots(b)
	cx, cy := s.toDots(c)
	pa, pb, pc := art.V(ax, ay), art.V(bx, by), art.V(cx, cy)
	area := edge(pa, pb, cx, cy)
	if area == 0 {
		s.drawLine(pa, pb, col)
		s.drawLine(pb, pc, col)
		return
	}
	minX := int(math.Floor(math.Min(ax, math.Min(bx, cx))))
	maxX := int(math.Ceil(math.Max(ax, math.Max(bx, cx))))
	minY := int(math.Floor(math.Min(ay, math.Min(by, cy))))
	maxY := int(math.Ceil(math.Max(ay, math.Max(by, cy))))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(pb, pc, px, py)
			w1 := edge(pc, pa, px, py)
			w2 := edge(pa, pb, px, py)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				s.dot(x, y, col)
			}
		}
	}
}

func (s *Surface) TriangleLines(a, b, c art.Vec2, col art.Color) {
	s.Line(a, b, 1, col)
	s.Line(b, c, 1, col)
	s.Line(c, a, 1, col)
}

// drawLine walks dot coordinates; thickness is not representable at
// Braille resolution.
func (s *Surface) drawLine(from, to art.Vec2, c art.Color) {
	plot := func(x, y int) { s.dot(x, y, c) }
	bresenham(int(math.Round(from.X)), int(math.Round(from.Y)), int(math.Round(to.X)), int(math.Round(to.Y)), plot)
}

func (s *Surface) Line(from, to art.Vec2, thick float64, c art.Color) {
	fx, fy := s.toDots(from)
	tx, ty := s.toDots(to)
	s.drawLine(art.V(fx, fy), art.V(tx, ty), c)
}

func (s *Surface) Poly(center art.Vec2, sides int, radius, rotation float64, c art.Color) {
	if sides < 3 {
		return
	}
	rot := rotation * art.Deg2Rad
	step := 2 * math.Pi / float64(sides)
	prev := center.Add(art.PolarToCartesian(rot, radius))
	for i := 1; i <= sides; i++ {
		next := center.Add(art.PolarToCartesian(rot+float64(i)*step, radius))
		s.Triangle(center, prev, next, c)
		prev = next
	}
}

func (s *Surface) Rect(x, y, w, h float64, c art.Color) {
	x0, y0 := s.toDots(art.V(x, y))
	x1, y1 := s.toDots(art.V(x+w, y+h))
	for py := int(math.Floor(y0)); py < int(math.Ceil(y1)); py++ {
		for px := int(math.Floor(x0)); px < int(math.Ceil(x1)); px++ {
			s.dot(px, py, c)
		}
	}
}

func (s *Surface) GradientV(x, y, w, h float64, top, bottom art.Color) {
	x0, y0 := s.toDots(art.V(x, y))
	x1, y1 := s.toDots(art.V(x+w, y+h))
	rows := math.Max(y1-y0, 1)
	for py := int(math.Floor(y0)); py < int(math.Ceil(y1)); py++ {
		c := art.LerpColor(top, bottom, (float64(py)-y0)/rows)
		for px := int(math.Floor(x0)); px < int(math.Ceil(x1)); px++ {
			s.dot(px, py, c)
		}
	}
}

func (s *Surface) Pixel(p art.Vec2, c art.Color) {
	x, y := s.toDots(p)
	s.dot(int(x), int(y), c)
}
