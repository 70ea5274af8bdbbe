// Package raster implements render.Surface on a gg software context so modules
// can be drawn without a window and written out as PNG.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/san-kum/artgen/internal/art"
)

type Surface struct {
	dc  *gg.Context
	w   int
	h   int
	err error
}

func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster %dx%d: %w", width, height, art.ErrInvalidSize)
	}
	return &Surface{dc: gg.NewContext(width, height), w: width, h: height}, nil
}

func toGG(c art.Color) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func (s *Surface) use(c art.Color) {
	g := toGG(c)
	s.dc.SetRGBA(g.R, g.G, g.B, g.A)
}

// keep only the first failure; later calls still draw.
func (s *Surface) note(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *Surface) fill(c art.Color) {
	s.use(c)
	s.note(s.dc.Fill())
}

func (s *Surface) stroke(c art.Color, width float64) {
	s.use(c)
	s.dc.SetLineWidth(width)
	s.note(s.dc.Stroke())
}

// Err reports the first fill or stroke error since creation.
func (s *Surface) Err() error { return s.err }

func (s *Surface) Size() art.Vec2 { return art.V(float64(s.w), float64(s.h)) }

func (s *Surface) Clear(c art.Color) { s.dc.ClearWithColor(toGG(c)) }

func (s *Surface) Circle(center art.Vec2, radius float64, c art.Color) {
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.fill(c)
}

func (s *Surface) CircleLines(center art.Vec2, radius float64, c art.Color) {
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.stroke(c, 1)
}

func (s *Surface) Ellipse(center art.Vec2, rx, ry float64, c art.Color) {
	s.dc.DrawEllipse(center.X, center.Y, rx, ry)
	s.fill(c)
}

func (s *Surface) triangle(a, b, c art.Vec2) {
	s.dc.MoveTo(a.X, a.Y)
	s.dc.LineTo(b.X, b.Y)
	s.dc.LineTo(c.X, c.Y)
	s.dc.ClosePath()
}

func (s *Surface) Triangle(a, b, c art.Vec2, col art.Color) {
	s.triangle(a, b, c)
	s.fill(col)
}

func (s *Surface) TriangleLines(a, b, c art.Vec2, col art.Color) {
	s.triangle(a, b, c)
	s.stroke(col, 1)
}

func (s *Surface) Line(from, to art.Vec2, thick float64, c art.Color) {
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.stroke(c, thick)
}

func (s *Surface) Poly(center art.Vec2, sides int, radius, rotation float64, c art.Color) {
	if sides < 3 {
		sides = 3
	}
	s.dc.DrawRegularPolygon(sides, center.X, center.Y, radius, rotation*art.Deg2Rad)
	s.fill(c)
}

func (s *Surface) Rect(x, y, w, h float64, c art.Color) {
	s.dc.DrawRectangle(x, y, w, h)
	s.fill(c)
}

func (s *Surface) GradientV(x, y, w, h float64, top, bottom art.Color) {
	rows := int(h)
	for i := range rows {
		t := 0.0
		if rows > 1 {
			t = float64(i) / float64(rows-1)
		}
		s.dc.DrawRectangle(x, y+float64(i), w, 1)
		s.fill(art.LerpColor(top, bottom, t))
	}
}

func (s *Surface) Pixel(p art.Vec2, c art.Color) {
	x, y := int(p.X), int(p.Y)
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.dc.SetPixel(x, y, toGG(c))
}

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}

func (s *Surface) SavePNG(path string) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.SavePNG(path)
}

func (s *Surface) Close() error { return s.dc.Close() }
