// Package svg records render.Surface calls as SVG elements.
package svg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/artgen/internal/art"
)

type Surface struct {
	w, h  float64
	defs  strings.Builder
	body  strings.Builder
	grads int
}

func New(width, height float64) *Surface {
	return &Surface{w: width, h: height}
}

func paint(attr string, c art.Color) string {
	return fmt.Sprintf(`%s="rgb(%d,%d,%d)" %s-opacity="%.3f"`, attr, c.R, c.G, c.B, attr, float64(c.A)/255)
}

func (s *Surface) el(format string, args ...any) {
	s.body.WriteString(fmt.Sprintf(format, args...))
	s.body.WriteByte('\n')
}

func (s *Surface) Size() art.Vec2 { return art.V(s.w, s.h) }

// Clear drops everything drawn so far and paints the background.
func (s *Surface) Clear(c art.Color) {
	s.body.Reset()
	s.defs.Reset()
	s.grads = 0
	s.Rect(0, 0, s.w, s.h, c)
}

func (s *Surface) Circle(center art.Vec2, radius float64, c art.Color) {
	s.el(`<circle cx="%.1f" cy="%.1f" r="%.1f" %s/>`, center.X, center.Y, radius, paint("fill", c))
}

func (s *Surface) CircleLines(center art.Vec2, radius float64, c art.Color) {
	s.el(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" %s/>`, center.X, center.Y, radius, paint("stroke", c))
}

func (s *Surface) Ellipse(center art.Vec2, rx, ry float64, c art.Color) {
	s.el(`<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" %s/>`, center.X, center.Y, rx, ry, paint("fill", c))
}

func points(ps ...art.Vec2) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func (s *Surface) Triangle(a, b, c art.Vec2, col art.Color) {
	s.el(`<polygon points="%s" %s/>`, points(a, b, c), paint("fill", col))
}

func (s *Surface) TriangleLines(a, b, c art.Vec2, col art.Color) {
	s.el(`<polygon points="%s" fill="none" %s/>`, points(a, b, c), paint("stroke", col))
}

func (s *Surface) Line(from, to art.Vec2, thick float64, c art.Color) {
	s.el(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="%.1f" %s/>`,
		from.X, from.Y, to.X, to.Y, thick, paint("stroke", c))
}

func (s *Surface) Poly(center art.Vec2, sides int, radius, rotation float64, c art.Color) {
	if sides < 3 {
		sides = 3
	}
	ps := make([]art.Vec2, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range ps {
		ps[i] = center.Add(art.PolarToCartesian(rotation*art.Deg2Rad+step*float64(i), radius))
	}
	s.el(`<polygon points="%s" %s/>`, points(ps...), paint("fill", c))
}

func (s *Surface) Rect(x, y, w, h float64, c art.Color) {
	s.el(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`, x, y, w, h, paint("fill", c))
}

func (s *Surface) GradientV(x, y, w, h float64, top, bottom art.Color) {
	s.grads++
	id := fmt.Sprintf("g%d", s.grads)
	fmt.Fprintf(&s.defs, `<linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`+
		`<stop offset="0" stop-color="rgb(%d,%d,%d)" stop-opacity="%.3f"/>`+
		`<stop offset="1" stop-color="rgb(%d,%d,%d)" stop-opacity="%.3f"/></linearGradient>`+"\n",
		id, top.R, top.G, top.B, float64(top.A)/255, bottom.R, bottom.G, bottom.B, float64(bottom.A)/255)
	s.el(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="url(#%s)"/>`, x, y, w, h, id)
}

func (s *Surface) Pixel(p art.Vec2, c art.Color) {
	s.el(`<rect x="%.0f" y="%.0f" width="1" height="1" %s/>`, math.Floor(p.X), math.Floor(p.Y), paint("fill", c))
}

func (s *Surface) Text(str string, x, y float64, size int, c art.Color) {
	var esc strings.Builder
	for _, r := range str {
		switch r {
		case '<':
			esc.WriteString("&lt;")
		case '>':
			esc.WriteString("&gt;")
		case '&':
			esc.WriteString("&amp;")
		default:
			esc.WriteRune(r)
		}
	}
	s.el(`<text x="%.1f" y="%.1f" font-size="%d" font-family="monospace" %s>%s</text>`,
		x, y+float64(size), size, paint("fill", c), esc.String())
}

// String returns the complete document.
func (s *Surface) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.w, s.h, s.w, s.h)
	if s.defs.Len() > 0 {
		sb.WriteString("<defs>\n")
		sb.WriteString(s.defs.String())
		sb.WriteString("</defs>\n")
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
