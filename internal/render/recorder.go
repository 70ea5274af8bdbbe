package render

import "github.com/san-kum/artgen/internal/art"

// Op names recorded by Recorder.
const (
	OpClear         = "clear"
	OpCircle        = "circle"
	OpCircleLines   = "circle_lines"
	OpEllipse       = "ellipse"
	OpTriangle      = "triangle"
	OpTriangleLines = "triangle_lines"
	OpLine          = "line"
	OpPoly          = "poly"
	OpRect          = "rect"
	OpGradient      = "gradient"
	OpPixel         = "pixel"
	OpText          = "text"
)

// Op is a single recorded draw call.
type Op struct {
	Kind   string
	Points []art.Vec2
	Radius float64
	Sides  int
	Color  art.Color
	Text   string
}

// Recorder is a TextSurface that keeps every call in memory.
type Recorder struct {
	W, H float64
	Ops  []Op
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) add(op Op) { r.Ops = append(r.Ops, op) }

func (r *Recorder) Size() art.Vec2 { return art.Vec2{X: r.W, Y: r.H} }

func (r *Recorder) Clear(c art.Color) { r.add(Op{Kind: OpClear, Color: c}) }

func (r *Recorder) Circle(center art.Vec2, radius float64, c art.Color) {
	r.add(Op{Kind: OpCircle, Points: []art.Vec2{center}, Radius: radius, Color: c})
}

func (r *Recorder) CircleLines(center art.Vec2, radius float64, c art.Color) {
	r.add(Op{Kind: OpCircleLines, Points: []art.Vec2{center}, Radius: radius, Color: c})
}

func (r *Recorder) Ellipse(center art.Vec2, rx, ry float64, c art.Color) {
	r.add(Op{Kind: OpEllipse, Points: []art.Vec2{center, {X: rx, Y: ry}}, Radius: rx, Color: c})
}

func (r *Recorder) Triangle(a, b, c art.Vec2, col art.Color) {
	r.add(Op{Kind: OpTriangle, Points: []art.Vec2{a, b, c}, Color: col})
}

func (r *Recorder) TriangleLines(a, b, c art.Vec2, col art.Color) {
	r.add(Op{Kind: OpTriangleLines, Points: []art.Vec2{a, b, c}, Color: col})
}

func (r *Recorder) Line(from, to art.Vec2, thick float64, c art.Color) {
	r.add(Op{Kind: OpLine, Points: []art.Vec2{from, to}, Radius: thick, Color: c})
}

func (r *Recorder) Poly(center art.Vec2, sides int, radius, rotation float64, c art.Color) {
	r.add(Op{Kind: OpPoly, Points: []art.Vec2{center}, Radius: radius, Sides: sides, Color: c})
}

func (r *Recorder) Rect(x, y, w, h float64, c art.Color) {
	r.add(Op{Kind: OpRect, Points: []art.Vec2{{X: x, Y: y}, {X: w, Y: h}}, Color: c})
}

func (r *Recorder) GradientV(x, y, w, h float64, top, bottom art.Color) {
	r.add(Op{Kind: OpGradient, Points: []art.Vec2{{X: x, Y: y}, {X: w, Y: h}}, Color: top})
}

func (r *Recorder) Pixel(p art.Vec2, c art.Color) {
	r.add(Op{Kind: OpPixel, Points: []art.Vec2{p}, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, size int, c art.Color) {
	r.add(Op{Kind: OpText, Points: []art.Vec2{{X: x, Y: y}}, Radius: float64(size), Color: c, Text: s})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the recorded strings in call order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops the recorded ops and keeps the size.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
