package art

import "math"

// TrigTable holds precomputed sin/cos samples over one turn and answers
// lookups with linear interpolation between neighbouring samples.
type TrigTable struct {
	sin, cos []float64
	n        int
}

// DefaultTrigTable has 4096 samples, about 0.0015 rad apart.
var DefaultTrigTable = NewTrigTable(4096)

func NewTrigTable(n int) *TrigTable {
	if n < 2 {
		n = 2
	}
	t := &TrigTable{sin: make([]float64, n), cos: make([]float64, n), n: n}
	for i := range n {
		a := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i], t.cos[i] = math.Sincos(a)
	}
	return t
}

// slot maps an angle to the two table indices around it and the weight of the second.
func (t *TrigTable) slot(x float64) (i0, i1 int, frac float64) {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	return i % t.n, (i + 1) % t.n, idx - float64(i)
}

func (t *TrigTable) Sin(x float64) float64 {
	i0, i1, f := t.slot(x)
	return t.sin[i0]*(1-f) + t.sin[i1]*f
}

func (t *TrigTable) Cos(x float64) float64 {
	i0, i1, f := t.slot(x)
	return t.cos[i0]*(1-f) + t.cos[i1]*f
}

func (t *TrigTable) SinCos(x float64) (sin, cos float64) {
	i0, i1, f := t.slot(x)
	return t.sin[i0]*(1-f) + t.sin[i1]*f, t.cos[i0]*(1-f) + t.cos[i1]*f
}

func FastSinCos(x float64) (float64, float64) { return DefaultTrigTable.SinCos(x) }

// FastPolar is PolarToCartesian backed by the default table.
func FastPolar(angle, radius float64) Vec2 {
	s, c := DefaultTrigTable.SinCos(angle)
	return Vec2{c * radius, s * radius}
}
