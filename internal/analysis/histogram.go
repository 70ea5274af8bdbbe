package analysis

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/artgen/internal/fractal"
)

// Histogram buckets the escaped cells of g into bins equal-width ranges of
// [0, MaxIter). Cells that reached the cap are not counted.
func Histogram(g *fractal.Grid, bins int) []float64 {
	if bins < 1 {
		bins = 1
	}
	hist := make([]float64, bins)
	if g.MaxIter <= 0 {
		return hist
	}
	for _, it := range g.Iter {
		if it >= g.MaxIter {
			continue
		}
		b := it * bins / g.MaxIter
		hist[b]++
	}
	return hist
}

type Report struct {
	Kind      fractal.Kind
	Cells     int
	Escaped   int
	Inside    int
	MeanIter  float64
	MaxIter   int
	Histogram []float64
}

// InsideRatio is the share of cells that never escaped.
func (r Report) InsideRatio() float64 {
	if r.Cells == 0 {
		return 0
	}
	return float64(r.Inside) / float64(r.Cells)
}

// Inspect computes v under p at the given step and summarizes the grid.
func Inspect(v fractal.View, p fractal.Params, step, bins int) Report {
	g := fractal.Compute(v, p, step)
	defer fractal.Release(g)

	rep := Report{
		Kind:      p.Kind,
		Cells:     len(g.Iter),
		Escaped:   g.Escaped(),
		MaxIter:   g.MaxIter,
		Histogram: Histogram(g, bins),
	}
	rep.Inside = rep.Cells - rep.Escaped

	total := 0
	for _, it := range g.Iter {
		if it < g.MaxIter {
			total += it
		}
	}
	if rep.Escaped > 0 {
		rep.MeanIter = float64(total) / float64(rep.Escaped)
	}
	return rep
}

// Plot renders data as an ASCII chart.
func Plot(data []float64, caption string) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
