package fractal

import (
	"sync"

	"github.com/san-kum/artgen/internal/art"
)

// rowChunk is the minimum number of rows handed to one worker.
const rowChunk = 16

// Grid holds one iteration count per sampled cell, row-major.
type Grid struct {
	Cols, Rows int
	Step       int
	MaxIter    int
	Iter       []int
}

func (g *Grid) At(col, row int) int { return g.Iter[row*g.Cols+col] }

// Escaped counts cells below the iteration cap.
func (g *Grid) Escaped() int {
	n := 0
	for _, it := range g.Iter {
		if it < g.MaxIter {
			n++
		}
	}
	return n
}

var gridPool = sync.Pool{
	New: func() any { return new(Grid) },
}

func getGrid(cols, rows int) *Grid {
	g := gridPool.Get().(*Grid)
	n := cols * rows
	if cap(g.Iter) < n {
		g.Iter = make([]int, n)
	}
	g.Iter = g.Iter[:n]
	g.Cols, g.Rows = cols, rows
	return g
}

// Release returns g to the pool. g must not be used afterwards.
func Release(g *Grid) {
	if g != nil {
		gridPool.Put(g)
	}
}

// Compute samples every step-th pixel of v under p. Rows are split across
// goroutines; each writes only its own rows.
func Compute(v View, p Params, step int) *Grid {
	if step < 1 {
		step = 1
	}
	cols := (int(v.Width) + step - 1) / step
	rows := (int(v.Height) + step - 1) / step
	g := getGrid(cols, rows)
	g.Step, g.MaxIter = step, p.MaxIter

	art.ParallelFor(rows, rowChunk, func(start, end int) {
		for r := start; r < end; r++ {
			py := r * step
			for c := range cols {
				px := c * step
				re, im := v.ToComplex(float64(px), float64(py))
				g.Iter[r*cols+c] = p.Iterate(re, im, px, py)
			}
		}
	})
	return g
}
