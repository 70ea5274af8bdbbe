package fractal

import (
	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/render"
)

// sweep calls fn for every step-th pixel of v, top to bottom.
func sweep(v View, step int, fn func(px, py int, re, im float64)) {
	if step < 1 {
		step = 1
	}
	w, h := int(v.Width), int(v.Height)
	for py := 0; py < h; py += step {
		for px := 0; px < w; px += step {
			re, im := v.ToComplex(float64(px), float64(py))
			fn(px, py, re, im)
		}
	}
}

// drawAnimated paints escaped points over black with the rotating palette,
// fading slow escapes slightly. Interior points stay black.
func drawAnimated(s render.Surface, st *State, julia bool) {
	sz := s.Size()
	s.Rect(0, 0, sz.X, sz.Y, art.Black)
	PaintEscaped(s, st.View, st.Params(julia), &st.Palette, st.Detail, 0.8, 0.2)
}

// PaintEscaped draws a step-sized cell for every sampled point that escapes.
// Cell alpha is base + boost·(1 − iter/maxIter). Interior points are skipped.
func PaintEscaped(s render.Surface, v View, p Params, pal *Palette, step int, base, boost float64) {
	cell := float64(max(step, 1))
	sweep(v, step, func(px, py int, re, im float64) {
		it := p.Iterate(re, im, px, py)
		if it >= p.MaxIter {
			return
		}
		fade := 1 - float64(it)/float64(p.MaxIter)
		c := art.Fade(pal[it%PaletteSize], base+fade*boost)
		s.Rect(float64(px), float64(py), cell, cell, c)
	})
}

// drawGallery paints every cell with the scheme palette. Carpet cells are
// drawn in the scheme's middle color on white.
func drawGallery(s render.Surface, st *State) {
	sz := s.Size()
	step := st.Detail
	cell := float64(step)
	if st.Kind == KindCarpet {
		s.Rect(0, 0, sz.X, sz.Y, art.White)
		fill := SchemeColor(st.Scheme, 0.5)
		sweep(st.View, step, func(px, py int, _, _ float64) {
			if Carpet(px, py, carpetSize) {
				s.Rect(float64(px), float64(py), cell, cell, fill)
			}
		})
		return
	}
	p := st.Params(false)
	sweep(st.View, step, func(px, py int, re, im float64) {
		it := p.Iterate(re, im, px, py)
		s.Rect(float64(px), float64(py), cell, cell, st.Palette.Color(it, p.MaxIter))
	})
}
