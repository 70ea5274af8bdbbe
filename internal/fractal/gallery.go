package fractal

import (
	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/render"
)

// Gallery is the "Fractal Gallery" module: one of four fractal kinds in one of
// five color schemes, slowly zooming in. Digits 1-4 pick the kind and C
// cycles the scheme.
type Gallery struct {
	state  *State
	seed   int64
	detail int
}

func NewGallery(bounds art.Vec2, seed int64) *Gallery {
	seed = art.ResolveSeed(seed)
	st := NewState(StyleGallery, bounds.X, bounds.Y, art.NewRand(seed))
	st.Detail = 2
	return &Gallery{state: st, seed: seed, detail: 2}
}

func (g *Gallery) Name() string { return "Fractal Gallery" }

func (g *Gallery) Init() { g.state.Init() }

func (g *Gallery) Update(dt float64) { g.state.Update(dt) }

func (g *Gallery) Draw(s render.Surface) { drawGallery(s, g.state) }

func (g *Gallery) Cleanup() { g.state.Close() }

func (g *Gallery) Reset() { g.state.Reset() }

func (g *Gallery) Seed() int64 { return g.seed }

func (g *Gallery) Resize(w, h float64) { g.state.Resize(w, h) }

func (g *Gallery) State() *State { return g.state }

func (g *Gallery) Params() map[string]float64 {
	st := g.state
	return map[string]float64{
		"kind":   float64(st.Kind),
		"scheme": float64(st.Scheme),
		"zoom":   st.View.Zoom,
		"detail": float64(g.detail),
	}
}

func (g *Gallery) SetParam(name string, v float64) error {
	st := g.state
	ps := module.Params{
		"kind": {Min: 0, Max: float64(len(GalleryKinds) - 1),
			Get: func() float64 { return float64(st.Kind) }, Set: func(v float64) { st.Kind = GalleryKinds[int(v)] }},
		"scheme": {Min: 0, Max: float64(schemeCount - 1),
			Get: func() float64 { return float64(st.Scheme) }, Set: func(v float64) { st.SetScheme(Scheme(v)) }},
		"zoom": {Min: MinZoom, Max: MaxZoom,
			Get: func() float64 { return st.View.Zoom }, Set: func(v float64) { st.View.Zoom = v }},
		"detail": {Min: 1, Max: 8,
			Get: func() float64 { return float64(g.detail) }, Set: func(v float64) { g.detail, st.Detail = int(v), int(v) }},
	}
	return ps.Apply(g.Name(), name, v)
}

var digitKinds = map[module.Key]int{
	module.KeyDigit1: 0,
	module.KeyDigit2: 1,
	module.KeyDigit3: 2,
	module.KeyDigit4: 3,
}

func (g *Gallery) HandleInput(in module.Input) {
	st := g.state
	for k, i := range digitKinds {
		if in.Pressed(k) {
			st.Kind = GalleryKinds[i]
		}
	}
	if in.Pressed(module.KeyC) {
		st.SetScheme(st.Scheme.Next())
	}
	if in.Pressed(module.KeyP) {
		st.TogglePause()
	}
	if in.Pressed(module.KeyR) {
		st.Reset()
	}
	if in.Down(module.KeyQ) {
		st.View.ZoomBy(zoomIn)
	}
	if in.Down(module.KeyE) {
		st.View.ZoomBy(zoomOut)
	}
	if in.Down(module.KeyW) {
		st.View.Pan(0, -panRate)
	}
	if in.Down(module.KeyS) {
		st.View.Pan(0, panRate)
	}
	if in.Down(module.KeyA) {
		st.View.Pan(-panRate, 0)
	}
	if in.Down(module.KeyD) {
		st.View.Pan(panRate, 0)
	}

	st.Detail = g.detail
	if in.Down(module.KeyH) {
		st.Detail = 1
	}
}
