package fractal

import (
	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/render"
)

const (
	speedStep = 0.05
	panRate   = 0.1
	zoomIn    = 1.05
	zoomOut   = 0.95
)

// Module is the interactive "Fractal" art module: a breathing fractal with a
// rotating hue palette. Holding J shows the drifting Julia set instead, and
// holding H renders every pixel.
type Module struct {
	state  *State
	seed   int64
	julia  bool
	detail int
	ps     module.Params
}

func NewModule(bounds art.Vec2, seed int64) *Module {
	seed = art.ResolveSeed(seed)
	m := &Module{seed: seed, detail: 3, state: NewState(StyleAnimated, bounds.X, bounds.Y, art.NewRand(seed))}
	st := m.state
	m.ps = module.Params{
		"speed": {Min: MinSpeed, Max: MaxSpeed,
			Get: func() float64 { return st.Anim.Speed }, Set: func(v float64) { st.Anim.Speed = v }},
		"zoom": {Min: MinZoom, Max: MaxZoom,
			Get: func() float64 { return st.ZoomFactor }, Set: func(v float64) { st.ZoomFactor = v }},
		"max_iter": {Min: 10, Max: 1000,
			Get: func() float64 { return float64(st.MaxIter) }, Set: func(v float64) { st.MaxIter = int(v) }},
		"smoothness": {Min: 0, Max: 1,
			Get: func() float64 { return st.Anim.Smoothness }, Set: func(v float64) { st.Anim.Smoothness = v }},
		"offset_x": {Min: -3, Max: 3,
			Get: func() float64 { return st.View.OffsetX }, Set: func(v float64) { st.View.OffsetX = v }},
		"offset_y": {Min: -3, Max: 3,
			Get: func() float64 { return st.View.OffsetY }, Set: func(v float64) { st.View.OffsetY = v }},
		"kind": {Min: 0, Max: float64(KindMandelbrotFolded),
			Get: func() float64 { return float64(st.Kind) }, Set: func(v float64) { st.Kind = Kind(v) }},
		"detail": {Min: 1, Max: 8,
			Get: func() float64 { return float64(m.detail) }, Set: func(v float64) { m.detail, st.Detail = int(v), int(v) }},
	}
	return m
}

func (m *Module) Name() string { return "Fractal" }

func (m *Module) Init() { m.state.Init() }

func (m *Module) Update(dt float64) { m.state.Update(dt) }

func (m *Module) Draw(s render.Surface) { drawAnimated(s, m.state, m.julia) }

func (m *Module) Cleanup() { m.state.Close() }

func (m *Module) Reset() { m.state.Reset() }

func (m *Module) Seed() int64 { return m.seed }

func (m *Module) Resize(w, h float64) { m.state.Resize(w, h) }

// State exposes the underlying state for drivers and tests.
func (m *Module) State() *State { return m.state }

func (m *Module) Params() map[string]float64 { return m.ps.Values() }

func (m *Module) SetParam(name string, v float64) error {
	return m.ps.Apply(m.Name(), name, v)
}

func (m *Module) HandleInput(in module.Input) {
	st := m.state
	if in.Pressed(module.KeyUp) {
		st.AdjustSpeed(speedStep)
	}
	if in.Pressed(module.KeyDown) {
		st.AdjustSpeed(-speedStep)
	}
	if in.Pressed(module.KeyP) {
		st.TogglePause()
	}
	if in.Pressed(module.KeyR) {
		st.Reset()
	}

	move := panRate * (DefaultSpan / st.View.Zoom)
	if in.Down(module.KeyW) {
		st.View.OffsetY -= move
	}
	if in.Down(module.KeyS) {
		st.View.OffsetY += move
	}
	if in.Down(module.KeyA) {
		st.View.OffsetX -= move
	}
	if in.Down(module.KeyD) {
		st.View.OffsetX += move
	}
	if in.Down(module.KeyQ) {
		st.ZoomFactor = art.Clamp(st.ZoomFactor*zoomIn, MinZoom, MaxZoom)
	}
	if in.Down(module.KeyE) {
		st.ZoomFactor = art.Clamp(st.ZoomFactor*zoomOut, MinZoom, MaxZoom)
	}

	st.Detail = m.detail
	if in.Down(module.KeyH) {
		st.Detail = 1
	}
	m.julia = in.Down(module.KeyJ)
}
