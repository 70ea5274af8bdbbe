package mandala

import (
	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/particles"
	"github.com/san-kum/artgen/internal/render"
)

var (
	nightTop    = art.Color{R: 10, G: 10, B: 20, A: 255}
	nightBottom = art.Color{R: 30, G: 20, B: 40, A: 255}

	paperTop    = art.Color{R: 245, G: 245, B: 240, A: 255}
	paperBottom = art.Color{R: 171, G: 171, B: 168, A: 255}
)

const (
	classicParticleAlpha = 0.2
	speedStep            = 0.1
)

// Module is the "Mandala" art module: the classic mandala over a drifting
// particle field.
type Module struct {
	bounds art.Vec2
	seed   int64
	m      Classic
	field  *particles.System
	ps     module.Params
}

// NewModule builds the module with n background particles.
func NewModule(bounds art.Vec2, seed int64, n int) *Module {
	seed = art.ResolveSeed(seed)
	m := &Module{
		bounds: bounds,
		seed:   seed,
		m:      NewClassic(bounds.Center()),
		field:  particles.NewSystem(n, bounds, art.NewRand(seed)),
	}
	m.ps = module.Params{
		"speed": {Min: MinSpeed, Max: MaxSpeed,
			Get: func() float64 { return m.m.Anim.Speed }, Set: func(v float64) { m.m.Anim.Speed = v }},
		"segments": {Min: MinSegments, Max: MaxSegments,
			Get: func() float64 { return float64(m.m.Segments) }, Set: func(v float64) { m.m.Segments = int(v) }},
		"smoothness": {Min: 0, Max: 1,
			Get: func() float64 { return m.m.Anim.Smoothness }, Set: func(v float64) { m.m.Anim.Smoothness = v }},
		"scale": {Min: 0.2, Max: 3,
			Get: func() float64 { return m.m.Scale }, Set: func(v float64) { m.m.Scale = v }},
	}
	return m
}

func (m *Module) Name() string { return "Mandala" }

func (m *Module) Init() {
	m.m = NewClassic(m.bounds.Center())
	m.field.Resize(m.bounds)
	m.field.Init()
}

func (m *Module) Update(dt float64) {
	if m.m.Anim.Paused {
		return
	}
	m.m.Update(dt)
	m.field.Update(dt)
}

func (m *Module) Draw(s render.Surface) {
	render.Fill(s, nightTop, nightBottom)
	m.field.Draw(s, classicParticleAlpha)
	m.m.Draw(s)
}

func (m *Module) HandleInput(in module.Input) {
	if in.Pressed(module.KeyUp) {
		m.m.AdjustSpeed(speedStep)
	}
	if in.Pressed(module.KeyDown) {
		m.m.AdjustSpeed(-speedStep)
	}
	if in.Pressed(module.KeyP) {
		m.m.Anim.TogglePause()
	}
	if in.Pressed(module.KeyR) {
		m.Init()
	}
	if in.Pressed(module.KeyLeft) {
		m.m.AdjustSegments(-1)
	}
	if in.Pressed(module.KeyRight) {
		m.m.AdjustSegments(1)
	}
}

func (m *Module) Reset() { m.Init() }

func (m *Module) Seed() int64 { return m.seed }

func (m *Module) Resize(w, h float64) {
	m.bounds = art.V(w, h)
	m.m.Center = m.bounds.Center()
	m.field.Resize(m.bounds)
}

// Classic exposes the mandala state.
func (m *Module) Classic() *Classic { return &m.m }

func (m *Module) Particles() *particles.System { return m.field }

func (m *Module) Params() map[string]float64 { return m.ps.Values() }

func (m *Module) SetParam(name string, v float64) error {
	return m.ps.Apply(m.Name(), name, v)
}

// Surreal is the "Surreal Mandala" module built on the layered generator.
type Surreal struct {
	bounds  art.Vec2
	seed    int64
	rng     art.Rand
	opts    Options
	pattern *Pattern
	anim    art.AnimationSettings
	ps      module.Params
}

func NewSurreal(bounds art.Vec2, seed int64) *Surreal {
	seed = art.ResolveSeed(seed)
	m := &Surreal{
		bounds: bounds,
		seed:   seed,
		rng:    art.NewRand(seed),
		opts:   DefaultOptions(),
		anim:   art.NewAnimation(1),
	}
	m.ps = module.Params{
		"speed": {Min: MinSpeed, Max: MaxSpeed,
			Get: func() float64 { return m.anim.Speed }, Set: func(v float64) { m.anim.Speed = v }},
		"mirror_chance": {Min: 0, Max: 1,
			Get: func() float64 { return m.opts.MirrorChance }, Set: func(v float64) { m.opts.MirrorChance = v }},
		"link_chance": {Min: 0, Max: 1,
			Get: func() float64 { return m.opts.LinkChance }, Set: func(v float64) { m.opts.LinkChance = v }},
		"max_layers": {Min: 3, Max: 12,
			Get: func() float64 { return float64(m.opts.MaxLayers) }, Set: func(v float64) { m.opts.MaxLayers = int(v) }},
	}
	return m
}

func (m *Surreal) Name() string { return "Surreal Mandala" }

func (m *Surreal) Init() {
	m.pattern = Generate(m.rng, m.opts)
	m.anim.Time = 0
	m.anim.Paused = false
}

func (m *Surreal) Update(dt float64) {
	if m.pattern == nil {
		return
	}
	if step := m.anim.Advance(dt); step > 0 {
		m.pattern.Update(step)
	}
}

func (m *Surreal) Draw(s render.Surface) {
	render.Fill(s, paperTop, paperBottom)
	if m.pattern != nil {
		m.pattern.Draw(s, s.Size().Center(), m.rng, m.opts)
	}
}

func (m *Surreal) HandleInput(in module.Input) {
	if in.Pressed(module.KeyUp) {
		m.anim.AdjustSpeed(speedStep, MinSpeed, MaxSpeed)
	}
	if in.Pressed(module.KeyDown) {
		m.anim.AdjustSpeed(-speedStep, MinSpeed, MaxSpeed)
	}
	if in.Pressed(module.KeyP) {
		m.anim.TogglePause()
	}
	if in.Pressed(module.KeyR) {
		m.Init()
	}
}

func (m *Surreal) Cleanup() { m.pattern = nil }

func (m *Surreal) Reset() { m.Init() }

func (m *Surreal) Seed() int64 { return m.seed }

func (m *Surreal) Resize(w, h float64) { m.bounds = art.V(w, h) }

func (m *Surreal) Pattern() *Pattern { return m.pattern }

func (m *Surreal) Params() map[string]float64 { return m.ps.Values() }

func (m *Surreal) SetParam(name string, v float64) error {
	return m.ps.Apply(m.Name(), name, v)
}
