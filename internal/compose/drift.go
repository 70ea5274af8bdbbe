package compose

import (
	"math"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/particles"
	"github.com/san-kum/artgen/internal/render"
)

const (
	minSpeed  = 0.1
	maxSpeed  = 2.0
	speedStep = 0.1
)

var (
	darkGray = art.Color{R: 80, G: 80, B: 80, A: 255}
	rayWhite = art.Color{R: 245, G: 245, B: 245, A: 255}
)

const driftSway = 100.0

// Drift is a disc swaying across the centre of a particle field.
type Drift struct {
	bounds art.Vec2
	seed   int64
	anim   art.AnimationSettings
	offset float64
	disc   float64
	field  *particles.System
	ps     module.Params
}

func NewDrift(bounds art.Vec2, seed int64, n int) *Drift {
	seed = art.ResolveSeed(seed)
	d := &Drift{
		bounds: bounds,
		seed:   seed,
		anim:   art.NewAnimation(0.3),
		disc:   50,
		field:  particles.NewSystem(n, bounds, art.NewRand(seed)),
	}
	d.ps = module.Params{
		"speed": {Min: minSpeed, Max: maxSpeed,
			Get: func() float64 { return d.anim.Speed }, Set: func(v float64) { d.anim.Speed = v }},
		"radius": {Min: 5, Max: 300,
			Get: func() float64 { return d.disc }, Set: func(v float64) { d.disc = v }},
	}
	return d
}

func (d *Drift) Name() string { return "Drift" }

func (d *Drift) Init() {
	d.anim.Time = 0
	d.offset = 0
	d.field.Resize(d.bounds)
	d.field.Init()
}

func (d *Drift) Update(dt float64) {
	if d.anim.Paused {
		return
	}
	d.anim.Advance(dt)
	d.offset = math.Sin(d.anim.Time) * driftSway
	d.field.Update(dt)
}

func (d *Drift) Draw(s render.Surface) {
	render.Fill(s, art.Black, darkGray)
	c := s.Size().Center()
	s.Circle(art.V(c.X+d.offset, c.Y), d.disc, rayWhite)
	d.field.Draw(s, 0.5)
}

func (d *Drift) HandleInput(in module.Input) {
	if in.Pressed(module.KeyR) {
		d.Init()
	}
	if in.Pressed(module.KeyP) {
		d.anim.TogglePause()
	}
	if in.Pressed(module.KeyUp) {
		d.anim.AdjustSpeed(speedStep, minSpeed, maxSpeed)
	}
	if in.Pressed(module.KeyDown) {
		d.anim.AdjustSpeed(-speedStep, minSpeed, maxSpeed)
	}
}

func (d *Drift) Reset()                     { d.Init() }
func (d *Drift) Seed() int64                { return d.seed }
func (d *Drift) Params() map[string]float64 { return d.ps.Values() }

func (d *Drift) Resize(w, h float64) {
	d.bounds = art.V(w, h)
	d.field.Resize(d.bounds)
}

func (d *Drift) SetParam(name string, v float64) error {
	return d.ps.Apply(d.Name(), name, v)
}

// Offset is the current horizontal displacement of the disc.
func (d *Drift) Offset() float64 { return d.offset }

func (d *Drift) Particles() *particles.System { return d.field }
