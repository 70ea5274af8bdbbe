package compose

import (
	"math"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/fractal"
	"github.com/san-kum/artgen/internal/mandala"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/particles"
	"github.com/san-kum/artgen/internal/render"
)

// View selects what the Combined module shows.
type View int

const (
	ViewMandala View = iota
	ViewFractal
	ViewCombined
	viewCount
)

func (v View) String() string {
	switch v {
	case ViewMandala:
		return "mandala"
	case ViewFractal:
		return "fractal"
	}
	return "combined"
}

const (
	combinedIter  = 128
	combinedStep  = 2
	fractalRate   = 0.5
	overlayAlpha  = 0.3
	particleAlpha = 0.3
	fractalAlpha  = 0.8
)

// Combined layers a folded Mandelbrot, a dark veil, the classic mandala and
// a particle field. Space cycles between mandala, fractal and combined views.
type Combined struct {
	bounds  art.Vec2
	seed    int64
	view    View
	speed   float64
	ftime   float64
	fview   fractal.View
	palette fractal.Palette
	classic mandala.Classic
	field   *particles.System
	ps      module.Params
}

func NewCombined(bounds art.Vec2, seed int64, n int) *Combined {
	seed = art.ResolveSeed(seed)
	c := &Combined{
		bounds:  bounds,
		seed:    seed,
		view:    ViewCombined,
		speed:   0.3,
		palette: fractal.SinePalette(),
		field:   particles.NewSystem(n, bounds, art.NewRand(seed)),
	}
	c.ps = module.Params{
		"speed": {Min: minSpeed, Max: maxSpeed,
			Get: func() float64 { return c.speed }, Set: func(v float64) { c.speed = v }},
		"view": {Min: 0, Max: float64(viewCount - 1),
			Get: func() float64 { return float64(c.view) }, Set: func(v float64) { c.view = View(v) }},
	}
	return c
}

func (c *Combined) Name() string { return "Combined" }

func (c *Combined) Init() {
	c.classic = mandala.NewClassic(c.bounds.Center())
	c.fview = fractal.View{Width: c.bounds.X, Height: c.bounds.Y, Zoom: 1}
	c.ftime = 0
	c.field.Resize(c.bounds)
	c.field.Init()
}

// Update runs both clocks from the shared speed, the fractal at half rate.
func (c *Combined) Update(dt float64) {
	c.field.Update(dt)
	c.classic.Anim.Speed = c.speed
	c.classic.Update(dt)
	c.ftime += dt * c.speed * fractalRate
	c.fview.Zoom = 1 + math.Sin(c.ftime)*0.3
}

func (c *Combined) drawFractal(s render.Surface) {
	p := fractal.Params{Kind: fractal.KindMandelbrotFolded, MaxIter: combinedIter}
	fractal.PaintEscaped(s, c.fview, p, &c.palette, combinedStep, fractalAlpha, 0)
}

func (c *Combined) Draw(s render.Surface) {
	sz := s.Size()
	s.Clear(art.Black)
	switch c.view {
	case ViewMandala:
		c.classic.Draw(s)
	case ViewFractal:
		c.drawFractal(s)
	default:
		c.drawFractal(s)
		s.Rect(0, 0, sz.X, sz.Y, art.Fade(art.Black, overlayAlpha))
		c.classic.Draw(s)
		c.field.Draw(s, particleAlpha)
	}
}

func (c *Combined) HandleInput(in module.Input) {
	if in.Pressed(module.KeySpace) {
		c.view = (c.view + 1) % viewCount
	}
	if in.Pressed(module.KeyR) {
		c.Init()
	}
	if in.Pressed(module.KeyUp) {
		c.speed = art.Clamp(c.speed+speedStep, minSpeed, maxSpeed)
	}
	if in.Pressed(module.KeyDown) {
		c.speed = art.Clamp(c.speed-speedStep, minSpeed, maxSpeed)
	}
}

func (c *Combined) Reset()      { c.Init() }
func (c *Combined) Seed() int64 { return c.seed }

func (c *Combined) Resize(w, h float64) {
	c.bounds = art.V(w, h)
	c.fview.Width, c.fview.Height = w, h
	c.classic.Center = c.bounds.Center()
	c.field.Resize(c.bounds)
}

func (c *Combined) View() View { return c.view }

func (c *Combined) Params() map[string]float64 { return c.ps.Values() }

func (c *Combined) SetParam(name string, v float64) error {
	return c.ps.Apply(c.Name(), name, v)
}

func (c *Combined) Particles() *particles.System { return c.field }
