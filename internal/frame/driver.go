// Package frame sequences a frame of the interactive loop and runs modules
// headless for a fixed number of frames.
package frame

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/logging"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/render"
)

// Driver runs one frame at a time against a registry: switching on Tab,
// then input, update, draw and the overlay. It owns no window.
type Driver struct {
	Registry *Registry
	// Params holds per-module parameters keyed by module name, applied each
	// time the module is initialized.
	Params map[string]map[string]float64
	// Overlay draws the module bar on text-capable surfaces.
	Overlay bool
	// FPS is shown in the overlay when positive.
	FPS int

	log     *slog.Logger
	started bool
}

// Registry is the module registry driven by a Driver.
type Registry = module.Registry

func NewDriver(r *Registry, log *slog.Logger) *Driver {
	return &Driver{Registry: r, Overlay: true, log: logging.OrNop(log)}
}

// Start initializes the current module.
func (d *Driver) Start() {
	if d.started {
		return
	}
	d.started = true
	d.activate()
}

func (d *Driver) activate() {
	m, ok := d.Registry.Current()
	if !ok {
		return
	}
	module.Init(m)
	d.applyParams(m)
}

func (d *Driver) applyParams(m module.Module) {
	if err := module.ApplyAll(m, d.Params[m.Name()]); err != nil {
		d.log.Warn("apply params", "module", m.Name(), "err", err)
	}
	d.log.Debug("module active", "module", m.Name(), "index", d.Registry.Index())
}

// Switch cleans up the current module, moves by dir and starts the next one.
func (d *Driver) Switch(dir int) {
	if d.Registry.Count() == 0 || dir == 0 {
		return
	}
	module.Switch(d.Registry, dir)
	m, _ := d.Registry.Current()
	d.applyParams(m)
}

// Select switches to index i.
func (d *Driver) Select(i int) bool {
	if !module.Activate(d.Registry, i) {
		return false
	}
	m, _ := d.Registry.Current()
	d.applyParams(m)
	return true
}

// Frame runs one iteration. Shift+Tab goes back, Tab alone goes forward.
func (d *Driver) Frame(dt float64, in module.Input, s render.Surface) {
	if !d.started {
		d.Start()
	}
	if in.Pressed(module.KeyTab) {
		if in.Down(module.KeyShift) {
			d.Switch(-1)
		} else {
			d.Switch(1)
		}
	}

	m, ok := d.Registry.Current()
	if ok {
		module.HandleInput(m, in)
		module.Update(m, dt)
		module.Draw(m, s)
	} else {
		s.Clear(art.Black)
	}

	if ts, isText := s.(render.TextSurface); isText && d.Overlay {
		DrawOverlay(ts, d.Registry, d.FPS)
	}
}

// Stop cleans up the current module.
func (d *Driver) Stop() {
	if !d.started {
		return
	}
	d.started = false
	if m, ok := d.Registry.Current(); ok {
		module.Cleanup(m)
	}
}

// Resize forwards a new viewport size to every registered module.
func (d *Driver) Resize(w, h float64) {
	for i := range d.Registry.Count() {
		m, _ := d.Registry.At(i)
		module.Resize(m, w, h)
	}
}

const overlayHeight = 90

var (
	overlayText  = art.White
	overlayTitle = art.Color{R: 253, G: 249, B: 0, A: 255}
	overlayFPS   = art.Green
)

// DrawOverlay paints the top bar: current module, controls and the module
// list with the current entry highlighted.
func DrawOverlay(s render.TextSurface, r *Registry, fps int) {
	sz := s.Size()
	s.Rect(0, 0, sz.X, overlayHeight, art.Fade(art.Black, 0.7))

	name := "None"
	if m, ok := r.Current(); ok {
		name = m.Name()
	}
	s.Text(fmt.Sprintf("Module: %s", name), 10, 10, 20, overlayText)
	s.Text("TAB: Next Module | SHIFT+TAB: Previous Module", 10, 40, 16, overlayText)
	s.Text("Module Controls: Arrow Keys, R: Reset, P: Pause", 10, 60, 16, overlayText)

	x := sz.X - 250
	s.Text("Available Modules:", x, 10, 16, overlayTitle)
	for i := range r.Count() {
		c := overlayText
		if i == r.Index() {
			c = art.Gold
		}
		s.Text(fmt.Sprintf("%d. %s", i+1, r.NameAt(i)), x, 30+float64(i)*15, 14, c)
	}

	if fps > 0 {
		s.Text(fmt.Sprintf("FPS: %d", fps), sz.X-80, sz.Y-30, 20, overlayFPS)
	}
}
