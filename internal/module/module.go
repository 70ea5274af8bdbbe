package module

import "github.com/san-kum/artgen/internal/render"

type Module interface {
	Name() string
}

type Initializer interface {
	Init()
}

type Updater interface {
	Update(dt float64)
}

type Drawer interface {
	Draw(s render.Surface)
}

type Cleaner interface {
	Cleanup()
}

type InputHandler interface {
	HandleInput(in Input)
}

// Configurable modules expose tunable parameters by name. SetParam clamps
// out-of-range values and returns art.ErrUnknownParam for unknown names.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, v float64) error
}

// Resetter modules can restart their animation with fresh randomness.
type Resetter interface {
	Reset()
}

// Seeder modules report the seed of their random source.
type Seeder interface {
	Seed() int64
}

// Resizer modules track the viewport they are drawn on.
type Resizer interface {
	Resize(w, h float64)
}

func Init(m Module) {
	if i, ok := m.(Initializer); ok {
		i.Init()
	}
}

func Update(m Module, dt float64) {
	if u, ok := m.(Updater); ok {
		u.Update(dt)
	}
}

func Draw(m Module, s render.Surface) {
	if d, ok := m.(Drawer); ok {
		d.Draw(s)
	}
}

func Cleanup(m Module) {
	if c, ok := m.(Cleaner); ok {
		c.Cleanup()
	}
}

func HandleInput(m Module, in Input) {
	if h, ok := m.(InputHandler); ok {
		h.HandleInput(in)
	}
}

// Resize forwards the viewport size to modules that track it.
func Resize(m Module, w, h float64) {
	if r, ok := m.(Resizer); ok {
		r.Resize(w, h)
	}
}
