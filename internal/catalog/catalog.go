// Package catalog maps module identifiers to constructors so the CLI,
// automation scenarios and drivers can build modules by name.
package catalog

import (
	"fmt"
	"strings"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/compose"
	"github.com/san-kum/artgen/internal/fractal"
	"github.com/san-kum/artgen/internal/mandala"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/particles"
)

// Env carries what every constructor needs.
type Env struct {
	Bounds    art.Vec2
	Seed      int64 // 0 picks a time-based seed per module
	Particles int
}

func DefaultEnv() Env {
	return Env{Bounds: art.V(1280, 720), Particles: particles.MaxParticles}
}

type factory func(Env) module.Module

type entry struct {
	id      string
	title   string
	summary string
	build   factory
}

// Catalog is an ordered set of module factories.
type Catalog struct {
	entries []entry
}

func New() *Catalog {
	c := &Catalog{}
	c.add("mandala", "Mandala", "segmented mandala over a particle field",
		func(e Env) module.Module { return mandala.NewModule(e.Bounds, e.Seed, e.Particles) })
	c.add("fractal", "Fractal", "breathing fractal with a rotating hue palette",
		func(e Env) module.Module { return fractal.NewModule(e.Bounds, e.Seed) })
	c.add("surreal", "Surreal Mandala", "layered mandala of drifting shape motifs",
		func(e Env) module.Module { return mandala.NewSurreal(e.Bounds, e.Seed) })
	c.add("gallery", "Fractal Gallery", "four fractal kinds in five color schemes",
		func(e Env) module.Module { return fractal.NewGallery(e.Bounds, e.Seed) })
	c.add("combined", "Combined", "fractal, mandala and particles layered",
		func(e Env) module.Module { return compose.NewCombined(e.Bounds, e.Seed, e.Particles) })
	c.add("drift", "Drift", "a swaying disc in a particle field",
		func(e Env) module.Module { return compose.NewDrift(e.Bounds, e.Seed, e.Particles) })
	return c
}

func (c *Catalog) add(id, title, summary string, fn factory) {
	c.entries = append(c.entries, entry{id: id, title: title, summary: summary, build: fn})
}

// find accepts the identifier or the display name, case-insensitively.
func (c *Catalog) find(name string) (entry, bool) {
	name = strings.TrimSpace(name)
	for _, e := range c.entries {
		if strings.EqualFold(e.id, name) || strings.EqualFold(e.title, name) {
			return e, true
		}
	}
	return entry{}, false
}

// Build constructs the named module. It is not initialized.
func (c *Catalog) Build(name string, env Env) (module.Module, error) {
	e, ok := c.find(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, art.ErrUnknownModule)
	}
	return e.build(env), nil
}

// ID resolves a name or title to the module identifier.
func (c *Catalog) ID(name string) (string, error) {
	e, ok := c.find(name)
	if !ok {
		return "", fmt.Errorf("%q: %w", name, art.ErrUnknownModule)
	}
	return e.id, nil
}

// IDs lists module identifiers in display order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.id
	}
	return out
}

// Info describes one catalog entry.
type Info struct {
	ID      string
	Title   string
	Summary string
}

func (c *Catalog) List() []Info {
	out := make([]Info, len(c.entries))
	for i, e := range c.entries {
		out[i] = Info{ID: e.id, Title: e.title, Summary: e.summary}
	}
	return out
}

// Registry builds the named modules, or all of them when names is empty,
// into a module.Registry in the given order.
func (c *Catalog) Registry(env Env, names ...string) (*module.Registry, error) {
	if len(names) == 0 {
		names = c.IDs()
	}
	r := module.NewRegistry()
	for _, n := range names {
		m, err := c.Build(n, env)
		if err != nil {
			return nil, err
		}
		if !r.Register(m) {
			return r, nil
		}
	}
	return r, nil
}
