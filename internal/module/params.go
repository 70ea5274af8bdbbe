package module

import (
	"math"
	"sort"

	"github.com/san-kum/artgen/internal/art"
)

// Param is one tunable value. Set receives the value already clamped to
// [Min, Max].
type Param struct {
	Min, Max float64
	Get      func() float64
	Set      func(float64)
}

// Params backs a Configurable implementation.
type Params map[string]Param

func (ps Params) Values() map[string]float64 {
	out := make(map[string]float64, len(ps))
	for name, p := range ps {
		out[name] = p.Get()
	}
	return out
}

// Apply clamps v into range and stores it. owner names the module in errors.
func (ps Params) Apply(owner, name string, v float64) error {
	p, ok := ps[name]
	if !ok {
		return &art.ParamError{Module: owner, Param: name, Wrapped: art.ErrUnknownParam}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &art.ParamError{Module: owner, Param: name, Wrapped: art.ErrInvalidValue}
	}
	p.Set(art.Clamp(v, p.Min, p.Max))
	return nil
}

// Names returns the parameter names sorted.
func (ps Params) Names() []string {
	out := make([]string, 0, len(ps))
	for name := range ps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ApplyAll sets every value in vals on m. Modules that are not Configurable
// reject any non-empty map.
func ApplyAll(m Module, vals map[string]float64) error {
	if len(vals) == 0 {
		return nil
	}
	c, ok := m.(Configurable)
	if !ok {
		for name := range vals {
			return &art.ParamError{Module: m.Name(), Param: name, Wrapped: art.ErrUnknownParam}
		}
	}
	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.SetParam(name, vals[name]); err != nil {
			return err
		}
	}
	return nil
}
