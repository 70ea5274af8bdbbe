package metrics

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/fractal"
	"github.com/san-kum/artgen/internal/frame"
	"github.com/san-kum/artgen/internal/mandala"
)

var bounds = art.V(320, 240)

func TestParticleLife(t *testing.T) {
	m := mandala.NewModule(bounds, 7, 50)
	m.Init()

	p := NewParticleLife()
	p.Observe(m, 0, 0)
	v := p.Value()
	if v < 3 || v > 10 {
		t.Errorf("mean life %.3f outside [3,10]", v)
	}

	p.Reset()
	if p.Value() != 0 {
		t.Errorf("reset value = %v, want 0", p.Value())
	}

	// modules without particles are skipped
	p.Observe(fractal.NewModule(bounds, 7), 0, 0)
	if p.Value() != 0 {
		t.Errorf("value after non-particle module = %v", p.Value())
	}
}

func TestSpread(t *testing.T) {
	var flat fractal.Palette
	for i := range flat {
		flat[i] = art.Gray
	}
	if s := Spread(&flat); s > 1e-9 {
		t.Errorf("flat palette spread = %v, want 0", s)
	}

	var split fractal.Palette
	for i := range split {
		if i%2 == 0 {
			split[i] = art.Black
		} else {
			split[i] = art.White
		}
	}
	if s := Spread(&split); math.Abs(s-0.5) > 1e-6 {
		t.Errorf("black/white spread = %v, want 0.5", s)
	}
}

func TestPaletteSpreadObservesFractals(t *testing.T) {
	m := fractal.NewModule(bounds, 3)
	m.Init()

	p := NewPaletteSpread()
	p.Observe(m, 0, 0)
	if p.Value() <= 0 {
		t.Errorf("hue palette should have positive spread, got %v", p.Value())
	}
	p.Observe(mandala.NewSurreal(bounds, 3), 1, 0)
	if p.samples != 1 {
		t.Errorf("samples = %d, want 1", p.samples)
	}
}

func TestFrameTime(t *testing.T) {
	f := NewFrameTime()
	base := time.Unix(0, 0)
	ticks := 0
	f.now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * 20 * time.Millisecond)
	}
	for i := range 5 {
		f.Observe(nil, i, 0)
	}
	if v := f.Value(); math.Abs(v-20) > 1e-9 {
		t.Errorf("frame time = %v, want 20", v)
	}
	f.Reset()
	if f.Value() != 0 {
		t.Errorf("reset value = %v", f.Value())
	}
}

func TestStandardWithRunner(t *testing.T) {
	r := frame.NewRunner(nil)
	for _, m := range Standard() {
		r.AddMetric(m)
	}
	res, err := r.Run(context.Background(), mandala.NewModule(bounds, 11, 20), frame.RunConfig{Dt: 1.0 / 60, Frames: 30})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"frame_ms", "particle_life", "palette_spread"} {
		if _, ok := res.Metrics[name]; !ok {
			t.Errorf("missing metric %q", name)
		}
	}
	if res.Metrics["particle_life"] <= 0 {
		t.Errorf("particle_life = %v", res.Metrics["particle_life"])
	}
}
