package frame_test

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/frame"
	"github.com/san-kum/artgen/internal/module"
)

type counter struct {
	n    int
	last float64
}

func (c *counter) Name() string { return "frames" }
func (c *counter) Observe(m module.Module, frame int, t float64) {
	c.n++
	c.last = t
}
func (c *counter) Value() float64 { return float64(c.n) }
func (c *counter) Reset()         { c.n = 0 }

func newProbe() *probe {
	var journal []string
	return &probe{name: "P", journal: &journal}
}

func TestRunnerRun(t *testing.T) {
	r := frame.NewRunner(nil)
	c := &counter{}
	r.AddMetric(c)

	seen := 0
	r.AddObserver(frame.ObserverFunc(func(module.Module, int, float64) { seen++ }))

	p := newProbe()
	res, err := r.Run(context.Background(), p, frame.RunConfig{Dt: 0.1, Frames: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Frames != 10 || p.ticks != 10 || seen != 10 {
		t.Errorf("frames=%d ticks=%d seen=%d, want 10", res.Frames, p.ticks, seen)
	}
	if res.SimTime < 0.999 || res.SimTime > 1.001 {
		t.Errorf("sim time = %f, want 1", res.SimTime)
	}
	if res.Metrics["frames"] != 10 {
		t.Errorf("metric = %v, want 10", res.Metrics["frames"])
	}

	// a second run starts from a reset metric
	res, _ = r.Run(context.Background(), p, frame.RunConfig{Dt: 0.1, Frames: 3})
	if res.Metrics["frames"] != 3 {
		t.Errorf("metric after rerun = %v, want 3", res.Metrics["frames"])
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	r := frame.NewRunner(nil)
	for _, cfg := range []frame.RunConfig{{Dt: 0, Frames: 1}, {Dt: -1, Frames: 1}, {Dt: 0.1, Frames: 0}} {
		if _, err := r.Run(context.Background(), newProbe(), cfg); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
}

func TestRunnerParams(t *testing.T) {
	r := frame.NewRunner(nil)
	p := newProbe()
	if _, err := r.Run(context.Background(), p, frame.RunConfig{Dt: 0.1, Frames: 1, Params: map[string]float64{"speed": 2}}); err != nil {
		t.Fatal(err)
	}
	if p.speed != 2 {
		t.Errorf("speed = %v, want 2", p.speed)
	}

	_, err := r.Run(context.Background(), p, frame.RunConfig{Dt: 0.1, Frames: 1, Params: map[string]float64{"nope": 1}})
	if !errors.Is(err, art.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestRunnerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := frame.NewRunner(nil)
	r.AddObserver(frame.ObserverFunc(func(_ module.Module, i int, _ float64) {
		if i == 4 {
			cancel()
		}
	}))

	res, err := r.Run(ctx, newProbe(), frame.RunConfig{Dt: 0.1, Frames: 100})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res == nil || res.Frames != 5 {
		t.Errorf("partial result frames = %v, want 5", res)
	}
}
