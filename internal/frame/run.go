package frame

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/artgen/internal/logging"
	"github.com/san-kum/artgen/internal/module"
)

// Runner steps a single module without a window.
type Runner struct {
	metrics   []Metric
	observers []Observer
	log       *slog.Logger
}

func NewRunner(log *slog.Logger) *Runner {
	return &Runner{log: logging.OrNop(log)}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func validate(cfg RunConfig) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	return nil
}

// Run initializes m, applies cfg.Params and advances it cfg.Frames times by
// cfg.Dt. Cancellation is checked between frames; a cancelled run returns
// the partial result together with ctx.Err().
func (r *Runner) Run(ctx context.Context, m module.Module, cfg RunConfig) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	if !cfg.SkipInit {
		module.Init(m)
	}
	if err := module.ApplyAll(m, cfg.Params); err != nil {
		return nil, err
	}
	for _, mt := range r.metrics {
		mt.Reset()
	}

	res := &Result{Metrics: make(map[string]float64)}
	start := time.Now()
	t := 0.0

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			res.Elapsed = time.Since(start)
			r.collect(res)
			return res, ctx.Err()
		default:
		}

		module.Update(m, cfg.Dt)
		t += cfg.Dt
		res.Frames++

		for _, mt := range r.metrics {
			mt.Observe(m, i, t)
		}
		for _, o := range r.observers {
			o.OnFrame(m, i, t)
		}
	}

	res.SimTime = t
	res.Elapsed = time.Since(start)
	r.collect(res)
	r.log.Debug("headless run finished", "module", m.Name(), "frames", res.Frames, "elapsed", res.Elapsed)
	return res, nil
}

func (r *Runner) collect(res *Result) {
	for _, mt := range r.metrics {
		res.Metrics[mt.Name()] = mt.Value()
	}
}
