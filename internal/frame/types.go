package frame

import (
	"time"

	"github.com/san-kum/artgen/internal/module"
)

// Metric accumulates a value over a headless run.
type Metric interface {
	Name() string
	Observe(m module.Module, frame int, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every headless frame.
type Observer interface {
	OnFrame(m module.Module, frame int, t float64)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(m module.Module, frame int, t float64)

func (f ObserverFunc) OnFrame(m module.Module, frame int, t float64) { f(m, frame, t) }

type RunConfig struct {
	Dt     float64
	Frames int
	// Params are applied after Init.
	Params map[string]float64
	// SkipInit leaves the module as it is.
	SkipInit bool
}

type Result struct {
	Frames  int
	SimTime float64
	Elapsed time.Duration
	Metrics map[string]float64
}
