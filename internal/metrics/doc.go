// Package metrics holds the frame.Metric implementations used by headless
// runs: frame time, particle lifetime and fractal palette spread.
package metrics

import "github.com/san-kum/artgen/internal/frame"

var (
	_ frame.Metric = (*FrameTime)(nil)
	_ frame.Metric = (*ParticleLife)(nil)
	_ frame.Metric = (*PaletteSpread)(nil)
)

// Standard returns one of each metric.
func Standard() []frame.Metric {
	return []frame.Metric{NewFrameTime(), NewParticleLife(), NewPaletteSpread()}
}
