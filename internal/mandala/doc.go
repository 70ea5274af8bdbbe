// Package mandala generates radial mandala patterns.
//
// Two generators live here. [Classic] draws three rings of segmented petals
// from a handful of state variables. [Pattern] is the layered generator: a
// random set of layers, each holding elements that drift, breathe and are
// drawn with one of eight shape motifs (see [DrawShape]).
//
// Geometry is never stored; both generators recompute every position from
// their state on each Draw.
package mandala
