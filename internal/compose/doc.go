// Package compose holds art modules assembled from the other generators:
// the particle "Drift" study and the "Combined" fractal/mandala view.
package compose
