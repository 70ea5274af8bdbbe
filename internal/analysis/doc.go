// Package analysis inspects fractal views and animation traces.
//
//   - [Histogram]: escape-iteration distribution of a computed grid
//   - [Inspect]: grid statistics plus histogram for a view
//   - [Plot]: ASCII chart of a histogram or trace
//   - [DominantPeriod]: strongest period of a sampled signal
//
// A typical inspection of the default Mandelbrot view:
//
//	v := fractal.NewView(800, 600)
//	rep := analysis.Inspect(v, fractal.Params{Kind: fractal.KindMandelbrot, MaxIter: 256}, 2, 32)
//	fmt.Println(analysis.Plot(rep.Histogram, "escape iterations"))
package analysis
