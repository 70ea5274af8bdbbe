// Package viz runs the art modules in a terminal.
//
// Modules draw onto a [Surface] that rasterizes primitives into a
// Braille [Canvas]: every terminal cell holds a 2x4 dot matrix, and a dot
// is lit when the blended luminance under it crosses a threshold.
//
// # Key Bindings
//
//	Tab / Shift+Tab - next / previous module
//	Arrows, R, P    - module controls (speed, reset, pause)
//	W/A/S/D, Q/E    - pan and zoom fractal modules
//	1-4, C          - gallery kind and color scheme
//	T               - cycle color themes
//	?               - toggle help
//	Esc, Ctrl+C     - quit
package viz
