// Package render defines the drawing surface consumed by every module and a
// recording implementation used in tests.
//
// Backends live in sub-packages (raster, svg) or inside the drivers that own
// a window or terminal (gui, viz). Coordinates are screen pixels with the
// origin at the top-left corner and y growing downwards.
package render

import "github.com/san-kum/artgen/internal/art"

// Surface is the set of primitives a module may draw with.
type Surface interface {
	// Size returns the drawable width and height.
	Size() art.Vec2
	Clear(c art.Color)
	Circle(center art.Vec2, radius float64, c art.Color)
	CircleLines(center art.Vec2, radius float64, c art.Color)
	Ellipse(center art.Vec2, rx, ry float64, c art.Color)
	Triangle(a, b, c art.Vec2, col art.Color)
	TriangleLines(a, b, c art.Vec2, col art.Color)
	Line(from, to art.Vec2, thick float64, c art.Color)
	// Poly draws a filled regular polygon. rotation is in degrees.
	Poly(center art.Vec2, sides int, radius, rotation float64, c art.Color)
	Rect(x, y, w, h float64, c art.Color)
	// GradientV fills a rectangle blending top into bottom.
	GradientV(x, y, w, h float64, top, bottom art.Color)
	Pixel(p art.Vec2, c art.Color)
}

// TextSurface is implemented by surfaces that can draw text. The frame
// overlay is skipped on surfaces without it.
type TextSurface interface {
	Surface
	Text(s string, x, y float64, size int, c art.Color)
}

// Fill clears s and paints a vertical gradient over the whole surface.
func Fill(s Surface, top, bottom art.Color) {
	sz := s.Size()
	s.GradientV(0, 0, sz.X, sz.Y, top, bottom)
}
