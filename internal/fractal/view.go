package fractal

import (
	"math"

	"github.com/san-kum/artgen/internal/art"
)

const (
	MinZoom = 0.1
	MaxZoom = 1000

	// DefaultSpan is the extent of the complex plane covered by the shorter
	// viewport side at zoom 1.
	DefaultSpan = 3.0
)

// View maps viewport pixels onto the complex plane.
type View struct {
	Width, Height float64
	Zoom          float64
	OffsetX       float64
	OffsetY       float64
	// Span overrides DefaultSpan when positive.
	Span float64
}

func NewView(w, h float64) View {
	return View{Width: w, Height: h, Zoom: 1, OffsetX: -0.5}
}

// Scale is the complex distance between neighbouring pixels.
func (v View) Scale() float64 {
	span := v.Span
	if span <= 0 {
		span = DefaultSpan
	}
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return span / (zoom * math.Min(v.Width, v.Height))
}

func (v View) ToComplex(px, py float64) (re, im float64) {
	s := v.Scale()
	return (px-v.Width/2)*s + v.OffsetX, (py-v.Height/2)*s + v.OffsetY
}

// ZoomBy multiplies zoom by f, clamped to [MinZoom, MaxZoom].
func (v *View) ZoomBy(f float64) {
	v.Zoom = art.Clamp(v.Zoom*f, MinZoom, MaxZoom)
}

// Pan moves the offset by (dx, dy) divided by the current zoom.
func (v *View) Pan(dx, dy float64) {
	v.OffsetX += dx / v.Zoom
	v.OffsetY += dy / v.Zoom
}
