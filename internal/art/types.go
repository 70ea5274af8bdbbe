package art

import "math"

// Color is an 8-bit per channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
	Green = Color{0, 228, 48, 255}
	Gray  = Color{130, 130, 130, 255}
	Gold  = Color{255, 215, 0, 255}
	Brown = Color{139, 69, 19, 255}
)

// Vec2 is a point or vector in screen space.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }

// Center returns the midpoint of a viewport whose size is v.
func (v Vec2) Center() Vec2 { return Vec2{v.X / 2, v.Y / 2} }

// IsValid reports whether both components are finite.
func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Within reports whether v lies in [0, bounds.X] x [0, bounds.Y].
func (v Vec2) Within(bounds Vec2) bool {
	return v.X >= 0 && v.X <= bounds.X && v.Y >= 0 && v.Y <= bounds.Y
}
