package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/artgen/internal/art"
)

// Surface draws straight to the current raylib frame buffer. It is only
// valid between BeginDrawing and EndDrawing.
type Surface struct{}

func col(c art.Color) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

func vec(v art.Vec2) rl.Vector2 { return rl.NewVector2(float32(v.X), float32(v.Y)) }

func (Surface) Size() art.Vec2 {
	return art.V(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
}

func (Surface) Clear(c art.Color) { rl.ClearBackground(col(c)) }

func (Surface) Circle(center art.Vec2, radius float64, c art.Color) {
	rl.DrawCircleV(vec(center), float32(radius), col(c))
}

func (Surface) CircleLines(center art.Vec2, radius float64, c art.Color) {
	rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(radius), col(c))
}

func (Surface) Ellipse(center art.Vec2, rx, ry float64, c art.Color) {
	rl.DrawEllipse(int32(center.X), int32(center.Y), float32(rx), float32(ry), col(c))
}

// ccw orders the vertices counter-clockwise on screen, which raylib needs
// to rasterize a filled triangle.
func ccw(a, b, c art.Vec2) (art.Vec2, art.Vec2, art.Vec2) {
	if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) > 0 {
		return a, c, b
	}
	return a, b, c
}

func (Surface) Triangle(a, b, c art.Vec2, fill art.Color) {
	a, b, c = ccw(a, b, c)
	rl.DrawTriangle(vec(a), vec(b), vec(c), col(fill))
}

func (Surface) TriangleLines(a, b, c art.Vec2, fill art.Color) {
	rl.DrawTriangleLines(vec(a), vec(b), vec(c), col(fill))
}

func (Surface) Line(from, to art.Vec2, thick float64, c art.Color) {
	rl.DrawLineEx(vec(from), vec(to), float32(thick), col(c))
}

func (Surface) Poly(center art.Vec2, sides int, radius, rotation float64, c art.Color) {
	rl.DrawPoly(vec(center), int32(sides), float32(radius), float32(rotation), col(c))
}

func (Surface) Rect(x, y, w, h float64, c art.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), col(c))
}

func (Surface) GradientV(x, y, w, h float64, top, bottom art.Color) {
	rl.DrawRectangleGradientV(int32(x), int32(y), int32(w), int32(h), col(top), col(bottom))
}

func (Surface) Pixel(p art.Vec2, c art.Color) { rl.DrawPixelV(vec(p), col(c)) }

func (Surface) Text(s string, x, y float64, size int, c art.Color) {
	rl.DrawText(s, int32(x), int32(y), int32(size), col(c))
}
