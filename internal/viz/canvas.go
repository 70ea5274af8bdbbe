package viz

import (
	"strings"
)

// brailleBase is U+2800, the empty pattern. Each cell's eight dots add bits:
//
//	0x01 0x08
//	0x02 0x10
//	0x04 0x20
//	0x40 0x80
const brailleBase = 0x2800

// dotBits is indexed [y%4][x%2].
var dotBits = [4][2]uint8{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of Width×Height Braille cells, addressed in dots:
// (Width*2) × (Height*4).
type Canvas struct {
	Width  int // cells
	Height int
	cells  []uint8
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	return &Canvas{Width: w, Height: h, cells: make([]uint8, w*h)}
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) index(x, y int) (int, uint8, bool) {
	col, row := x/2, y/4
	if x < 0 || y < 0 || col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row*c.Width + col, dotBits[y%4][x%2], true
}

// Set lights the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if i, bit, ok := c.index(x, y); ok {
		c.cells[i] |= bit
	}
}

func (c *Canvas) Unset(x, y int) {
	if i, bit, ok := c.index(x, y); ok {
		c.cells[i] &^= bit
	}
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	i, bit, ok := c.index(x, y)
	return ok && c.cells[i]&bit != 0
}

func (c *Canvas) Clear() { clear(c.cells) }

// DrawLine sets every dot on the segment between two dots.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) { bresenham(x0, y0, x1, y1, c.Set) }

// bresenham calls plot for each dot from (x0, y0) to (x1, y1) inclusive.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, sx := absInt(x1-x0), sign(x1-x0)
	dy, sy := -absInt(y1-y0), sign(y1-y0)
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.Height * (c.Width*3 + 1))
	for i, cell := range c.cells {
		sb.WriteRune(rune(brailleBase + int(cell)))
		if (i+1)%c.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func absInt(v int) int { return max(v, -v) }

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
