package fractal

import "math"

const bailout = 4.0

// Mandelbrot iterates z ← z² + c from z = 0 and returns the 0-based iteration
// after which |z|² exceeded 4, or maxIter if it never did.
func Mandelbrot(re, im float64, maxIter int) int {
	var x, y float64
	for i := 0; i < maxIter; i++ {
		x, y = x*x-y*y+re, 2*x*y+im
		if x*x+y*y > bailout {
			return i
		}
	}
	return maxIter
}

// MandelbrotFolded tracks the squared components directly and builds the
// imaginary step from their roots, 2·√(re²)·√(im²) + im. Because the roots
// drop the sign, the set is folded onto its first quadrant. The escape test
// runs before each step.
func MandelbrotFolded(re, im float64, maxIter int) int {
	var r2, i2 float64
	for i := 0; i < maxIter; i++ {
		if r2+i2 > bailout {
			return i
		}
		nr := r2 - i2 + re
		ni := 2*math.Sqrt(r2)*math.Sqrt(i2) + im
		r2, i2 = nr*nr, ni*ni
	}
	return maxIter
}

// Julia iterates z ← z² + c starting from the pixel z = re + i·im.
func Julia(re, im, cRe, cIm float64, maxIter int) int {
	x, y := re, im
	for i := 0; i < maxIter; i++ {
		x2, y2 := x*x, y*y
		if x2+y2 > bailout {
			return i
		}
		x, y = x2-y2+cRe, 2*x*y+cIm
	}
	return maxIter
}

// BurningShip iterates z ← (|Re z| + i·|Im z|)² + c from z = 0.
func BurningShip(re, im float64, maxIter int) int {
	var x, y float64
	for i := 0; i < maxIter; i++ {
		ax, ay := math.Abs(x), math.Abs(y)
		x, y = ax*ax-ay*ay+re, 2*ax*ay+im
		if x*x+y*y > bailout {
			return i
		}
	}
	return maxIter
}

// Carpet reports whether pixel (x, y) is filled in a Sierpinski carpet of the
// given size. A pixel is a hole when any base-3 digit pair of its coordinates
// is (1, 1).
func Carpet(x, y, size int) bool {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for ; size > 0; size /= 3 {
		if x%3 == 1 && y%3 == 1 {
			return false
		}
		x /= 3
		y /= 3
	}
	return true
}

// Params selects the engine and its constants.
type Params struct {
	Kind       Kind
	MaxIter    int
	CRe, CIm   float64 // Julia constant
	CarpetSize int
}

// Iterate evaluates p at (re, im). Carpet kinds ignore the complex point and
// use the pixel coordinates instead, returning 0 for holes and MaxIter/2 for
// filled cells.
func (p Params) Iterate(re, im float64, px, py int) int {
	switch p.Kind {
	case KindJulia:
		return Julia(re, im, p.CRe, p.CIm, p.MaxIter)
	case KindBurningShip:
		return BurningShip(re, im, p.MaxIter)
	case KindMandelbrotFolded:
		return MandelbrotFolded(re, im, p.MaxIter)
	case KindCarpet:
		if Carpet(px, py, p.CarpetSize) {
			return p.MaxIter / 2
		}
		return 0
	default:
		return Mandelbrot(re, im, p.MaxIter)
	}
}
