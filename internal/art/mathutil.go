package art

import "math"

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// PolarToCartesian returns (cos(angle)*radius, sin(angle)*radius).
func PolarToCartesian(angle, radius float64) Vec2 {
	return Vec2{math.Cos(angle) * radius, math.Sin(angle) * radius}
}

// SmoothStep maps x from [edge0, edge1] onto [0, 1] with a cubic Hermite curve.
func SmoothStep(edge0, edge1, x float64) float64 {
	if edge1 == edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	x = Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return x * x * (3 - 2*x)
}

func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
