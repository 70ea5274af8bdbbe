package art

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"
)

func TestLerpColor(t *testing.T) {
	a := Color{0, 0, 0, 0}
	b := Color{200, 100, 50, 255}

	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"middle", 0.5, Color{100, 50, 25, 127}},
		{"below clamps", -3, a},
		{"above clamps", 7, b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpColor(a, b, tt.t); got != tt.want {
				t.Errorf("LerpColor(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestFade(t *testing.T) {
	c := Color{10, 20, 30, 200}
	if got := Fade(c, 0.5); got.A != 100 || got.R != 10 {
		t.Errorf("Fade(0.5) = %v", got)
	}
	if got := Fade(c, 2); got.A != 200 {
		t.Errorf("Fade should clamp factor, got alpha %d", got.A)
	}
	if got := Fade(c, -1); got.A != 0 {
		t.Errorf("Fade(-1) alpha = %d, want 0", got.A)
	}
}

func TestPolarToCartesian(t *testing.T) {
	p := PolarToCartesian(math.Pi/2, 10)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-10) > 1e-9 {
		t.Errorf("got %v, want (0, 10)", p)
	}
	p = PolarToCartesian(0, 3)
	if p != (Vec2{3, 0}) {
		t.Errorf("got %v, want (3, 0)", p)
	}
}

func TestSmoothStep(t *testing.T) {
	if got := SmoothStep(0, 1, 0.5); got != 0.5 {
		t.Errorf("midpoint = %v", got)
	}
	if got := SmoothStep(0, 1, -1); got != 0 {
		t.Errorf("below = %v", got)
	}
	if got := SmoothStep(0, 1, 2); got != 1 {
		t.Errorf("above = %v", got)
	}
	if got := SmoothStep(0, 1, 0.25); math.Abs(got-0.15625) > 1e-12 {
		t.Errorf("quarter = %v", got)
	}
	if got := SmoothStep(1, 1, 1); got != 1 {
		t.Errorf("degenerate edges = %v", got)
	}
}

func TestColorFromHSV(t *testing.T) {
	tests := []struct {
		h    float64
		want Color
	}{
		{0, Color{255, 0, 0, 255}},
		{120, Color{0, 255, 0, 255}},
		{240, Color{0, 0, 255, 255}},
		{360, Color{255, 0, 0, 255}},
		{-120, Color{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.h), func(t *testing.T) {
			if got := ColorFromHSV(tt.h, 1, 1); got != tt.want {
				t.Errorf("ColorFromHSV(%v) = %v, want %v", tt.h, got, tt.want)
			}
		})
	}
}

func TestBetweenInclusive(t *testing.T) {
	rng := NewRand(1)
	seen := map[int]bool{}
	for range 2000 {
		v := Between(rng, 2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("Between out of range: %d", v)
		}
		seen[v] = true
	}
	for v := 2; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn", v)
		}
	}
	if v := Between(rng, 7, 7); v != 7 {
		t.Errorf("Between(7,7) = %d", v)
	}
	if v := Between(rng, 9, 3); v < 3 || v > 9 {
		t.Errorf("swapped bounds gave %d", v)
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 10 {
		if a.Int63() != b.Int63() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestAnimationSettings(t *testing.T) {
	a := NewAnimation(0.5)
	if step := a.Advance(2); step != 1 || a.Time != 1 {
		t.Errorf("Advance: step %v time %v", step, a.Time)
	}
	a.TogglePause()
	if step := a.Advance(2); step != 0 || a.Time != 1 {
		t.Errorf("paused Advance moved time: step %v time %v", step, a.Time)
	}
	a.AdjustSpeed(10, 0.1, 2)
	if a.Speed != 2 {
		t.Errorf("speed = %v, want 2", a.Speed)
	}
	a.AdjustSpeed(-10, 0.1, 2)
	if a.Speed != 0.1 {
		t.Errorf("speed = %v, want 0.1", a.Speed)
	}
}

func TestTrigTable(t *testing.T) {
	for _, x := range []float64{-7, -1, 0, 0.3, 1, math.Pi, 5, 100} {
		s, c := FastSinCos(x)
		if math.Abs(s-math.Sin(x)) > 1e-5 || math.Abs(c-math.Cos(x)) > 1e-5 {
			t.Errorf("FastSinCos(%v) = (%v, %v)", x, s, c)
		}
	}
}

func TestParallelFor(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 1031} {
		var covered atomic.Int64
		hits := make([]int32, n)
		ParallelFor(n, 8, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
				covered.Add(1)
			}
		})
		if covered.Load() != int64(n) {
			t.Errorf("n=%d covered %d", n, covered.Load())
		}
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestParamErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("apply: %w", &ParamError{Module: "Fractal", Param: "zoom", Wrapped: ErrUnknownParam})
	if !errors.Is(err, ErrUnknownParam) {
		t.Error("expected ErrUnknownParam in chain")
	}
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Param != "zoom" {
		t.Errorf("errors.As failed: %v", err)
	}
}
