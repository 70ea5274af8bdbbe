package fractal

import "testing"

func TestMandelbrotKnownPoints(t *testing.T) {
	const maxIter = 200
	tests := []struct {
		name   string
		re, im float64
		check  func(int) bool
	}{
		{"origin never escapes", 0, 0, func(n int) bool { return n == maxIter }},
		{"c=-1 is periodic", -1, 0, func(n int) bool { return n == maxIter }},
		{"c=2 escapes immediately", 2, 0, func(n int) bool { return n == 0 || n == 1 }},
		{"far point escapes first step", 10, 10, func(n int) bool { return n == 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mandelbrot(tt.re, tt.im, maxIter); !tt.check(got) {
				t.Errorf("Mandelbrot(%v, %v) = %d", tt.re, tt.im, got)
			}
		})
	}
}

func TestEnginesRespectCap(t *testing.T) {
	engines := map[string]func(re, im float64, n int) int{
		"mandelbrot": Mandelbrot,
		"folded":     MandelbrotFolded,
		"burning":    BurningShip,
		"julia":      func(re, im float64, n int) int { return Julia(re, im, -0.7, 0.27, n) },
	}
	for name, fn := range engines {
		for _, n := range []int{0, 1, 17, 255} {
			for re := -2.0; re <= 2.0; re += 0.25 {
				for im := -2.0; im <= 2.0; im += 0.25 {
					if got := fn(re, im, n); got < 0 || got > n {
						t.Fatalf("%s(%v, %v, %d) = %d out of [0, cap]", name, re, im, n, got)
					}
				}
			}
		}
	}
}

func TestFoldedDiffersFromStandard(t *testing.T) {
	// Below the real axis the folded variant loses the sign of the imaginary
	// part, so the two engines disagree somewhere in the lower half-plane.
	diff := 0
	for re := -2.0; re <= 1.0; re += 0.05 {
		for im := -1.5; im < 0; im += 0.05 {
			if Mandelbrot(re, im, 64) != MandelbrotFolded(re, im, 64) {
				diff++
			}
		}
	}
	if diff == 0 {
		t.Error("folded variant should not match the standard Mandelbrot")
	}
	if got := MandelbrotFolded(0, 0, 50); got != 50 {
		t.Errorf("folded origin = %d, want cap", got)
	}
}

func TestJuliaStartsAtPixel(t *testing.T) {
	if got := Julia(3, 0, 0, 0, 100); got != 0 {
		t.Errorf("pixel outside radius 2 should escape at 0, got %d", got)
	}
	if got := Julia(0, 0, 0, 0, 100); got != 100 {
		t.Errorf("c=0 at origin should stay bounded, got %d", got)
	}
}

func TestBurningShipMatchesMandelbrotOnRealAxis(t *testing.T) {
	// With a real c the imaginary part stays zero and |x|² == x².
	for _, re := range []float64{-1.9, -1.2, -0.5, 0.2, 0.3, 1} {
		if a, b := BurningShip(re, 0, 100), Mandelbrot(re, 0, 100); a != b {
			t.Errorf("re=%v: burning ship %d, mandelbrot %d", re, a, b)
		}
	}
	if BurningShip(-1.75, -0.03, 100) == Mandelbrot(-1.75, -0.03, 100) &&
		BurningShip(0.3, 0.5, 100) == Mandelbrot(0.3, 0.5, 100) {
		t.Error("burning ship should differ from Mandelbrot off the real axis")
	}
}

func TestCarpet(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 1, false},
		{4, 4, false},
		{3, 0, true},
		{3, 4, false},
		{13, 13, false},
		{40, 40, false},
		{2, 1, true},
	}
	for _, tt := range tests {
		if got := Carpet(tt.x, tt.y, 243); got != tt.want {
			t.Errorf("Carpet(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestParamsIterateCarpet(t *testing.T) {
	p := Params{Kind: KindCarpet, MaxIter: 100, CarpetSize: 243}
	if got := p.Iterate(0, 0, 1, 1); got != 0 {
		t.Errorf("hole = %d", got)
	}
	if got := p.Iterate(0, 0, 0, 0); got != 50 {
		t.Errorf("filled = %d", got)
	}
}

func BenchmarkMandelbrot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Mandelbrot(-0.745, 0.1, 255)
	}
}

func BenchmarkJulia(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Julia(0.1, 0.1, -0.7, 0.27, 255)
	}
}

func BenchmarkCompute(b *testing.B) {
	v := NewView(320, 240)
	p := Params{Kind: KindMandelbrot, MaxIter: 128}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Release(Compute(v, p, 1))
	}
}
