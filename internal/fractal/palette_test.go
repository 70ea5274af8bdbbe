package fractal

import (
	"errors"
	"testing"

	"github.com/san-kum/artgen/internal/art"
)

func TestHuePaletteIdempotent(t *testing.T) {
	for _, shift := range []float64{0, 37.5, 359, 720.25} {
		if HuePalette(shift) != HuePalette(shift) {
			t.Errorf("HuePalette(%v) not deterministic", shift)
		}
	}
	if HuePalette(0) == HuePalette(90) {
		t.Error("different shifts should give different palettes")
	}
}

func TestHuePaletteLifted(t *testing.T) {
	p := HuePalette(0)
	for i, c := range p {
		if c.R < 51 || c.G < 51 || c.B < 51 || c.A != 255 {
			t.Fatalf("entry %d = %v, expected every channel lifted", i, c)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	p := HuePalette(10)
	if got := p.Color(100, 100); got != art.Black {
		t.Errorf("interior = %v, want black", got)
	}
	if got := p.Color(300, 1000); got != p[300%256] {
		t.Errorf("index should wrap modulo 256, got %v", got)
	}
	if got := p.Color(5, 100); got != p[5] {
		t.Errorf("Color(5) = %v", got)
	}
}

func TestSchemes(t *testing.T) {
	for _, name := range Schemes() {
		s, err := ParseScheme(name)
		if err != nil {
			t.Fatalf("ParseScheme(%q): %v", name, err)
		}
		if s.String() != name {
			t.Errorf("round trip %q -> %q", name, s)
		}
		p := SchemePalette(s)
		if p[0] == p[255] {
			t.Errorf("%s palette has no spread", name)
		}
	}
	if _, err := ParseScheme("neon"); !errors.Is(err, art.ErrUnknownParam) {
		t.Errorf("unknown scheme err = %v", err)
	}
	if SchemeMonochrome.Next() != SchemeEarth {
		t.Error("Next should wrap to earth")
	}
	if c := SchemeColor(SchemeMonochrome, 1); c != art.White {
		t.Errorf("monochrome top = %v", c)
	}
	if c := SchemeColor(SchemeEarth, 0); c != art.Brown {
		t.Errorf("earth bottom = %v, want brown", c)
	}
}

func TestParseKind(t *testing.T) {
	for k, name := range kindNames {
		got, err := ParseKind(name)
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseKind("newton"); !errors.Is(err, art.ErrUnknownParam) {
		t.Errorf("err = %v", err)
	}
}
