package svg

import (
	"strings"
	"testing"

	"github.com/san-kum/artgen/internal/art"
)

func TestDocument(t *testing.T) {
	s := New(100, 50)
	s.Clear(art.Black)
	s.GradientV(0, 0, 100, 50, art.Black, art.White)
	s.Circle(art.V(10, 10), 5, art.Fade(art.Gold, 0.5))
	s.Poly(art.V(50, 25), 6, 10, 0, art.Brown)
	s.Text("a<b", 0, 0, 10, art.White)

	out := s.String()
	for _, want := range []string{
		`width="100" height="50"`,
		`<linearGradient id="g1"`,
		`fill="url(#g1)"`,
		`<circle cx="10.0" cy="10.0" r="5.0" fill="rgb(255,215,0)" fill-opacity="0.498"/>`,
		`a&lt;b`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<polygon"); n != 1 {
		t.Errorf("polygons = %d, want 1", n)
	}
}

func TestClearResets(t *testing.T) {
	s := New(10, 10)
	s.Circle(art.V(1, 1), 1, art.White)
	s.Clear(art.Black)
	if strings.Contains(s.String(), "<circle") {
		t.Error("Clear should drop earlier elements")
	}
}
