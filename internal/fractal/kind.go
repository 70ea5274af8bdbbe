package fractal

import (
	"fmt"
	"strings"

	"github.com/san-kum/artgen/internal/art"
)

type Kind int

const (
	KindMandelbrot Kind = iota
	KindJulia
	KindBurningShip
	KindCarpet
	KindMandelbrotFolded
)

// GalleryKinds are the kinds selectable with the digit keys, in key order.
var GalleryKinds = []Kind{KindMandelbrot, KindJulia, KindBurningShip, KindCarpet}

var kindNames = map[Kind]string{
	KindMandelbrot:       "mandelbrot",
	KindJulia:            "julia",
	KindBurningShip:      "burning-ship",
	KindCarpet:           "carpet",
	KindMandelbrotFolded: "mandelbrot-folded",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown fractal kind %q: %w", s, art.ErrUnknownParam)
}
