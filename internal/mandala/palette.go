package mandala

import "github.com/san-kum/artgen/internal/art"

// Family is a palette family elements draw their color from.
type Family int

const (
	FamilyEarth Family = iota
	FamilyOcean
	FamilySunset
	FamilyForest
	FamilyStone
	FamilyPastel
	FamilyMono
	familyCount
)

var familyNames = [...]string{"earth", "ocean", "sunset", "forest", "stone", "pastel", "mono"}

func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return "unknown"
	}
	return familyNames[f]
}

// channel ranges per family: r, g, b, a as inclusive [lo, hi] pairs.
var familyRanges = [familyCount][4][2]int{
	FamilyEarth:  {{139, 180}, {69, 100}, {19, 60}, {180, 220}},
	FamilyOcean:  {{30, 70}, {90, 130}, {140, 180}, {160, 200}},
	FamilySunset: {{180, 220}, {100, 140}, {60, 100}, {170, 210}},
	FamilyForest: {{34, 74}, {100, 140}, {34, 74}, {180, 220}},
	FamilyStone:  {{100, 140}, {100, 140}, {100, 140}, {190, 230}},
	FamilyPastel: {{200, 240}, {180, 220}, {200, 240}, {150, 190}},
}

// FamilyColor draws a color from family f.
func FamilyColor(rng art.Rand, f Family) art.Color {
	if f == FamilyMono || f < 0 || f >= familyCount {
		v := uint8(art.Between(rng, 0, 1) * 255)
		return art.Color{R: v, G: v, B: v, A: uint8(art.Between(rng, 180, 255))}
	}
	r := familyRanges[f]
	ch := func(i int) uint8 { return uint8(art.Between(rng, r[i][0], r[i][1])) }
	return art.Color{R: ch(0), G: ch(1), B: ch(2), A: ch(3)}
}

// RandomColor picks a family uniformly, then a color from it.
func RandomColor(rng art.Rand) art.Color {
	return FamilyColor(rng, Family(rng.Intn(int(familyCount))))
}
