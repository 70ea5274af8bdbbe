package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/artgen/internal/art"
)

type Preset struct {
	Description string
	Params      map[string]float64
}

// Presets are keyed by catalog id, then preset name.
var Presets = map[string]map[string]Preset{
	"mandala": {
		"calm": {
			Description: "slow twelve-fold rotation",
			Params:      map[string]float64{"speed": 0.1, "segments": 12, "smoothness": 1},
		},
		"busy": {
			Description: "dense fast mandala",
			Params:      map[string]float64{"speed": 1.5, "segments": 24, "scale": 1.2},
		},
		"triad": {
			Description: "three segments, large scale",
			Params:      map[string]float64{"segments": 3, "scale": 1.8},
		},
	},
	"fractal": {
		"deep": {
			Description: "high iteration cap, fine detail",
			Params:      map[string]float64{"max_iter": 600, "detail": 1},
		},
		"julia": {
			Description: "Julia set around the default constant",
			Params:      map[string]float64{"kind": 1, "offset_x": 0},
		},
		"ship": {
			Description: "Burning Ship",
			Params:      map[string]float64{"kind": 2, "offset_x": -0.4, "offset_y": -0.5},
		},
	},
	"gallery": {
		"carpet": {
			Description: "Sierpinski carpet, earth tones",
			Params:      map[string]float64{"kind": 3, "scheme": 0},
		},
		"ocean": {
			Description: "Mandelbrot in ocean blues",
			Params:      map[string]float64{"kind": 0, "scheme": 1},
		},
		"sunset-julia": {
			Description: "Julia set, sunset palette",
			Params:      map[string]float64{"kind": 1, "scheme": 2},
		},
	},
	"surreal": {
		"sparse": {
			Description: "few layers, no links",
			Params:      map[string]float64{"max_layers": 4, "link_chance": 0},
		},
		"mirrored": {
			Description: "every element mirrored",
			Params:      map[string]float64{"mirror_chance": 1},
		},
	},
	"combined": {
		"fractal-only": {
			Description: "only the fractal layer",
			Params:      map[string]float64{"view": 1},
		},
		"slow": {
			Description: "all layers at minimum speed",
			Params:      map[string]float64{"speed": 0.1},
		},
	},
	"drift": {
		"big": {
			Description: "large slow disc",
			Params:      map[string]float64{"radius": 150, "speed": 0.5},
		},
	},
}

func GetPreset(module, preset string) (Preset, error) {
	modulePresets, ok := Presets[module]
	if !ok {
		return Preset{}, fmt.Errorf("%s/%s: %w", module, preset, art.ErrUnknownPreset)
	}
	p, ok := modulePresets[preset]
	if !ok {
		return Preset{}, fmt.Errorf("%s/%s: %w", module, preset, art.ErrUnknownPreset)
	}
	return p, nil
}

// ListPresets returns the preset names of a module sorted, nil for unknown
// modules.
func ListPresets(module string) []string {
	modulePresets, ok := Presets[module]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modulePresets))
	for name := range modulePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
