package config

import (
	"math"
	"sort"

	"github.com/san-kum/lissajous/internal/curve"
)

// Presets are named figures reachable from the sliders' domains.
var Presets = map[string]curve.Params{
	"line":      {Fx: 1, Fy: 1, PhiX: 0, PhiY: 0},
	"circle":    {Fx: 1, Fy: 1, PhiX: math.Pi / 2, PhiY: 0},
	"ellipse":   {Fx: 1, Fy: 1, PhiX: math.Pi / 4, PhiY: 0},
	"figure8":   {Fx: 1, Fy: 2, PhiX: 0, PhiY: 0},
	"parabola":  {Fx: 1, Fy: 2, PhiX: math.Pi / 2, PhiY: 0},
	"pretzel":   {Fx: 3, Fy: 2, PhiX: math.Pi / 2, PhiY: 0},
	"fish":      {Fx: 2, Fy: 3, PhiX: 0, PhiY: math.Pi / 4},
	"knot":      {Fx: 3, Fy: 4, PhiX: math.Pi / 2, PhiY: 0},
	"lattice":   {Fx: 5, Fy: 4, PhiX: math.Pi / 2, PhiY: 0},
	"abc-logo":  {Fx: 1, Fy: 3, PhiX: math.Pi / 2, PhiY: 0},
	"whirl":     {Fx: 4.9, Fy: 5, PhiX: 0, PhiY: 0},
	"bow":       {Fx: 2, Fy: 1, PhiX: math.Pi / 2, PhiY: 0},
	"butterfly": {Fx: 3, Fy: 5, PhiX: math.Pi / 2, PhiY: math.Pi / 3},
}

// GetPreset returns the named preset and whether it exists.
func GetPreset(name string) (curve.Params, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
