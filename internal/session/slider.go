package session

import (
	"math"

	"github.com/san-kum/lissajous/internal/curve"
)

// Slider mirrors one UI slider: a bounded value moving in fixed steps.
type Slider struct {
	Label   string  `yaml:"label"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Default float64 `yaml:"default"`
	Step    float64 `yaml:"step"`
}

// Clamp bounds v to [Min, Max].
func (s Slider) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Default
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Snap rounds v to the nearest step from Min, then clamps. The top of the
// range stays reachable even when it is not a whole number of steps.
func (s Slider) Snap(v float64) float64 {
	v = s.Clamp(v)
	if s.Step <= 0 || v == s.Max {
		return v
	}
	n := math.Round((v - s.Min) / s.Step)
	// trim float noise such as 0.30000000000000004
	snapped := math.Round((s.Min+n*s.Step)*1e9) / 1e9
	return s.Clamp(snapped)
}

// Nudge moves v by n steps.
func (s Slider) Nudge(v float64, n int) float64 {
	return s.Snap(v + float64(n)*s.Step)
}

// Sliders are the four curve controls.
type Sliders struct {
	Fx   Slider `yaml:"fx"`
	Fy   Slider `yaml:"fy"`
	PhiX Slider `yaml:"phix"`
	PhiY Slider `yaml:"phiy"`
}

func DefaultSliders() Sliders {
	return Sliders{
		Fx:   Slider{Label: "Frequency fx", Min: curve.MinFrequency, Max: curve.MaxFrequency, Default: curve.DefaultFx, Step: curve.ParamStep},
		Fy:   Slider{Label: "Frequency fy", Min: curve.MinFrequency, Max: curve.MaxFrequency, Default: curve.DefaultFy, Step: curve.ParamStep},
		PhiX: Slider{Label: "Phase φx (rad)", Min: curve.MinPhase, Max: curve.MaxPhase, Default: 0, Step: curve.ParamStep},
		PhiY: Slider{Label: "Phase φy (rad)", Min: curve.MinPhase, Max: curve.MaxPhase, Default: 0, Step: curve.ParamStep},
	}
}

// All returns the sliders in display order.
func (s Sliders) All() []Slider {
	return []Slider{s.Fx, s.Fy, s.PhiX, s.PhiY}
}

// Defaults returns the parameters at every slider's default position.
func (s Sliders) Defaults() curve.Params {
	return curve.Params{Fx: s.Fx.Default, Fy: s.Fy.Default, PhiX: s.PhiX.Default, PhiY: s.PhiY.Default}
}

func (s Sliders) clampParams(p curve.Params) curve.Params {
	return curve.Params{
		Fx:   s.Fx.Clamp(p.Fx),
		Fy:   s.Fy.Clamp(p.Fy),
		PhiX: s.PhiX.Clamp(p.PhiX),
		PhiY: s.PhiY.Clamp(p.PhiY),
	}
}

// Get reads slider i of p in display order.
func Get(p curve.Params, i int) float64 {
	switch i {
	case 0:
		return p.Fx
	case 1:
		return p.Fy
	case 2:
		return p.PhiX
	case 3:
		return p.PhiY
	}
	return math.NaN()
}

// Set writes slider i of p in display order.
func Set(p curve.Params, i int, v float64) curve.Params {
	switch i {
	case 0:
		p.Fx = v
	case 1:
		p.Fy = v
	case 2:
		p.PhiX = v
	case 3:
		p.PhiY = v
	}
	return p
}
