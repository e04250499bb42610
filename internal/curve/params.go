package curve

import (
	"fmt"
	"math"
)

// Slider domains for the curve parameters.
const (
	MinFrequency = 0.1
	MaxFrequency = 5.0
	MinPhase     = 0.0
	MaxPhase     = 2 * math.Pi
	ParamStep    = 0.1

	DefaultFx = 1.0
	DefaultFy = 2.0
)

// Params selects one Lissajous figure.
type Params struct {
	Fx   float64 `yaml:"fx"`
	Fy   float64 `yaml:"fy"`
	PhiX float64 `yaml:"phix"`
	PhiY float64 `yaml:"phiy"`
}

// DefaultParams returns the initial slider positions.
func DefaultParams() Params {
	return Params{Fx: DefaultFx, Fy: DefaultFy}
}

// Validate reports the first parameter outside its domain.
func (p Params) Validate() error {
	if err := checkRange("fx", p.Fx, MinFrequency, MaxFrequency); err != nil {
		return err
	}
	if err := checkRange("fy", p.Fy, MinFrequency, MaxFrequency); err != nil {
		return err
	}
	return validatePhases(p.PhiX, p.PhiY)
}

// Clamp pulls every parameter into its domain. NaN maps to the lower bound.
func (p Params) Clamp() Params {
	return Params{
		Fx:   clamp(p.Fx, MinFrequency, MaxFrequency),
		Fy:   clamp(p.Fy, MinFrequency, MaxFrequency),
		PhiX: clamp(p.PhiX, MinPhase, MaxPhase),
		PhiY: clamp(p.PhiY, MinPhase, MaxPhase),
	}
}

// Ratio returns the reduced fx:fy ratio, e.g. "1:2", using the 0.1 slider
// resolution. Parameters off that resolution yield a decimal ratio.
func (p Params) Ratio() string {
	a := math.Round(p.Fx / ParamStep)
	b := math.Round(p.Fy / ParamStep)
	if a <= 0 || b <= 0 || math.Abs(a*ParamStep-p.Fx) > 1e-9 || math.Abs(b*ParamStep-p.Fy) > 1e-9 {
		return fmt.Sprintf("%.2f:%.2f", p.Fx, p.Fy)
	}
	g := gcd(int(a), int(b))
	return fmt.Sprintf("%d:%d", int(a)/g, int(b)/g)
}

func validatePhases(phix, phiy float64) error {
	if err := checkRange("phix", phix, MinPhase, MaxPhase); err != nil {
		return err
	}
	return checkRange("phiy", phiy, MinPhase, MaxPhase)
}

// tolerance absorbs slider accumulation error at the range edges
const tolerance = 1e-9

func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < lo-tolerance || v > hi+tolerance {
		return &ParamError{Name: name, Value: v, Min: lo, Max: hi}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
