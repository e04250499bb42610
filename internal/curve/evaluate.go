package curve

import "math"

// Sweep range for the animated frequency sweep.
const (
	SweepStart = 0.5
	SweepEnd   = 5.0
	SweepSteps = 80
)

// Curve holds the sampled coordinates of one figure.
type Curve struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.X) }

// Evaluate samples x(t)=sin(fx·t+φx), y(t)=sin(fy·t+φy) over grid.
func Evaluate(grid TimeGrid, p Params) (Curve, error) {
	if err := p.Validate(); err != nil {
		return Curve{}, err
	}
	return sample(grid, p.Fx, p.Fy, p.PhiX, p.PhiY), nil
}

// EvaluateSweep is the sweep variant: fx=f and fy=f+1. The sweep value must
// lie in the frequency domain; fy is allowed to exceed MaxFrequency by one.
func EvaluateSweep(grid TimeGrid, f, phix, phiy float64) (Curve, error) {
	if err := checkRange("sweep", f, MinFrequency, MaxFrequency); err != nil {
		return Curve{}, err
	}
	if err := validatePhases(phix, phiy); err != nil {
		return Curve{}, err
	}
	return sample(grid, f, f+1, phix, phiy), nil
}

func sample(grid TimeGrid, fx, fy, phix, phiy float64) Curve {
	c := Curve{
		X: make([]float64, len(grid)),
		Y: make([]float64, len(grid)),
	}
	for i, t := range grid {
		c.X[i] = math.Sin(fx*t + phix)
		c.Y[i] = math.Sin(fy*t + phiy)
	}
	return c
}

// SweepValues returns the SweepSteps frequencies visited by the sweep.
func SweepValues() []float64 {
	return Linspace(SweepStart, SweepEnd, SweepSteps)
}
