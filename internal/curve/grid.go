package curve

import (
	"math"
	"sync"
)

// GridSize is the number of samples in the time grid.
const GridSize = 2000

// TimeGrid is an ordered sequence of sample times over one period.
// Callers must not modify it; the backing array is shared.
type TimeGrid []float64

var sharedGrid = sync.OnceValue(func() TimeGrid {
	return TimeGrid(Linspace(0, 2*math.Pi, GridSize))
})

// MakeTimeGrid returns the process-wide grid of GridSize points spanning
// [0, 2π]. It is computed once; every call returns the same slice.
func MakeTimeGrid() TimeGrid {
	return sharedGrid()
}

// Nearest returns the index of the sample closest to t.
func (g TimeGrid) Nearest(t float64) int {
	if len(g) == 0 {
		return -1
	}
	best, bestDist := 0, math.Abs(g[0]-t)
	for i, v := range g {
		if d := math.Abs(v - t); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Linspace returns n evenly spaced values over [lo, hi], endpoints included.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	// pin the endpoint so it does not drift
	out[n-1] = hi
	return out
}
