// Package curve samples and evaluates Lissajous figures.
//
// A Lissajous figure is the parametric curve
//
//	x(t) = sin(fx·t + φx)
//	y(t) = sin(fy·t + φy)
//
// evaluated over one period t ∈ [0, 2π]. The package provides:
//
//   - [TimeGrid]: the shared, memoized sample grid
//   - [Params]: frequency/phase pair with domain validation
//   - [Evaluate] and [EvaluateSweep]: pure curve evaluation
//   - [Linspace] and [SweepValues]: evenly spaced parameter sequences
package curve
