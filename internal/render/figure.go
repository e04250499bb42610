// Package render turns sampled curves into figure descriptors and rasterizes
// them onto a Braille terminal canvas.
package render

import (
	"fmt"

	"github.com/san-kum/lissajous/internal/curve"
)

// AxisLimit bounds both axes regardless of the data extent.
const AxisLimit = 1.1

// Axis describes one plot axis.
type Axis struct {
	Title    string
	Min, Max float64
	ShowGrid bool
	// ScaleAnchor names the axis whose scale this one is locked to.
	ScaleAnchor string
	ScaleRatio  float64
}

// Trace is a single line series.
type Trace struct {
	X, Y      []float64
	Mode      string
	LineWidth float64
	Markers   bool
}

// Figure is a transient render descriptor. It is produced by Render, handed
// to a display surface and then dropped.
type Figure struct {
	Title     string
	Template  string
	Trace     Trace
	XAxis     Axis
	YAxis     Axis
	HoverMode bool
}

// Render builds the figure for one curve.
func Render(c curve.Curve, title string) Figure {
	return Figure{
		Title:    title,
		Template: "white",
		Trace: Trace{
			X:         c.X,
			Y:         c.Y,
			Mode:      "lines",
			LineWidth: 2,
		},
		XAxis: Axis{
			Title:       "x(t)",
			Min:         -AxisLimit,
			Max:         AxisLimit,
			ShowGrid:    true,
			ScaleAnchor: "y",
			ScaleRatio:  1,
		},
		YAxis: Axis{
			Title:    "y(t)",
			Min:      -AxisLimit,
			Max:      AxisLimit,
			ShowGrid: true,
		},
	}
}

// Len returns the number of points in the trace.
func (f Figure) Len() int {
	return min(len(f.Trace.X), len(f.Trace.Y))
}

// StaticTitle labels a figure drawn from slider values.
func StaticTitle(p curve.Params) string {
	return fmt.Sprintf("Lissajous: fx=%.2f, fy=%.2f, φx=%.2f, φy=%.2f", p.Fx, p.Fy, p.PhiX, p.PhiY)
}

// SweepTitle labels a sweep frame; fy is locked to f+1.
func SweepTitle(f float64) string {
	return fmt.Sprintf("Lissajous sweep: fx=%.2f, fy=%.2f", f, f+1)
}
