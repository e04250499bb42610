package render

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/lissajous/internal/curve"
)

func TestRenderFigure(t *testing.T) {
	c, err := curve.Evaluate(curve.MakeTimeGrid(), curve.DefaultParams())
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	fig := Render(c, "demo")

	if fig.Title != "demo" {
		t.Errorf("expected title demo, got %s", fig.Title)
	}
	if fig.Len() != curve.GridSize {
		t.Errorf("expected %d points, got %d", curve.GridSize, fig.Len())
	}
	if fig.Trace.LineWidth != 2 || fig.Trace.Mode != "lines" || fig.Trace.Markers {
		t.Errorf("unexpected trace style: %+v", fig.Trace)
	}
	if fig.XAxis.Min != -1.1 || fig.XAxis.Max != 1.1 || fig.YAxis.Min != -1.1 || fig.YAxis.Max != 1.1 {
		t.Error("expected both axes fixed to [-1.1, 1.1]")
	}
	if fig.XAxis.ScaleAnchor != "y" || fig.XAxis.ScaleRatio != 1 {
		t.Error("expected x-axis locked to y with ratio 1")
	}
	if !fig.XAxis.ShowGrid || !fig.YAxis.ShowGrid {
		t.Error("expected grid on both axes")
	}
	if fig.XAxis.Title != "x(t)" || fig.YAxis.Title != "y(t)" {
		t.Errorf("unexpected axis titles %q %q", fig.XAxis.Title, fig.YAxis.Title)
	}
	if fig.HoverMode {
		t.Error("expected hover disabled")
	}
	if fig.Template != "white" {
		t.Errorf("expected white template, got %s", fig.Template)
	}
}

func TestTitles(t *testing.T) {
	got := StaticTitle(curve.Params{Fx: 1, Fy: 2, PhiX: math.Pi, PhiY: 0.1})
	want := "Lissajous: fx=1.00, fy=2.00, φx=3.14, φy=0.10"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got := SweepTitle(0.5); got != "Lissajous sweep: fx=0.50, fy=1.50" {
		t.Errorf("unexpected sweep title %q", got)
	}
}

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(100, 0)

	if !c.IsSet(0, 0) || !c.IsSet(3, 3) {
		t.Error("expected pixels set")
	}
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected 0x2801, got %#x", c.Grid[0][0])
	}
	c.Unset(0, 0)
	if c.IsSet(0, 0) {
		t.Error("expected pixel cleared")
	}
	c.Clear()
	if strings.TrimRight(c.String(), "\n") != "⠀⠀" {
		t.Errorf("expected blank canvas, got %q", c.String())
	}
}

func TestRasterizeSquareViewport(t *testing.T) {
	fig := Render(curve.Curve{X: []float64{-1, 1}, Y: []float64{-1, 1}}, "diag")
	c := NewCanvas(40, 10)
	vp := NewViewport(fig, c)

	if vp.Width != vp.Height {
		t.Fatalf("expected square viewport, got %dx%d", vp.Width, vp.Height)
	}
	if vp.Width != 40 {
		t.Errorf("expected side 40 dots, got %d", vp.Width)
	}
	if vp.OffsetX != 20 || vp.OffsetY != 0 {
		t.Errorf("expected centered viewport, got offset %d,%d", vp.OffsetX, vp.OffsetY)
	}

	fig.Draw(c)
	x0, y0 := vp.Project(-1, -1)
	x1, y1 := vp.Project(1, 1)
	if !c.IsSet(x0, y0) || !c.IsSet(x1, y1) {
		t.Error("expected trace endpoints drawn")
	}
	if x1 <= x0 || y1 >= y0 {
		t.Error("expected y-axis to point up")
	}
}

func TestRasterizeStaysInsideCanvas(t *testing.T) {
	c, _ := curve.Evaluate(curve.MakeTimeGrid(), curve.Params{Fx: 3, Fy: 2, PhiX: 1})
	canvas := Render(c, "").Rasterize(30, 12)
	if canvas.Width != 30 || canvas.Height != 12 {
		t.Fatalf("unexpected canvas size %dx%d", canvas.Width, canvas.Height)
	}
	lines := strings.Split(strings.TrimRight(canvas.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Errorf("expected 12 rows, got %d", len(lines))
	}
}

func TestRasterizeGridTicks(t *testing.T) {
	fig := Render(curve.Curve{}, "grid")
	c := fig.Rasterize(60, 22)
	vp := NewViewport(fig, c)

	// The top row of the viewport is crossed only by vertical grid lines.
	for _, tick := range []float64{-1, -0.5, 0, 0.5, 1} {
		x, _ := vp.Project(tick, 0)
		if !c.IsSet(x, vp.OffsetY) {
			t.Errorf("expected grid line at x=%v", tick)
		}
		_, y := vp.Project(0, tick)
		if !c.IsSet(vp.OffsetX, y) {
			t.Errorf("expected grid line at y=%v", tick)
		}
	}
	if x, _ := vp.Project(0.25, 0); c.IsSet(x, vp.OffsetY) {
		t.Error("expected no grid line at x=0.25")
	}
}
