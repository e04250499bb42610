package render

import "math"

// gridTicks are the data coordinates that get a grid line on each axis.
var gridTicks = []float64{-1, -0.5, 0, 0.5, 1}

// Viewport maps data coordinates onto canvas sub-pixels. Braille dots are
// square on a terminal with 1:2 cells, so a square in dots keeps the 1:1
// aspect the figure asks for.
type Viewport struct {
	OffsetX, OffsetY int
	Width, Height    int
	XMin, XMax       float64
	YMin, YMax       float64
}

// NewViewport fits the figure's axis ranges into a canvas. When the x-axis is
// anchored to y, the largest centered square is used.
func NewViewport(f Figure, c *Canvas) Viewport {
	w, h := c.Dots()
	vp := Viewport{
		Width:  w,
		Height: h,
		XMin:   f.XAxis.Min,
		XMax:   f.XAxis.Max,
		YMin:   f.YAxis.Min,
		YMax:   f.YAxis.Max,
	}
	if f.XAxis.ScaleAnchor == "y" && f.XAxis.ScaleRatio > 0 {
		side := min(w, h)
		vp.Width, vp.Height = side, side
		vp.OffsetX = (w - side) / 2
		vp.OffsetY = (h - side) / 2
	}
	return vp
}

// Project returns the sub-pixel for a data point. The y-axis points up.
func (v Viewport) Project(x, y float64) (int, int) {
	px := (x - v.XMin) / (v.XMax - v.XMin) * float64(v.Width-1)
	py := (v.YMax - y) / (v.YMax - v.YMin) * float64(v.Height-1)
	return v.OffsetX + int(math.Round(px)), v.OffsetY + int(math.Round(py))
}

// Rasterize draws the figure onto a new cols x rows Braille canvas.
func (f Figure) Rasterize(cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	f.Draw(c)
	return c
}

// Draw paints grid and trace onto c, which is cleared first.
func (f Figure) Draw(c *Canvas) {
	c.Clear()
	if c.Width == 0 || c.Height == 0 {
		return
	}
	vp := NewViewport(f, c)

	if f.XAxis.ShowGrid {
		for _, tick := range gridTicks {
			x, _ := vp.Project(tick, 0)
			for y := vp.OffsetY; y < vp.OffsetY+vp.Height; y += 3 {
				c.Set(x, y)
			}
		}
	}
	if f.YAxis.ShowGrid {
		for _, tick := range gridTicks {
			_, y := vp.Project(0, tick)
			for x := vp.OffsetX; x < vp.OffsetX+vp.Width; x += 3 {
				c.Set(x, y)
			}
		}
	}

	n := f.Len()
	if n == 0 {
		return
	}
	px, py := vp.Project(f.Trace.X[0], f.Trace.Y[0])
	c.Set(px, py)
	for i := 1; i < n; i++ {
		x, y := vp.Project(f.Trace.X[i], f.Trace.Y[i])
		if x == px && y == py {
			continue
		}
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}
