package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"
	"time"

	"github.com/san-kum/lissajous/internal/render"
)

var gifPalette = color.Palette{
	color.White,
	color.RGBA{0xeb, 0xf0, 0xf8, 0xff}, // grid
	color.RGBA{0x63, 0x6e, 0xfa, 0xff}, // trace
}

const (
	bgIndex    = 0
	gridIndex  = 1
	traceIndex = 2
)

// FigureFrame rasterizes a figure into a size x size paletted image.
func FigureFrame(fig render.Figure, size int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, size, size), gifPalette)
	for i := range img.Pix {
		img.Pix[i] = bgIndex
	}

	px := func(x float64) int {
		return int(math.Round((x - fig.XAxis.Min) / (fig.XAxis.Max - fig.XAxis.Min) * float64(size-1)))
	}
	py := func(y float64) int {
		return int(math.Round((fig.YAxis.Max - y) / (fig.YAxis.Max - fig.YAxis.Min) * float64(size-1)))
	}

	for _, tick := range []float64{-1, -0.5, 0, 0.5, 1} {
		gx, gy := px(tick), py(tick)
		for i := 0; i < size; i++ {
			if fig.XAxis.ShowGrid {
				img.SetColorIndex(gx, i, gridIndex)
			}
			if fig.YAxis.ShowGrid {
				img.SetColorIndex(i, gy, gridIndex)
			}
		}
	}

	n := fig.Len()
	if n == 0 {
		return img
	}
	lw := max(1, int(math.Round(fig.Trace.LineWidth)))
	x0, y0 := px(fig.Trace.X[0]), py(fig.Trace.Y[0])
	for i := 1; i < n; i++ {
		x1, y1 := px(fig.Trace.X[i]), py(fig.Trace.Y[i])
		line(img, x0, y0, x1, y1, lw)
		x0, y0 = x1, y1
	}
	return img
}

// line draws a Bresenham segment with a square pen of width lw.
func line(img *image.Paletted, x0, y0, x1, y1, lw int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		for oy := 0; oy < lw; oy++ {
			for ox := 0; ox < lw; ox++ {
				img.SetColorIndex(x0+ox, y0+oy, traceIndex)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// SweepToGIF encodes one frame per figure, looping forever. The frame delay
// is rounded to the GIF's 10ms resolution.
func SweepToGIF(w io.Writer, frames []render.Figure, size int, delay time.Duration) error {
	if len(frames) == 0 {
		return errors.New("export: no frames")
	}
	cs := max(1, int(delay/(10*time.Millisecond)))
	anim := gif.GIF{LoopCount: 0}
	for _, fig := range frames {
		anim.Image = append(anim.Image, FigureFrame(fig, size))
		anim.Delay = append(anim.Delay, cs)
	}
	return gif.EncodeAll(w, &anim)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
