// Package export writes figures out of the terminal: SVG for a single
// figure, animated GIF for a sweep, and CSV/JSON for the raw samples.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/lissajous/internal/render"
)

// svg layout, in pixels
const (
	svgMargin = 56
	svgTitleH = 36
)

// FigureToSVG draws the figure into a square plot area of size pixels,
// honoring its fixed axis ranges.
func FigureToSVG(fig render.Figure, size int) string {
	if size <= 0 {
		return ""
	}
	width := size + 2*svgMargin
	height := size + 2*svgMargin + svgTitleH
	x0, y0 := float64(svgMargin), float64(svgMargin+svgTitleH)
	plot := float64(size)

	px := func(x float64) float64 {
		return x0 + (x-fig.XAxis.Min)/(fig.XAxis.Max-fig.XAxis.Min)*plot
	}
	py := func(y float64) float64 {
		return y0 + (fig.YAxis.Max-y)/(fig.YAxis.Max-fig.YAxis.Min)*plot
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%d" y="%d" font-size="18" fill="#2a3f5f">%s</text>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#ffffff" stroke="#c8d4e3"/>
`, width, height, width, height, svgMargin, svgMargin, html.EscapeString(fig.Title), x0, y0, plot, plot))

	// Grid lines at every half unit
	if fig.XAxis.ShowGrid || fig.YAxis.ShowGrid {
		sb.WriteString(`<g stroke="#ebf0f8" stroke-width="1">` + "\n")
		for _, tick := range []float64{-1, -0.5, 0, 0.5, 1} {
			if fig.XAxis.ShowGrid {
				sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", px(tick), y0, px(tick), y0+plot))
			}
			if fig.YAxis.ShowGrid {
				sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x0, py(tick), x0+plot, py(tick)))
			}
		}
		sb.WriteString("</g>\n")
	}

	// Tick labels
	sb.WriteString(`<g font-size="12" fill="#506784">` + "\n")
	for _, tick := range []float64{-1, 0, 1} {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%g</text>`+"\n", px(tick), y0+plot+18, tick))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end">%g</text>`+"\n", x0-8, py(tick)+4, tick))
	}
	sb.WriteString("</g>\n")

	// Axis titles
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="14" text-anchor="middle" fill="#2a3f5f">%s</text>`+"\n",
		x0+plot/2, y0+plot+40, html.EscapeString(fig.XAxis.Title)))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="14" text-anchor="middle" fill="#2a3f5f" transform="rotate(-90 %.1f %.1f)">%s</text>`+"\n",
		x0-36, y0+plot/2, x0-36, y0+plot/2, html.EscapeString(fig.YAxis.Title)))

	n := fig.Len()
	if n >= 2 {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#636efa" stroke-width="%g" stroke-linejoin="round" d="M`, fig.Trace.LineWidth))
		for i := 0; i < n; i++ {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(fig.Trace.X[i]), py(fig.Trace.Y[i])))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px(fig.Trace.X[i]), py(fig.Trace.Y[i])))
			}
		}
		sb.WriteString(`"/>` + "\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *render.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	dotRadius := scale * 0.4
	w, h := canvas.Dots()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
