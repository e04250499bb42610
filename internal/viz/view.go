package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lissajous/internal/session"
)

const (
	panelWidth = 44
	barWidth   = 14
	waveWidth  = 36
)

func (m Model) View() string {
	st := newStyles(m.theme)
	if m.help {
		return st.helpBox.Render(helpText)
	}

	plot := "\n(no figure yet)\n"
	title := "Lissajous Figure Explorer"
	if m.hasFig {
		plot = m.fig.Rasterize(m.cols, m.rows).String()
		title = m.fig.Title
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(title),
		st.plot.Render(strings.TrimRight(plot, "\n")),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		st.header.Render("LISSAJOUS FIGURE EXPLORER"),
		lipgloss.JoinHorizontal(lipgloss.Top, left, st.panel.Width(panelWidth).Render(m.panel(st))),
	)
}

func (m Model) panel(st styles) string {
	var b strings.Builder
	p := m.sess.Params()

	for i, sl := range m.sess.Sliders().All() {
		v := session.Get(p, i)
		line := fmt.Sprintf("%s %5.2f", SliderBar(v, sl.Min, sl.Max, barWidth), v)
		if i == m.cursor {
			b.WriteString(st.active.Render("▸ "+fmt.Sprintf("%-15s", sl.Label)) + " " + st.active.Render(line) + "\n")
		} else {
			b.WriteString("  " + st.label.Render(sl.Label) + st.value.Render(line) + "\n")
		}
	}
	b.WriteString("\n")

	switch {
	case m.sess.Looping():
		b.WriteString(st.running.Render(AnimatedSpinner(m.frames)+" SWEEPING") + "\n")
	case m.sess.Animating():
		b.WriteString(st.running.Render("● ANIMATE SET") + "\n")
	default:
		b.WriteString(st.idle.Render("■ STATIC") + "\n")
	}
	b.WriteString(st.label.Render("ratio fx:fy") + st.value.Render(p.Ratio()) + "\n")
	if m.preset >= 0 && m.preset < len(m.presets) {
		b.WriteString(st.label.Render("preset") + st.value.Render(m.presets[m.preset]) + "\n")
	}
	if m.status != "" {
		b.WriteString(st.muted.Render(m.status) + "\n")
	}

	if m.hasFig && m.fig.Len() > 1 {
		b.WriteString("\n" + st.graph.Render(Waveform(m.fig.Trace.X, m.fig.Trace.Y, waveWidth, 5)) + "\n")
	}

	b.WriteString("\n" + Separator(panelWidth-4, st.muted) + "\n")
	keys := []struct{ k, d string }{
		{"j/k", "slider"}, {"h/l", "adjust"}, {"a", "animate"}, {"s", "stop"},
		{"p", "preset"}, {"e", "svg"}, {"?", "help"}, {"q", "quit"},
	}
	for i, kd := range keys {
		b.WriteString(st.key.Render(kd.k) + st.muted.Render(" "+kd.d+"  "))
		if i%4 == 3 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Waveform plots x(t) and y(t) together, downsampled to width points.
func Waveform(x, y []float64, width, height int) string {
	n := min(len(x), len(y))
	if n < 2 || width < 2 {
		return ""
	}
	xs := downsample(x[:n], width)
	ys := downsample(y[:n], width)
	return asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(height),
		asciigraph.LowerBound(-1),
		asciigraph.UpperBound(1),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption("x(t) cyan, y(t) magenta"),
	)
}

func downsample(v []float64, n int) []float64 {
	if len(v) <= n {
		return v
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v[i*(len(v)-1)/(n-1)]
	}
	return out
}

const helpText = `KEYBOARD SHORTCUTS

  j/k, ↑/↓   select slider
  h/l, ←/→   move slider one step
  H/L        move slider ten steps
  a          animate frequency sweep
  s, space   stop the sweep
  p          next preset
  r          reset sliders
  t          cycle themes
  e          save the figure as SVG
  ?          toggle this help
  q          quit

press any key to close`
