package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are derived from the active theme on every frame.
type styles struct {
	header  lipgloss.Style
	title   lipgloss.Style
	plot    lipgloss.Style
	panel   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	active  lipgloss.Style
	running lipgloss.Style
	idle    lipgloss.Style
	muted   lipgloss.Style
	key     lipgloss.Style
	graph   lipgloss.Style
	helpBox lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(t.Muted),
		title:   lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		plot:    lipgloss.NewStyle().Foreground(t.Plot).Padding(0, 1),
		panel:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(0, 2),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(16),
		value:   lipgloss.NewStyle().Foreground(t.Text),
		active:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		running: lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		idle:    lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		key:     lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		graph:   lipgloss.NewStyle().Foreground(t.Secondary),
		helpBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(1, 2),
	}
}

// SliderBar renders the slider position as a fixed-width track.
func SliderBar(v, lo, hi float64, width int) string {
	if width <= 0 {
		return ""
	}
	ratio := 0.0
	if hi > lo {
		ratio = (v - lo) / (hi - lo)
	}
	pos := int(ratio*float64(width-1) + 0.5)
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", width-1-pos)
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}

// Separator is a muted rule with a center mark.
func Separator(width int, st lipgloss.Style) string {
	if width < 8 {
		return st.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return st.Render(strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-1))
}
