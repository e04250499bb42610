// Package viz is the terminal front end of the Lissajous explorer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: slider panel, animate/stop buttons and the Braille plot
//   - [Waveform]: asciigraph view of x(t) and y(t)
//   - Theme selection with 5 built-in color schemes
//
// Every interaction runs one session dispatch as a Bubble Tea command, so a
// running sweep never blocks key handling. Frames reach the view through the
// session's display surface.
//
// # Key Bindings
//
//	j/k - Select slider
//	h/l - Move slider by one step (H/L by ten)
//	a   - Animate frequency sweep
//	s   - Stop
//	p   - Next preset
//	t   - Cycle color themes
//	e   - Save current figure as SVG
//	?   - Show help overlay
package viz
