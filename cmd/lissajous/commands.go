package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lissajous/internal/animation"
	"github.com/san-kum/lissajous/internal/curve"
	"github.com/san-kum/lissajous/internal/display"
	"github.com/san-kum/lissajous/internal/export"
	"github.com/san-kum/lissajous/internal/render"
	"github.com/san-kum/lissajous/internal/session"
	"github.com/spf13/cobra"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("63"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func plotFigure(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := resolveParams(cmd, cfg)
	if err != nil {
		return err
	}
	c, err := curve.Evaluate(curve.MakeTimeGrid(), p)
	if err != nil {
		return err
	}
	fig := render.Render(c, render.StaticTitle(p))
	fmt.Println(drawFigure(fig))
	fmt.Println(dimStyle.Render("ratio " + p.Ratio()))
	return nil
}

func drawFigure(fig render.Figure) string {
	plot := strings.TrimRight(fig.Rasterize(cols, rows).String(), "\n")
	return titleStyle.Render(fig.Title) + "\n" + frameStyle.Render(plot)
}

// runSweep plays the sweep inline: the dispatch blocks until the sweep is
// exhausted or ctrl+c cancels it, while frames are printed as they land.
func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()
	p, err := resolveParams(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cfg.SessionOptions()
	opts.Logger = log
	sess := session.New(opts)
	sess.SetParams(p)

	printed := make(chan struct{})
	go func() {
		defer close(printed)
		printFrames(os.Stdout, sess.Surface())
	}()

	fmt.Print(hideCursor)
	sess.Animate()
	outcome := sess.Dispatch(ctx)
	sess.Close()
	<-printed
	fmt.Print(showCursor)

	res := sess.LastSweep()
	log.Debug("sweep command done", "outcome", outcome.String())
	fmt.Printf("\n%s\n", dimStyle.Render(fmt.Sprintf("sweep %s after %d frames", res.Reason, res.Frames)))
	return nil
}

func printFrames(w io.Writer, s *display.Surface) {
	for range s.Updates() {
		fig, ok := s.Current()
		if !ok {
			continue
		}
		fmt.Fprint(w, clearScreen+drawFigure(fig)+"\n")
	}
}

func plotWave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := resolveParams(cmd, cfg)
	if err != nil {
		return err
	}
	c, err := curve.Evaluate(curve.MakeTimeGrid(), p)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(render.StaticTitle(p)))
	for _, series := range []struct {
		name string
		data []float64
	}{{"x(t)", c.X}, {"y(t)", c.Y}} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.LowerBound(-1),
			asciigraph.UpperBound(1),
			asciigraph.Caption(series.name+", t ∈ [0, 2π]"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportFigure(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := resolveParams(cmd, cfg)
	if err != nil {
		return err
	}
	if size <= 0 {
		return fmt.Errorf("size must be positive, got %d", size)
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	grid := curve.MakeTimeGrid()
	if args[0] == "gif" {
		frames, err := animation.Frames(grid, cfg.SweepSpec(), p.PhiX, p.PhiY)
		if err != nil {
			return err
		}
		return export.SweepToGIF(w, frames, size, cfg.Sweep.Interval)
	}

	c, err := curve.Evaluate(grid, p)
	if err != nil {
		return err
	}
	fig := render.Render(c, render.StaticTitle(p))

	switch args[0] {
	case "svg":
		_, err = io.WriteString(w, export.FigureToSVG(fig, size))
	case "csv":
		err = export.WriteCSV(w, grid, fig)
	case "json":
		err = export.WriteJSON(w, grid, fig, p)
	default:
		err = fmt.Errorf("unknown format: %s (want svg, gif, csv or json)", args[0])
	}
	return err
}
