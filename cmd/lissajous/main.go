package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lissajous/internal/config"
	"github.com/san-kum/lissajous/internal/curve"
	"github.com/san-kum/lissajous/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logFile    string
	logLevel   string
	preset     string
	fx         float64
	fy         float64
	phix       float64
	phiy       float64
	// Plot size in terminal cells
	cols int
	rows int
	// Export
	outPath string
	size    int
)

// main is the entry point for the lissajous CLI; with no subcommand it opens
// the interactive explorer.
func main() {
	rootCmd := &cobra.Command{
		Use:   "lissajous",
		Short: "Lissajous figure explorer",
		RunE:  runExplorer,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	addParamFlags(rootCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "draw one figure to the terminal",
		RunE:  plotFigure,
	}
	addParamFlags(plotCmd)
	addSizeFlags(plotCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "play the frequency sweep in the terminal (ctrl+c stops)",
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	addSizeFlags(sweepCmd)

	waveCmd := &cobra.Command{
		Use:   "wave",
		Short: "plot x(t) and y(t) against t",
		RunE:  plotWave,
	}
	addParamFlags(waveCmd)

	exportCmd := &cobra.Command{
		Use:       "export [svg|gif|csv|json]",
		Short:     "export the figure (gif exports the sweep)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"svg", "gif", "csv", "json"},
		RunE:      exportFigure,
	}
	addParamFlags(exportCmd)
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&size, "size", 480, "image size in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Printf("  %-10s fx=%.2f fy=%.2f φx=%.2f φy=%.2f  (%s)\n", name, p.Fx, p.Fy, p.PhiX, p.PhiY, p.Ratio())
			}
			return nil
		},
	}

	rootCmd.AddCommand(plotCmd, sweepCmd, waveCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&fx, "fx", curve.DefaultFx, "x frequency")
	cmd.Flags().Float64Var(&fy, "fy", curve.DefaultFy, "y frequency")
	cmd.Flags().Float64Var(&phix, "phix", 0, "x phase (rad)")
	cmd.Flags().Float64Var(&phiy, "phiy", 0, "y phase (rad)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset figure")
}

func addSizeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&cols, "cols", config.DefaultWidth, "plot width in cells")
	cmd.Flags().IntVar(&rows, "rows", config.DefaultHeight, "plot height in cells")
}

func runExplorer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, true)
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

	log.Info("explorer started", "config", configFile)
	return viz.Run(ctx, viz.Options{Config: cfg, Initial: &p, Logger: log}, configFile)
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveParams applies preset, then config, then explicitly set flags.
func resolveParams(cmd *cobra.Command, cfg *config.Config) (curve.Params, error) {
	p := cfg.InitialParams()
	if preset != "" {
		pp, ok := config.GetPreset(preset)
		if !ok {
			return p, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		p = pp
	}
	flags := cmd.Flags()
	if flags.Changed("fx") {
		p.Fx = fx
	}
	if flags.Changed("fy") {
		p.Fy = fy
	}
	if flags.Changed("phix") {
		p.PhiX = phix
	}
	if flags.Changed("phiy") {
		p.PhiY = phiy
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// newLogger builds the slog logger. The explorer owns the terminal, so it
// only logs when a file is given; the other commands log to stderr.
func newLogger(cfg *config.Config, tui bool) (*slog.Logger, func(), error) {
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("bad log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	path := cfg.Log.File
	if logFile != "" {
		path = logFile
	}
	switch {
	case path != "":
		f, err := tea.LogToFile(path, "lissajous")
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
	case tui:
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
}
