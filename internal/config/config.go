package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/lissajous/internal/animation"
	"github.com/san-kum/lissajous/internal/curve"
	"github.com/san-kum/lissajous/internal/session"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInterval = 60 * time.Millisecond
	DefaultTheme    = "minimal"
	DefaultWidth    = 60
	DefaultHeight   = 22
	DefaultLogLevel = "info"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Sweep   SweepConfig     `yaml:"sweep"`
	Sliders session.Sliders `yaml:"sliders"`
	Initial *curve.Params   `yaml:"initial,omitempty"`
	View    ViewConfig      `yaml:"view"`
	Log     LogConfig       `yaml:"log"`
}

type SweepConfig struct {
	Start         float64       `yaml:"start"`
	End           float64       `yaml:"end"`
	Steps         int           `yaml:"steps"`
	Interval      time.Duration `yaml:"interval"`
	ClearOnFinish bool          `yaml:"clear_on_finish"`
}

type ViewConfig struct {
	Theme  string `yaml:"theme"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Sweep: SweepConfig{
			Start:    curve.SweepStart,
			End:      curve.SweepEnd,
			Steps:    curve.SweepSteps,
			Interval: DefaultInterval,
		},
		Sliders: session.DefaultSliders(),
		View: ViewConfig{
			Theme:  DefaultTheme,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	s := c.Sweep
	if s.Steps < 2 {
		return fmt.Errorf("%w: sweep.steps=%d, need at least 2", ErrInvalidConfig, s.Steps)
	}
	if s.Start < curve.MinFrequency || s.End > curve.MaxFrequency || s.Start >= s.End {
		return fmt.Errorf("%w: sweep range [%g, %g] must increase within [%g, %g]",
			ErrInvalidConfig, s.Start, s.End, curve.MinFrequency, curve.MaxFrequency)
	}
	if s.Interval < 0 {
		return fmt.Errorf("%w: sweep.interval=%s is negative", ErrInvalidConfig, s.Interval)
	}

	freqLo, freqHi := curve.MinFrequency, curve.MaxFrequency
	phaseLo, phaseHi := curve.MinPhase, curve.MaxPhase
	checks := []struct {
		name   string
		s      session.Slider
		lo, hi float64
	}{
		{"fx", c.Sliders.Fx, freqLo, freqHi},
		{"fy", c.Sliders.Fy, freqLo, freqHi},
		{"phix", c.Sliders.PhiX, phaseLo, phaseHi},
		{"phiy", c.Sliders.PhiY, phaseLo, phaseHi},
	}
	for _, ck := range checks {
		sl := ck.s
		if sl.Min < ck.lo || sl.Max > ck.hi || sl.Min >= sl.Max {
			return fmt.Errorf("%w: slider %s range [%g, %g] outside [%g, %g]", ErrInvalidConfig, ck.name, sl.Min, sl.Max, ck.lo, ck.hi)
		}
		if sl.Default < sl.Min || sl.Default > sl.Max {
			return fmt.Errorf("%w: slider %s default %g outside its range", ErrInvalidConfig, ck.name, sl.Default)
		}
		if sl.Step <= 0 {
			return fmt.Errorf("%w: slider %s step must be positive", ErrInvalidConfig, ck.name)
		}
	}
	if c.Initial != nil {
		if err := c.Initial.Validate(); err != nil {
			return fmt.Errorf("%w: initial: %w", ErrInvalidConfig, err)
		}
	}
	if c.View.Width < 10 || c.View.Height < 5 {
		return fmt.Errorf("%w: view %dx%d too small", ErrInvalidConfig, c.View.Width, c.View.Height)
	}
	return nil
}

// SweepSpec converts the sweep section for the animation controller.
func (c *Config) SweepSpec() animation.Sweep {
	return animation.Sweep{Start: c.Sweep.Start, End: c.Sweep.End, Steps: c.Sweep.Steps}
}

// SessionOptions builds session options from the config.
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Sliders:       c.Sliders,
		Sweep:         c.SweepSpec(),
		Interval:      c.Sweep.Interval,
		ClearOnFinish: c.Sweep.ClearOnFinish,
	}
}

// InitialParams returns the configured start position, or the slider
// defaults when none is set.
func (c *Config) InitialParams() curve.Params {
	if c.Initial != nil {
		return *c.Initial
	}
	return c.Sliders.Defaults()
}
