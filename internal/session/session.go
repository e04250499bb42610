// Package session holds the per-viewer interaction state and the dispatch
// policy that picks between a static render and the animated sweep.
package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/lissajous/internal/animation"
	"github.com/san-kum/lissajous/internal/curve"
	"github.com/san-kum/lissajous/internal/display"
	"github.com/san-kum/lissajous/internal/render"
)

// Outcome reports which path a Dispatch took.
type Outcome int

const (
	// OutcomeStatic means one figure was drawn from the slider values.
	OutcomeStatic Outcome = iota
	// OutcomeAnimated means the sweep ran until it finished or was stopped.
	OutcomeAnimated
	// OutcomeBusy means a sweep is already running for this session.
	OutcomeBusy
	// OutcomeClosed means the display surface is gone.
	OutcomeClosed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStatic:
		return "static"
	case OutcomeAnimated:
		return "animated"
	case OutcomeBusy:
		return "busy"
	case OutcomeClosed:
		return "closed"
	}
	return "unknown"
}

// Options configure a Session. Zero values fall back to defaults.
type Options struct {
	Sliders       Sliders
	Sweep         animation.Sweep
	Interval      time.Duration
	ClearOnFinish bool
	Surface       *display.Surface
	Logger        *slog.Logger
}

// Session is one viewer's state: the run flag, the slider positions and the
// surface figures are pushed to.
type Session struct {
	opts    Options
	run     *animation.RunState
	surface *display.Surface
	grid    curve.TimeGrid
	log     *slog.Logger

	mu     sync.Mutex
	params curve.Params
	last   animation.Result

	// render serializes every write path to the surface.
	render  sync.Mutex
	looping atomic.Bool
}

func New(opts Options) *Session {
	if opts.Sliders == (Sliders{}) {
		opts.Sliders = DefaultSliders()
	}
	if opts.Sweep.Steps == 0 {
		opts.Sweep = animation.DefaultSweep()
	}
	if opts.Surface == nil {
		opts.Surface = display.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		opts:    opts,
		run:     animation.NewRunState(),
		surface: opts.Surface,
		grid:    curve.MakeTimeGrid(),
		log:     opts.Logger,
		params:  opts.Sliders.Defaults(),
	}
}

func (s *Session) Surface() *display.Surface { return s.surface }

func (s *Session) Sliders() Sliders {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Sliders
}

// Animate is the "Animate frequency sweep" button.
func (s *Session) Animate() { s.run.Start() }

// Stop is the "Stop" button.
func (s *Session) Stop() { s.run.Stop() }

// Animating reports the run flag.
func (s *Session) Animating() bool { return s.run.Animating() }

// Looping reports whether a sweep is rendering right now.
func (s *Session) Looping() bool { return s.looping.Load() }

// Params returns the current slider values.
func (s *Session) Params() curve.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// SetParams moves all four sliders, clamping each to its range.
func (s *Session) SetParams(p curve.Params) {
	s.mu.Lock()
	s.params = s.opts.Sliders.clampParams(p)
	s.mu.Unlock()
}

// Nudge moves slider i (display order) by n steps.
func (s *Session) Nudge(i, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.opts.Sliders.All()
	if i < 0 || i >= len(all) {
		return
	}
	s.params = Set(s.params, i, all[i].Nudge(Get(s.params, i), n))
}

// Reset returns every slider to its default.
func (s *Session) Reset() {
	s.mu.Lock()
	s.params = s.opts.Sliders.Defaults()
	s.mu.Unlock()
}

// Reconfigure swaps the slider ranges and sweep settings, clamping the
// current slider values into the new ranges. It waits for a running sweep to
// exit, so the next sweep is the first to see the new settings. The surface
// and logger are kept.
func (s *Session) Reconfigure(opts Options) {
	s.render.Lock()
	defer s.render.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if opts.Sliders != (Sliders{}) {
		s.opts.Sliders = opts.Sliders
	}
	if opts.Sweep.Steps != 0 {
		s.opts.Sweep = opts.Sweep
	}
	s.opts.Interval = opts.Interval
	s.opts.ClearOnFinish = opts.ClearOnFinish
	s.params = s.opts.Sliders.clampParams(s.params)
}

// LastSweep returns the result of the most recent sweep.
func (s *Session) LastSweep() animation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Dispatch runs one interaction cycle. With the run flag set it runs the
// sweep to completion or cancellation; otherwise it renders the sliders once.
// A dispatch arriving while the sweep is live returns OutcomeBusy; one
// arriving after Stop waits for the loop to exit so a stale frame cannot
// overwrite the static figure.
func (s *Session) Dispatch(ctx context.Context) Outcome {
	if s.run.Animating() {
		if !s.looping.CompareAndSwap(false, true) {
			return OutcomeBusy
		}
		return s.animate(ctx)
	}

	s.render.Lock()
	defer s.render.Unlock()
	return s.static()
}

func (s *Session) animate(ctx context.Context) Outcome {
	s.render.Lock()
	defer s.render.Unlock()
	defer s.looping.Store(false)

	p := s.Params()
	ctrl := &animation.Controller{
		Grid:          s.grid,
		Surface:       s.surface,
		State:         s.run,
		Sweep:         s.opts.Sweep,
		Interval:      s.opts.Interval,
		ClearOnFinish: s.opts.ClearOnFinish,
		Logger:        s.log,
	}
	s.log.Debug("sweep started", "phix", p.PhiX, "phiy", p.PhiY)
	res := ctrl.Run(ctx, p.PhiX, p.PhiY)

	s.mu.Lock()
	s.last = res
	s.mu.Unlock()

	if res.Reason == animation.TargetUnavailable {
		return OutcomeClosed
	}
	return OutcomeAnimated
}

func (s *Session) static() Outcome {
	p := s.Params()
	c, err := curve.Evaluate(s.grid, p)
	if err != nil {
		s.log.Warn("slider values clamped", "err", err)
		p = p.Clamp()
		c, _ = curve.Evaluate(s.grid, p)
	}
	if err := s.surface.Show(render.Render(c, render.StaticTitle(p))); err != nil {
		s.log.Debug("static render dropped", "err", err)
		return OutcomeClosed
	}
	return OutcomeStatic
}

// Close ends the session: the sweep is stopped and the surface torn down.
func (s *Session) Close() {
	s.run.Stop()
	s.surface.Close()
}
