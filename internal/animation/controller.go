// Package animation runs the frequency sweep: a paced, cancellable loop that
// renders one Lissajous frame per sweep value.
package animation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/lissajous/internal/curve"
	"github.com/san-kum/lissajous/internal/display"
	"github.com/san-kum/lissajous/internal/render"
)

// DefaultInterval is the pause between frames.
const DefaultInterval = 60 * time.Millisecond

// State of a controller invocation.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// StopReason explains why Run returned.
type StopReason int

const (
	// Exhausted means every sweep value was rendered.
	Exhausted StopReason = iota
	// Cancelled means the run flag was cleared.
	Cancelled
	// ContextDone means the caller's context ended.
	ContextDone
	// TargetUnavailable means the display surface went away.
	TargetUnavailable
)

func (r StopReason) String() string {
	switch r {
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	case ContextDone:
		return "context done"
	case TargetUnavailable:
		return "target unavailable"
	}
	return "unknown"
}

// Sweep is the sequence of x-frequencies visited by the animation.
type Sweep struct {
	Start float64
	End   float64
	Steps int
}

func DefaultSweep() Sweep {
	return Sweep{Start: curve.SweepStart, End: curve.SweepEnd, Steps: curve.SweepSteps}
}

// Values returns Steps evenly spaced values in [Start, End].
func (s Sweep) Values() []float64 {
	return curve.Linspace(s.Start, s.End, s.Steps)
}

// Result summarizes one Run.
type Result struct {
	Frames int
	Reason StopReason
	// Last is the final sweep value rendered; zero when Frames is 0.
	Last float64
}

// Controller drives the sweep. A Controller is not safe for concurrent Run
// calls; the session guarantees a single active loop.
type Controller struct {
	Grid          curve.TimeGrid
	Surface       *display.Surface
	State         *RunState
	Sweep         Sweep
	Interval      time.Duration
	ClearOnFinish bool
	Logger        *slog.Logger

	phase State
}

// Phase returns the controller state machine position.
func (c *Controller) Phase() State { return c.phase }

// Run renders the sweep until it is exhausted, the run flag is cleared, ctx
// ends or the surface is closed. None of these is an error. Phases are taken
// once at entry and held for the whole sweep.
func (c *Controller) Run(ctx context.Context, phix, phiy float64) Result {
	log := c.logger()
	grid := c.Grid
	if grid == nil {
		grid = curve.MakeTimeGrid()
	}
	values := c.Sweep.Values()

	c.phase = Running
	defer func() { c.phase = Stopped }()

	res := Result{Reason: Exhausted}
	for _, f := range values {
		if !c.State.Animating() {
			res.Reason = Cancelled
			break
		}
		if ctx.Err() != nil {
			res.Reason = ContextDone
			break
		}

		fig, shown, clamped, err := sweepFrame(grid, f, phix, phiy)
		if err != nil {
			log.Error("sweep frame dropped", "value", f, "err", err)
			c.wait(ctx)
			continue
		}
		if clamped {
			log.Warn("sweep frame clamped", "value", f, "shown", shown)
		}

		if err := c.Surface.Show(fig); err != nil {
			if errors.Is(err, display.ErrRenderTargetUnavailable) {
				log.Debug("surface closed, sweep stopped", "frames", res.Frames)
				res.Reason = TargetUnavailable
				return res
			}
			log.Warn("show failed", "err", err)
		}
		res.Frames++
		res.Last = shown

		c.wait(ctx)
	}

	if res.Reason == Exhausted && c.ClearOnFinish {
		c.State.Stop()
	}
	log.Debug("sweep finished", "frames", res.Frames, "reason", res.Reason.String())
	return res
}

// wait pauses for one interval, waking early on Stop or when ctx ends. The
// flag and ctx checks at the top of the next frame decide what happens next.
func (c *Controller) wait(ctx context.Context) {
	if c.Interval <= 0 {
		return
	}
	t := time.NewTimer(c.Interval)
	defer t.Stop()
	select {
	case <-t.C:
	case <-c.State.Done():
	case <-ctx.Done():
	}
}

func (c *Controller) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sweepFrame renders sweep value f. A frequency or phase outside the slider
// domain is clamped first and the title reports the value actually drawn.
func sweepFrame(grid curve.TimeGrid, f, phix, phiy float64) (fig render.Figure, shown float64, clamped bool, err error) {
	p := curve.Params{Fx: f, Fy: curve.MinFrequency, PhiX: phix, PhiY: phiy}
	if p.Validate() != nil {
		p = p.Clamp()
		clamped = true
	}
	cv, err := curve.EvaluateSweep(grid, p.Fx, p.PhiX, p.PhiY)
	if err != nil {
		return render.Figure{}, p.Fx, clamped, err
	}
	return render.Render(cv, render.SweepTitle(p.Fx)), p.Fx, clamped, nil
}

// Frames renders every sweep frame up front, without pacing, for export.
// Out-of-domain values are clamped the same way the live sweep clamps them.
func Frames(grid curve.TimeGrid, sweep Sweep, phix, phiy float64) ([]render.Figure, error) {
	values := sweep.Values()
	figs := make([]render.Figure, 0, len(values))
	for _, f := range values {
		fig, _, _, err := sweepFrame(grid, f, phix, phiy)
		if err != nil {
			return nil, err
		}
		figs = append(figs, fig)
	}
	return figs, nil
}
