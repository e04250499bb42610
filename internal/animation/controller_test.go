package animation_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lissajous/internal/animation"
	"github.com/san-kum/lissajous/internal/curve"
	"github.com/san-kum/lissajous/internal/display"
)

var _ = Describe("RunState", func() {
	It("starts idle and toggles idempotently", func() {
		rs := animation.NewRunState()
		Expect(rs.Animating()).To(BeFalse())

		rs.Start()
		rs.Start()
		Expect(rs.Animating()).To(BeTrue())

		done := rs.Done()
		rs.Stop()
		rs.Stop()
		Expect(rs.Animating()).To(BeFalse())
		Expect(done).To(BeClosed())
	})

	It("hands out a fresh wake channel after restarting", func() {
		rs := animation.NewRunState()
		rs.Start()
		rs.Stop()
		rs.Start()
		Expect(rs.Done()).NotTo(BeClosed())
	})
})

var _ = Describe("Sweep", func() {
	It("visits 80 evenly spaced values from 0.5 to 5.0", func() {
		vals := animation.DefaultSweep().Values()
		Expect(vals).To(HaveLen(80))
		Expect(vals[0]).To(Equal(0.5))
		Expect(vals[79]).To(Equal(5.0))
		for i := 1; i < len(vals); i++ {
			Expect(vals[i]).To(BeNumerically(">", vals[i-1]))
			Expect(vals[i] - vals[i-1]).To(BeNumerically("~", 4.5/79, 1e-9))
		}
	})
})

var _ = Describe("Controller", func() {
	var (
		state   *animation.RunState
		surface *display.Surface
		ctrl    *animation.Controller
	)

	BeforeEach(func() {
		state = animation.NewRunState()
		surface = display.New()
		ctrl = &animation.Controller{
			Grid:    curve.MakeTimeGrid(),
			Surface: surface,
			State:   state,
			Sweep:   animation.DefaultSweep(),
		}
	})

	It("renders nothing when the flag is not set", func() {
		res := ctrl.Run(context.Background(), 0, 0)
		Expect(res.Frames).To(Equal(0))
		Expect(res.Reason).To(Equal(animation.Cancelled))
		Expect(surface.Version()).To(BeZero())
		Expect(ctrl.Phase()).To(Equal(animation.Stopped))
	})

	It("runs to exhaustion and leaves the flag set", func() {
		state.Start()
		res := ctrl.Run(context.Background(), 0, 0)

		Expect(res.Reason).To(Equal(animation.Exhausted))
		Expect(res.Frames).To(Equal(80))
		Expect(res.Last).To(Equal(5.0))
		Expect(surface.Version()).To(Equal(uint64(80)))
		Expect(state.Animating()).To(BeTrue())

		fig, ok := surface.Current()
		Expect(ok).To(BeTrue())
		Expect(fig.Title).To(Equal("Lissajous sweep: fx=5.00, fy=6.00"))
		Expect(fig.Len()).To(Equal(curve.GridSize))
	})

	It("clears the flag on exhaustion when configured to", func() {
		ctrl.ClearOnFinish = true
		state.Start()
		res := ctrl.Run(context.Background(), 0, 0)
		Expect(res.Reason).To(Equal(animation.Exhausted))
		Expect(state.Animating()).To(BeFalse())
	})

	It("renders at most one frame when stopped right after starting", func() {
		ctrl.Interval = time.Hour
		state.Start()

		go func() {
			defer GinkgoRecover()
			<-surface.Updates()
			state.Stop()
		}()

		res := ctrl.Run(context.Background(), 0, 0)
		Expect(res.Reason).To(Equal(animation.Cancelled))
		Expect(res.Frames).To(Equal(1))

		fig, ok := surface.Current()
		Expect(ok).To(BeTrue())
		Expect(fig.Title).To(Equal("Lissajous sweep: fx=0.50, fy=1.50"))
	})

	It("stops within one frame of a mid-sweep stop", func() {
		ctrl.Interval = 2 * time.Millisecond
		state.Start()

		results := make(chan animation.Result, 1)
		go func() {
			results <- ctrl.Run(context.Background(), 0, 0)
		}()

		Eventually(surface.Version).Should(BeNumerically(">=", 5))
		state.Stop()
		stoppedAt := surface.Version()

		var res animation.Result
		Eventually(results).Should(Receive(&res))
		Expect(res.Reason).To(Equal(animation.Cancelled))
		Expect(uint64(res.Frames)).To(BeNumerically("<=", stoppedAt+1))
		Consistently(surface.Version, 20*time.Millisecond).Should(Equal(uint64(res.Frames)))
	})

	It("holds the phases captured at entry for every frame", func() {
		state.Start()
		ctrl.Run(context.Background(), 1.0, 2.0)

		fig, _ := surface.Current()
		Expect(fig.Trace.X[0]).To(BeNumerically("~", 0.8414709848, 1e-9))
		Expect(fig.Trace.Y[0]).To(BeNumerically("~", 0.9092974268, 1e-9))
	})

	It("clamps an out-of-domain sweep value and titles the drawn value", func() {
		ctrl.Sweep = animation.Sweep{Start: 0.05, End: 0.05, Steps: 2}
		state.Start()
		res := ctrl.Run(context.Background(), 0, 0)

		Expect(res.Reason).To(Equal(animation.Exhausted))
		Expect(res.Frames).To(Equal(2))
		Expect(res.Last).To(Equal(curve.MinFrequency))

		fig, ok := surface.Current()
		Expect(ok).To(BeTrue())
		Expect(fig.Title).To(Equal("Lissajous sweep: fx=0.10, fy=1.10"))
	})

	It("stops silently when the surface is torn down", func() {
		surface.Close()
		state.Start()
		res := ctrl.Run(context.Background(), 0, 0)
		Expect(res.Reason).To(Equal(animation.TargetUnavailable))
		Expect(res.Frames).To(BeZero())
	})

	It("ends when the context is cancelled", func() {
		ctrl.Interval = time.Hour
		state.Start()
		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			<-surface.Updates()
			cancel()
		}()

		res := ctrl.Run(ctx, 0, 0)
		Expect(res.Reason).To(Equal(animation.ContextDone))
		Expect(res.Frames).To(Equal(1))
		Expect(state.Animating()).To(BeTrue())
	})
})

var _ = Describe("Frames", func() {
	It("renders one figure per sweep value", func() {
		figs, err := animation.Frames(curve.MakeTimeGrid(), animation.DefaultSweep(), 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(figs).To(HaveLen(80))
		Expect(figs[0].Title).To(Equal("Lissajous sweep: fx=0.50, fy=1.50"))
	})

	It("clamps phases outside the slider domain like the live sweep", func() {
		grid := curve.MakeTimeGrid()
		figs, err := animation.Frames(grid, animation.DefaultSweep(), -1, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(figs).To(HaveLen(80))

		want, err := curve.EvaluateSweep(grid, 0.5, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(figs[0].Trace.X).To(Equal(want.X))
	})

	It("titles clamped frequencies with the value drawn", func() {
		figs, err := animation.Frames(curve.MakeTimeGrid(), animation.Sweep{Start: 0.05, End: 0.5, Steps: 2}, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(figs[0].Title).To(Equal("Lissajous sweep: fx=0.10, fy=1.10"))
		Expect(figs[1].Title).To(Equal("Lissajous sweep: fx=0.50, fy=1.50"))
	})
})
