package session_test

import (
	"context"
	"math"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lissajous/internal/animation"
	"github.com/san-kum/lissajous/internal/curve"
	"github.com/san-kum/lissajous/internal/session"
)

var _ = Describe("Slider", func() {
	fx := session.DefaultSliders().Fx

	It("snaps to the step grid and clamps", func() {
		Expect(fx.Snap(1.04)).To(Equal(1.0))
		Expect(fx.Snap(0.26)).To(Equal(0.3))
		Expect(fx.Snap(9)).To(Equal(5.0))
		Expect(fx.Snap(-3)).To(Equal(0.1))
		Expect(fx.Clamp(math.NaN())).To(Equal(fx.Default))
	})

	It("nudges by whole steps", func() {
		Expect(fx.Nudge(1.0, 1)).To(Equal(1.1))
		Expect(fx.Nudge(1.0, -10)).To(Equal(0.1))
		Expect(fx.Nudge(4.95, 10)).To(Equal(5.0))
	})

	It("keeps the top of the phase range reachable", func() {
		phi := session.DefaultSliders().PhiX
		Expect(phi.Nudge(6.2, 1)).To(Equal(2 * math.Pi))
		Expect(phi.Nudge(2*math.Pi, -1)).To(Equal(6.2))
	})
})

var _ = Describe("Session", func() {
	var (
		s   *session.Session
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = session.New(session.Options{})
	})

	It("starts idle at the default slider positions", func() {
		Expect(s.Animating()).To(BeFalse())
		Expect(s.Params()).To(Equal(curve.Params{Fx: 1, Fy: 2}))
	})

	It("renders exactly one static figure when not animating", func() {
		Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeStatic))
		Expect(s.Surface().Version()).To(Equal(uint64(1)))

		fig, ok := s.Surface().Current()
		Expect(ok).To(BeTrue())
		Expect(fig.Title).To(Equal("Lissajous: fx=1.00, fy=2.00, φx=0.00, φy=0.00"))
	})

	It("reads slider values fresh on every dispatch", func() {
		s.Nudge(0, 5)
		s.Nudge(3, 2)
		s.Dispatch(ctx)
		fig, _ := s.Surface().Current()
		Expect(fig.Title).To(Equal("Lissajous: fx=1.50, fy=2.00, φx=0.00, φy=0.20"))
	})

	It("clamps out-of-range values instead of failing", func() {
		s.SetParams(curve.Params{Fx: 40, Fy: -2, PhiX: 9, PhiY: 1})
		Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeStatic))
		fig, _ := s.Surface().Current()
		Expect(fig.Title).To(HavePrefix("Lissajous: fx=5.00, fy=0.10, φx=6.28"))
		for _, v := range fig.Trace.X {
			Expect(math.IsNaN(v)).To(BeFalse())
		}
	})

	It("treats repeated button presses as idempotent", func() {
		s.Animate()
		s.Animate()
		Expect(s.Animating()).To(BeTrue())
		s.Stop()
		s.Stop()
		Expect(s.Animating()).To(BeFalse())
	})

	It("runs the full sweep and leaves the flag set", func() {
		s.Animate()
		Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeAnimated))

		res := s.LastSweep()
		Expect(res.Reason).To(Equal(animation.Exhausted))
		Expect(res.Frames).To(Equal(80))
		Expect(s.Animating()).To(BeTrue())

		By("re-entering the sweep on the next trigger without a new start")
		Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeAnimated))
		Expect(s.Surface().Version()).To(Equal(uint64(160)))
	})

	It("clears the flag after the sweep when configured to", func() {
		s = session.New(session.Options{ClearOnFinish: true})
		s.Animate()
		s.Dispatch(ctx)
		Expect(s.Animating()).To(BeFalse())
		Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeStatic))
	})

	Context("with a live sweep", func() {
		var outcomes chan session.Outcome

		BeforeEach(func() {
			s = session.New(session.Options{Interval: 5 * time.Millisecond})
			outcomes = make(chan session.Outcome, 1)
			s.Animate()
			go func() { outcomes <- s.Dispatch(ctx) }()
			Eventually(s.Looping).Should(BeTrue())
		})

		AfterEach(func() {
			s.Stop()
			Eventually(outcomes).Should(Receive())
		})

		It("reports busy to dispatches that arrive mid-sweep", func() {
			Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeBusy))
		})

		It("renders the static figure after the sweep exits on stop", func() {
			Eventually(s.Surface().Version).Should(BeNumerically(">=", 2))
			s.Stop()
			Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeStatic))
			Expect(s.Looping()).To(BeFalse())

			fig, _ := s.Surface().Current()
			Expect(fig.Title).To(HavePrefix("Lissajous: "))
			Consistently(func() string {
				f, _ := s.Surface().Current()
				return f.Title
			}, 30*time.Millisecond).ShouldNot(ContainSubstring("sweep"))
			Expect(s.LastSweep().Reason).To(Equal(animation.Cancelled))
		})
	})

	It("stops at most one frame in when stop follows animate immediately", func() {
		s = session.New(session.Options{Interval: time.Hour})
		s.Animate()
		done := make(chan session.Outcome, 1)
		go func() { done <- s.Dispatch(ctx) }()

		Eventually(s.Surface().Version).Should(Equal(uint64(1)))
		s.Stop()
		Eventually(done).Should(Receive(Equal(session.OutcomeAnimated)))
		Expect(s.LastSweep().Frames).To(Equal(1))

		fig, ok := s.Surface().Current()
		Expect(ok).To(BeTrue())
		Expect(strings.HasPrefix(fig.Title, "Lissajous sweep")).To(BeTrue())
		Expect(fig.Len()).To(Equal(curve.GridSize))
	})

	It("clamps slider values into reconfigured ranges", func() {
		s.SetParams(curve.Params{Fx: 4, Fy: 2, PhiX: 3})
		sl := session.DefaultSliders()
		sl.Fx.Max = 2
		sl.PhiX.Max = 1
		s.Reconfigure(session.Options{Sliders: sl})

		Expect(s.Sliders().Fx.Max).To(Equal(2.0))
		Expect(s.Params()).To(Equal(curve.Params{Fx: 2, Fy: 2, PhiX: 1}))
	})

	It("applies new sweep settings once the running sweep exits", func() {
		s = session.New(session.Options{Interval: 5 * time.Millisecond})
		s.Animate()
		outcomes := make(chan session.Outcome, 1)
		go func() { outcomes <- s.Dispatch(ctx) }()
		Eventually(s.Looping).Should(BeTrue())

		reconfigured := make(chan struct{})
		go func() {
			defer close(reconfigured)
			s.Reconfigure(session.Options{Sweep: animation.Sweep{Start: 1, End: 2, Steps: 3}})
		}()
		Consistently(reconfigured, 20*time.Millisecond).ShouldNot(BeClosed())

		s.Stop()
		Eventually(outcomes).Should(Receive(Equal(session.OutcomeAnimated)))
		Eventually(reconfigured).Should(BeClosed())

		s.Animate()
		Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeAnimated))
		Expect(s.LastSweep().Frames).To(Equal(3))
		Expect(s.LastSweep().Reason).To(Equal(animation.Exhausted))
	})

	It("stops quietly once closed", func() {
		s.Close()
		Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeClosed))
		s.Animate()
		Expect(s.Dispatch(ctx)).To(Equal(session.OutcomeClosed))
	})
})
