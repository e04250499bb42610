// Package display holds the single-slot output region that figures are
// pushed to.
package display

import (
	"errors"
	"sync"

	"github.com/san-kum/lissajous/internal/render"
)

// ErrRenderTargetUnavailable is returned by Show once the surface is closed.
var ErrRenderTargetUnavailable = errors.New("display: render target unavailable")

// Surface keeps exactly one figure, the most recently shown. It is safe for
// concurrent use; concurrent writers resolve as last write wins.
type Surface struct {
	mu      sync.RWMutex
	fig     render.Figure
	has     bool
	version uint64
	closed  bool
	updates chan struct{}
}

func New() *Surface {
	return &Surface{updates: make(chan struct{}, 1)}
}

// Show replaces the current figure. Readers observe either the previous or
// the new figure, never a mix.
func (s *Surface) Show(fig render.Figure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrRenderTargetUnavailable
	}
	s.fig, s.has = fig, true
	s.version++
	select {
	case s.updates <- struct{}{}:
	default:
	}
	return nil
}

// Current returns the figure on display and whether one has been shown.
func (s *Surface) Current() (render.Figure, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fig, s.has
}

// Version counts accepted Show calls.
func (s *Surface) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Updates signals after a Show. Signals coalesce; the channel is closed
// when the surface is closed.
func (s *Surface) Updates() <-chan struct{} {
	return s.updates
}

// Close tears the surface down. The last figure stays readable.
func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.updates)
}

func (s *Surface) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
