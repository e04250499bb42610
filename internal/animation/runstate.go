package animation

import (
	"sync"
	"sync/atomic"
)

// RunState is the per-session "animating" flag. Reads and writes are atomic
// so a loop on another goroutine observes Stop promptly.
type RunState struct {
	animating atomic.Bool

	mu   sync.Mutex
	done chan struct{}
}

func NewRunState() *RunState {
	return &RunState{done: make(chan struct{})}
}

// Animating reports whether the sweep should run.
func (r *RunState) Animating() bool {
	return r.animating.Load()
}

// Start sets the flag. Starting twice is a no-op.
func (r *RunState) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.animating.Load() {
		return
	}
	r.done = make(chan struct{})
	r.animating.Store(true)
}

// Stop clears the flag and wakes any loop waiting between frames.
func (r *RunState) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.animating.Load() {
		return
	}
	r.animating.Store(false)
	close(r.done)
}

// Done is closed by the next Stop.
func (r *RunState) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}
