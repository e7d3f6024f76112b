package anim

import (
	"context"
	"sync"
	"time"

	"github.com/matt-g-everett/glide/easing"
)

// Options configure one animation. The zero value is a linear animation
// that completes on its first frame.
type Options struct {
	// Duration of the animation. Zero or negative completes on the first
	// frame with raw progress 1.
	Duration time.Duration
	// Easing shapes the raw progress. Defaults to easing.Linear.
	Easing easing.Func
	// OnUpdate is called every frame with eased and raw progress.
	OnUpdate func(progress, raw float64)
	// OnComplete is called once when raw progress reaches 1. It is never
	// called for a cancelled animation.
	OnComplete func()
}

// Handle is one started animation.
type Handle struct {
	id         string
	start      time.Duration
	duration   time.Duration
	easing     easing.Func
	onUpdate   func(progress, raw float64)
	onComplete func()
	controller *Controller

	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	err      error
}

func newHandle(c *Controller, id string, opts Options) *Handle {
	h := new(Handle)
	h.id = id
	h.duration = opts.Duration
	h.easing = opts.Easing
	if h.easing == nil {
		h.easing = easing.Linear
	}
	h.onUpdate = opts.OnUpdate
	h.onComplete = opts.OnComplete
	h.controller = c
	h.done = make(chan struct{})
	h.stopped = make(chan struct{})
	return h
}

// ID is the identifier the animation was started under.
func (h *Handle) ID() string {
	return h.id
}

// Done is closed when the animation completes normally. It stays open
// forever if the animation is cancelled or preempted.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the animation completes, is cancelled, or ctx is
// done. It returns nil on completion, ErrCanceled (or the reason the
// animation was dropped) on cancellation, and ctx.Err() otherwise.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-h.stopped:
		return h.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels this animation if it still owns its id. A newer animation
// started under the same id is left alone. Like Controller.Cancel it
// belongs on the goroutine that fires frames.
func (h *Handle) Stop() {
	h.controller.cancelHandle(h)
}

func (h *Handle) rawProgress(ts time.Duration) float64 {
	if h.duration <= 0 {
		return 1
	}
	elapsed := ts - h.start
	if elapsed <= 0 {
		return 0
	}
	raw := float64(elapsed) / float64(h.duration)
	if raw > 1 {
		raw = 1
	}
	return raw
}

func (h *Handle) complete() {
	close(h.done)
}

func (h *Handle) stop(err error) {
	h.stopOnce.Do(func() {
		h.err = err
		close(h.stopped)
	})
}
