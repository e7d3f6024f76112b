/*
Package anim drives named, cancelable animations from a frame scheduler.

A Controller keeps at most one running animation per id. Every frame the
animation computes its raw progress from the elapsed time, shapes it with
its easing function and reports both to its update callback, until raw
progress reaches 1. Starting a second animation under a running id
replaces the first one.
*/
package anim

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'anim'
func tracer() tracing.Trace {
	return tracing.Select("anim")
}

// frameRef is the token of one scheduled frame. An animation's frame
// callback only acts while its frameRef is the one on record.
type frameRef struct {
	id FrameID
}

type entry struct {
	handle *Handle
	frame  *frameRef
}

// Controller manages animations on top of a Scheduler. Its methods are
// safe for concurrent use and may be called from inside animation
// callbacks. Cancel, CancelAll and a preempting Start only guarantee that
// no further OnUpdate runs once they return when they are called on the
// goroutine that fires frames; other goroutines hand such calls over
// with Post.
type Controller struct {
	scheduler  Scheduler
	mu         sync.Mutex
	animations map[string]*entry
}

// NewController creates a Controller with an empty registry.
func NewController(s Scheduler) *Controller {
	c := new(Controller)
	c.scheduler = s
	c.animations = make(map[string]*entry)
	return c
}

// Start begins an animation under id, cancelling any animation currently
// running under the same id. It returns immediately; the animation
// advances on scheduler frames.
func (c *Controller) Start(id string, opts Options) *Handle {
	h := newHandle(c, id, opts)
	c.mu.Lock()
	if prev, ok := c.animations[id]; ok {
		tracer().Debugf("animation %q preempted", id)
		c.removeLocked(prev, ErrCanceled)
	}
	h.start = c.scheduler.Now()
	e := &entry{handle: h}
	c.animations[id] = e
	c.scheduleLocked(e)
	c.mu.Unlock()
	tracer().Debugf("animation %q started, duration %v", id, h.duration)
	return h
}

// Cancel stops the animation running under id. Its completion callback
// is not called. Cancel is a no-op for unknown ids.
func (c *Controller) Cancel(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.animations[id]; ok {
		tracer().Debugf("animation %q cancelled", id)
		c.removeLocked(e, ErrCanceled)
	}
}

// CancelAll stops every running animation.
func (c *Controller) CancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.animations {
		c.removeLocked(e, ErrCanceled)
	}
	tracer().Debugf("all animations cancelled")
}

// IsRunning reports whether an animation is registered under id.
func (c *Controller) IsRunning(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.animations[id]
	return ok
}

// Running lists the ids of all running animations, sorted.
func (c *Controller) Running() []string {
	c.mu.Lock()
	ids := make([]string, 0, len(c.animations))
	for id := range c.animations {
		ids = append(ids, id)
	}
	c.mu.Unlock()
	sort.Strings(ids)
	return ids
}

// Post runs fn with the next frame batch, on the goroutine that fires
// frames. A panic in fn is recovered and logged.
func (c *Controller) Post(fn func()) {
	c.scheduler.ScheduleFrame(func(time.Duration) {
		if err := protect(fn); err != nil {
			tracer().Errorf("posted call: %v", err)
		}
	})
}

func (c *Controller) cancelHandle(h *Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.animations[h.id]; ok && e.handle == h {
		c.removeLocked(e, ErrCanceled)
	}
}

func (c *Controller) scheduleLocked(e *entry) {
	ref := new(frameRef)
	ref.id = c.scheduler.ScheduleFrame(func(ts time.Duration) {
		c.frame(e, ref, ts)
	})
	e.frame = ref
}

func (c *Controller) removeLocked(e *entry, reason error) {
	c.scheduler.CancelFrame(e.frame.id)
	delete(c.animations, e.handle.id)
	e.handle.stop(reason)
}

// ownsLocked is the stale-frame guard.
func (c *Controller) ownsLocked(e *entry, ref *frameRef) bool {
	cur, ok := c.animations[e.handle.id]
	return ok && cur == e && cur.frame == ref
}

func (c *Controller) frame(e *entry, ref *frameRef, ts time.Duration) {
	h := e.handle
	c.mu.Lock()
	if !c.ownsLocked(e, ref) {
		c.mu.Unlock()
		return
	}
	raw := h.rawProgress(ts)
	c.mu.Unlock()

	progress := h.easing(raw)
	if h.onUpdate != nil {
		if err := protect(func() { h.onUpdate(progress, raw) }); err != nil {
			tracer().Errorf("animation %q dropped: %v", h.id, err)
			c.mu.Lock()
			if c.ownsLocked(e, ref) {
				c.removeLocked(e, err)
			}
			c.mu.Unlock()
			return
		}
	}

	c.mu.Lock()
	if !c.ownsLocked(e, ref) { // cancelled from inside OnUpdate
		c.mu.Unlock()
		return
	}
	if raw < 1 {
		c.scheduleLocked(e)
		c.mu.Unlock()
		return
	}
	delete(c.animations, h.id)
	c.mu.Unlock()

	tracer().Debugf("animation %q complete", h.id)
	if h.onComplete != nil {
		if err := protect(h.onComplete); err != nil {
			tracer().Errorf("animation %q: completion callback: %v", h.id, err)
		}
	}
	h.complete()
}

// protect runs fn, turning a panic into an error.
func protect(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanicked, r)
		}
	}()
	fn()
	return nil
}
