package anim

import (
	"sync"
	"time"
)

// ManualScheduler fires frames only when told to. It is the driver for
// tests and for rendering an animation offline at chosen timestamps.
type ManualScheduler struct {
	queue frameQueue
	mu    sync.Mutex
	now   time.Duration
}

// NewManualScheduler creates a ManualScheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return new(ManualScheduler)
}

func (s *ManualScheduler) ScheduleFrame(fn FrameFunc) FrameID {
	return s.queue.schedule(fn)
}

func (s *ManualScheduler) CancelFrame(id FrameID) {
	s.queue.cancel(id)
}

func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Advance moves the clock to ts and fires the frames pending at that
// moment. The clock never runs backwards; an earlier ts fires at the
// current time. It returns the number of callbacks run.
func (s *ManualScheduler) Advance(ts time.Duration) int {
	s.mu.Lock()
	if ts < s.now {
		ts = s.now
	}
	s.now = ts
	s.mu.Unlock()
	return s.queue.fire(ts)
}

// Step advances the clock by d.
func (s *ManualScheduler) Step(d time.Duration) int {
	return s.Advance(s.Now() + d)
}

// Pending is the number of callbacks waiting for the next frame.
func (s *ManualScheduler) Pending() int {
	return s.queue.len()
}
