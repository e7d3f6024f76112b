package anim

import (
	"context"
	"time"
)

// DefaultFrameRate is used when a TickerScheduler is created with a
// non-positive rate.
const DefaultFrameRate = 60.0

// TickerScheduler drives frames from a fixed-rate ticker. Callbacks run on
// the goroutine that called Run.
type TickerScheduler struct {
	queue    frameQueue
	interval time.Duration
	epoch    time.Time
}

// NewTickerScheduler creates a TickerScheduler firing frameRate times per
// second. Its clock starts at zero.
func NewTickerScheduler(frameRate float64) *TickerScheduler {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	s := new(TickerScheduler)
	s.interval = time.Duration(float64(time.Second) / frameRate)
	s.epoch = time.Now()
	return s
}

func (s *TickerScheduler) ScheduleFrame(fn FrameFunc) FrameID {
	return s.queue.schedule(fn)
}

func (s *TickerScheduler) CancelFrame(id FrameID) {
	s.queue.cancel(id)
}

// Now reads the monotonic clock relative to the scheduler's creation.
func (s *TickerScheduler) Now() time.Duration {
	return time.Since(s.epoch)
}

// Interval is the time between two frames.
func (s *TickerScheduler) Interval() time.Duration {
	return s.interval
}

// Run fires pending frames on every tick until ctx is done.
func (s *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.queue.fire(s.Now())
		}
	}
}
