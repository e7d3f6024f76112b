package anim

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matt-g-everett/glide/easing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

// leakyScheduler ignores cancellation, so frames dispatched before a
// cancel still run, as they may with a real display driver.
type leakyScheduler struct {
	*ManualScheduler
}

func (leakyScheduler) CancelFrame(FrameID) {}

type recorder struct {
	raw       []float64
	progress  []float64
	completed int
}

func (r *recorder) options(d time.Duration, f easing.Func) Options {
	return Options{
		Duration: d,
		Easing:   f,
		OnUpdate: func(progress, raw float64) {
			r.progress = append(r.progress, progress)
			r.raw = append(r.raw, raw)
		},
		OnComplete: func() { r.completed++ },
	}
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestFrameSequence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	var rec recorder
	h := c.Start("t", rec.options(1000*ms, easing.Linear))
	assert.True(t, c.IsRunning("t"))

	for _, ts := range []time.Duration{0, 250 * ms, 500 * ms, 750 * ms} {
		s.Advance(ts)
		assert.Equal(t, 0, rec.completed, "completed early at %v", ts)
		assert.False(t, isClosed(h.Done()))
	}
	s.Advance(1000 * ms)

	// the first frame runs at elapsed 0
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, rec.raw)
	assert.Equal(t, 1, rec.completed)
	assert.True(t, isClosed(h.Done()))
	assert.False(t, c.IsRunning("t"))
	assert.Equal(t, 0, s.Pending())

	s.Advance(2000 * ms)
	assert.Len(t, rec.raw, 5)
	assert.Equal(t, 1, rec.completed)
	assert.NoError(t, h.Wait(context.Background()))
}

func TestEasingShapesProgress(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	var rec recorder
	c.Start("q", rec.options(100*ms, easing.EaseInQuad))
	for _, ts := range []time.Duration{0, 50 * ms, 100 * ms} {
		s.Advance(ts)
	}
	assert.Equal(t, []float64{0, 0.25, 1}, rec.progress)
}

func TestDefaultEasingIsLinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	var rec recorder
	c.Start("l", rec.options(100*ms, nil))
	s.Advance(30 * ms)
	assert.Equal(t, rec.raw, rec.progress)
}

func TestRawProgressIncreases(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	var rec recorder
	c.Start("m", rec.options(1000*ms, easing.EaseOutCubic))
	for _, ts := range []time.Duration{3, 17, 18, 240, 241, 700, 999, 1001, 1500} {
		s.Advance(ts * ms)
	}
	require.NotEmpty(t, rec.raw)
	for i := 1; i < len(rec.raw); i++ {
		assert.Greater(t, rec.raw[i], rec.raw[i-1])
	}
	assert.Equal(t, 1.0, rec.raw[len(rec.raw)-1])
	assert.Equal(t, 1, rec.completed)
}

func TestNonPositiveDurationCompletesOnFirstFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	for _, d := range []time.Duration{0, -5 * ms} {
		s := NewManualScheduler()
		c := NewController(s)
		var rec recorder
		h := c.Start("z", rec.options(d, easing.Linear))
		s.Advance(0)
		assert.Equal(t, []float64{1}, rec.raw)
		assert.Equal(t, 1, rec.completed)
		assert.True(t, isClosed(h.Done()))
	}
}

func TestRestartPreemptsPrevious(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	var first, second recorder
	h1 := c.Start("a", first.options(100*ms, easing.Linear))
	h2 := c.Start("a", second.options(100*ms, easing.Linear))

	for ts := time.Duration(0); ts <= 200*ms; ts += 10 * ms {
		s.Advance(ts)
	}
	assert.Empty(t, first.raw)
	assert.Equal(t, 0, first.completed)
	assert.False(t, isClosed(h1.Done()))
	assert.Equal(t, 1, second.completed)
	assert.True(t, isClosed(h2.Done()))

	assert.True(t, errors.Is(h1.Wait(context.Background()), ErrCanceled))
}

func TestCancel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	assert.NotPanics(t, func() { c.Cancel("x") })

	var rec recorder
	h := c.Start("x", rec.options(100*ms, easing.Linear))
	s.Advance(10 * ms)
	c.Cancel("x")
	c.Cancel("x")
	assert.False(t, c.IsRunning("x"))
	assert.Equal(t, 0, s.Pending())

	s.Advance(500 * ms)
	assert.Len(t, rec.raw, 1)
	assert.Equal(t, 0, rec.completed)
	assert.False(t, isClosed(h.Done()))
}

func TestStaleFrameIsNoOp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := leakyScheduler{NewManualScheduler()}
	c := NewController(s)
	var rec recorder
	c.Start("x", rec.options(100*ms, easing.Linear))
	c.Cancel("x")
	assert.Equal(t, 1, s.Pending(), "cancel did not reach the driver")

	s.Advance(200 * ms)
	assert.Empty(t, rec.raw)
	assert.Equal(t, 0, rec.completed)
	assert.Equal(t, 0, s.Pending())
}

func TestStaleFrameAfterRestart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := leakyScheduler{NewManualScheduler()}
	c := NewController(s)
	var first, second recorder
	c.Start("a", first.options(100*ms, easing.Linear))
	c.Start("a", second.options(100*ms, easing.Linear))

	assert.Equal(t, 2, s.Advance(50*ms))
	assert.Empty(t, first.raw)
	assert.Equal(t, []float64{0.5}, second.raw)
	assert.Equal(t, 1, s.Pending())
}

func TestCancelAll(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := leakyScheduler{NewManualScheduler()}
	c := NewController(s)
	recs := map[string]*recorder{"one": {}, "two": {}, "three": {}}
	for id, rec := range recs {
		c.Start(id, rec.options(100*ms, easing.Linear))
	}
	assert.Equal(t, []string{"one", "three", "two"}, c.Running())

	c.CancelAll()
	for id := range recs {
		assert.False(t, c.IsRunning(id))
	}
	assert.Equal(t, 3, s.Advance(50*ms))
	s.Advance(500 * ms)
	for id, rec := range recs {
		assert.Empty(t, rec.raw, id)
		assert.Equal(t, 0, rec.completed, id)
	}
	assert.Empty(t, c.Running())
}

func TestCancelFromUpdate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	updates, completed := 0, false
	c.Start("self", Options{
		Duration: 100 * ms,
		OnUpdate: func(progress, raw float64) {
			updates++
			if raw >= 0.5 {
				c.Cancel("self")
			}
		},
		OnComplete: func() { completed = true },
	})
	for ts := time.Duration(0); ts <= 200*ms; ts += 25 * ms {
		s.Advance(ts)
	}
	assert.Equal(t, 3, updates)
	assert.False(t, completed)
	assert.Equal(t, 0, s.Pending())
}

func TestLoopFromComplete(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	rounds := 0
	var loop func()
	loop = func() {
		c.Start("loop", Options{
			Duration: 100 * ms,
			OnComplete: func() {
				rounds++
				if rounds < 3 {
					loop()
				}
			},
		})
	}
	loop()
	for ts := time.Duration(0); ts <= 1000*ms; ts += 50 * ms {
		s.Advance(ts)
	}
	assert.Equal(t, 3, rounds)
	assert.False(t, c.IsRunning("loop"))
}

func TestHandleStopLeavesNewerAlone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	old := c.Start("h", Options{Duration: 100 * ms})
	c.Start("h", Options{Duration: 100 * ms})
	old.Stop()
	assert.True(t, c.IsRunning("h"))

	h := c.Start("h", Options{Duration: 100 * ms})
	h.Stop()
	assert.False(t, c.IsRunning("h"))
	assert.True(t, errors.Is(h.Wait(context.Background()), ErrCanceled))
}

func TestPanickingUpdateIsDropped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	bad := c.Start("bad", Options{
		Duration: 100 * ms,
		OnUpdate: func(float64, float64) { panic("boom") },
	})
	var rec recorder
	good := c.Start("good", rec.options(100*ms, easing.Linear))

	assert.NotPanics(t, func() {
		s.Advance(0)
		s.Advance(100 * ms)
	})
	assert.False(t, c.IsRunning("bad"))
	assert.True(t, errors.Is(bad.Wait(context.Background()), ErrCallbackPanicked))
	assert.True(t, isClosed(good.Done()))
	assert.Equal(t, 1, rec.completed)
}

func TestWaitHonoursContext(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	c := NewController(NewManualScheduler())
	h := c.Start("w", Options{Duration: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.True(t, errors.Is(h.Wait(ctx), context.Canceled))
}

func TestIndependentControllers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c1, c2 := NewController(s), NewController(s)
	c1.Start("same", Options{Duration: 100 * ms})
	c2.Start("same", Options{Duration: 100 * ms})
	c1.Cancel("same")
	assert.False(t, c1.IsRunning("same"))
	assert.True(t, c2.IsRunning("same"))
}

func TestTickerScheduler(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewTickerScheduler(200)
	assert.Equal(t, 5*ms, s.Interval())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go s.Run(ctx)

	c := NewController(s)
	updates := make(chan float64, 1024)
	h := c.Start("tick", Options{
		Duration: 40 * ms,
		OnUpdate: func(_, raw float64) { updates <- raw },
	})
	require.NoError(t, h.Wait(ctx))
	close(updates)

	last := -1.0
	for raw := range updates {
		assert.GreaterOrEqual(t, raw, last)
		last = raw
	}
	assert.Equal(t, 1.0, last)
}

func TestPostedCancelRunsInFrameBatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	var rec recorder
	h := c.Start("x", rec.options(1000*ms, easing.Linear))
	c.Post(func() { c.Cancel("x") })
	assert.True(t, c.IsRunning("x"), "posted calls wait for the next frame")

	s.Advance(0)
	s.Advance(250 * ms)
	s.Advance(500 * ms)
	assert.Len(t, rec.raw, 1)
	assert.False(t, c.IsRunning("x"))
	assert.Zero(t, s.Pending())
	assert.ErrorIs(t, h.Wait(context.Background()), ErrCanceled)
}

func TestPostedPanicIsRecovered(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewManualScheduler()
	c := NewController(s)
	var rec recorder
	c.Start("x", rec.options(100*ms, easing.Linear))
	c.Post(func() { panic("boom") })
	assert.NotPanics(t, func() { s.Advance(0) })
	s.Advance(100 * ms)
	assert.Equal(t, 1, rec.completed)
}

func TestCancelFromOtherGoroutineStopsUpdates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := NewTickerScheduler(200)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go s.Run(ctx)

	c := NewController(s)
	var updates atomic.Int64
	started := make(chan struct{})
	var once atomic.Bool
	h := c.Start("x", Options{
		Duration: time.Hour,
		OnUpdate: func(_, _ float64) {
			updates.Add(1)
			if once.CompareAndSwap(false, true) {
				close(started)
			}
		},
	})
	<-started

	var atCancel int64
	cancelled := make(chan struct{})
	c.Post(func() {
		c.Cancel("x")
		atCancel = updates.Load()
		close(cancelled)
	})
	<-cancelled
	assert.False(t, c.IsRunning("x"))
	assert.ErrorIs(t, h.Wait(ctx), ErrCanceled)

	time.Sleep(50 * ms)
	assert.Equal(t, atCancel, updates.Load(), "update after cancel returned")
}
