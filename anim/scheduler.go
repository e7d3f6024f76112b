package anim

import (
	"sync"
	"time"
)

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// FrameFunc is invoked once for a scheduled frame with the frame's
// timestamp, measured on the scheduler's clock.
type FrameFunc func(ts time.Duration)

// A Scheduler calls back once per display refresh. Timestamps handed to
// callbacks and returned by Now come from the same monotonic clock.
type Scheduler interface {
	ScheduleFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
	Now() time.Duration
}

// frameQueue holds the callbacks waiting for the next frame. Callbacks
// scheduled while a frame is being fired wait for the following one.
type frameQueue struct {
	mu      sync.Mutex
	next    FrameID
	pending map[FrameID]FrameFunc
	order   []FrameID
	firing  map[FrameID]FrameFunc
}

func (q *frameQueue) schedule(fn FrameFunc) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		q.pending = make(map[FrameID]FrameFunc)
	}
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

func (q *frameQueue) cancel(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, id)
	delete(q.firing, id)
}

func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// fire runs every callback pending at the time of the call, in schedule
// order, and returns how many ran. A callback cancelled by an earlier one
// in the same batch is skipped.
func (q *frameQueue) fire(ts time.Duration) int {
	q.mu.Lock()
	batch := make([]FrameID, 0, len(q.pending))
	for _, id := range q.order {
		if _, ok := q.pending[id]; ok {
			batch = append(batch, id)
		}
	}
	q.firing = q.pending
	q.pending = make(map[FrameID]FrameFunc)
	q.order = nil
	q.mu.Unlock()

	fired := 0
	for _, id := range batch {
		q.mu.Lock()
		fn, ok := q.firing[id]
		delete(q.firing, id)
		q.mu.Unlock()
		if ok {
			fn(ts)
			fired++
		}
	}
	return fired
}
