package sched

import (
	"context"
	"sync"
	"time"
)

// Loop is a real-time Scheduler with a single executor goroutine.
// Timers fire on runtime goroutines but only post their action; the action
// itself runs inside Run, interleaved with posted input handlers in arrival order.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop whose queue holds up to buffer actions.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// AfterFunc implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() {
		l.Post(fn)
	})
}

// Post queues fn for execution on the loop goroutine.
// Returns false if the loop has stopped. Must not be called from inside Run
// when the queue may be full.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case <-l.done:
		return false
	case l.queue <- fn:
		return true
	}
}

// Run executes queued actions until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
