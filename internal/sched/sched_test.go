package sched

import (
	"context"
	"testing"
	"time"
)

func TestClockRunsInDueOrder(t *testing.T) {
	c := NewClock()
	var got []int

	c.AfterFunc(300*time.Millisecond, func() { got = append(got, 3) })
	c.AfterFunc(100*time.Millisecond, func() { got = append(got, 1) })
	c.AfterFunc(100*time.Millisecond, func() { got = append(got, 2) })

	if ran := c.Advance(50 * time.Millisecond); ran != 0 {
		t.Fatalf("Advance(50ms) ran %d actions, expected 0", ran)
	}
	if ran := c.Advance(250 * time.Millisecond); ran != 3 {
		t.Fatalf("Advance(250ms) ran %d actions, expected 3", ran)
	}

	expected := []int{1, 2, 3}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", got, expected)
		}
	}
	if c.Now() != 300*time.Millisecond {
		t.Errorf("Now() = %v, expected 300ms", c.Now())
	}
}

func TestClockChainedActionsInsideWindow(t *testing.T) {
	c := NewClock()
	count := 0

	var step func()
	step = func() {
		count++
		if count < 5 {
			c.AfterFunc(10*time.Millisecond, step)
		}
	}
	c.AfterFunc(10*time.Millisecond, step)

	c.Advance(35 * time.Millisecond)
	if count != 3 {
		t.Errorf("count = %d after 35ms, expected 3", count)
	}

	c.Flush()
	if count != 5 {
		t.Errorf("count = %d after Flush, expected 5", count)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", c.Pending())
	}
}

func TestClockStop(t *testing.T) {
	c := NewClock()
	fired := false
	tm := c.AfterFunc(time.Second, func() { fired = true })

	if !tm.Stop() {
		t.Error("first Stop() should report true")
	}
	if tm.Stop() {
		t.Error("second Stop() should report false")
	}

	c.Advance(2 * time.Second)
	if fired {
		t.Error("stopped action should not run")
	}
}

func TestGroupCancelAll(t *testing.T) {
	c := NewClock()
	g := NewGroup(c)
	fired := 0

	g.After(100*time.Millisecond, func() { fired++ })
	g.After(200*time.Millisecond, func() { fired++ })
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", g.Len())
	}

	c.Advance(150 * time.Millisecond)
	if fired != 1 || g.Len() != 1 {
		t.Fatalf("fired = %d, Len() = %d; expected 1 and 1", fired, g.Len())
	}

	g.CancelAll()
	c.Advance(time.Second)
	if fired != 1 {
		t.Errorf("cancelled action ran, fired = %d", fired)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d after CancelAll, expected 0", g.Len())
	}
}

// staleScheduler hands back timers whose Stop is a no-op, like a real timer that
// already fired and queued its action.
type staleScheduler struct {
	queued []func()
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return false }

func (s *staleScheduler) AfterFunc(_ time.Duration, fn func()) Timer {
	s.queued = append(s.queued, fn)
	return noopTimer{}
}

func TestGroupDropsAlreadyFiredAction(t *testing.T) {
	s := &staleScheduler{}
	g := NewGroup(s)
	fired := false
	g.After(time.Millisecond, func() { fired = true })

	g.CancelAll()
	for _, fn := range s.queued {
		fn()
	}
	if fired {
		t.Error("action from a cancelled epoch should be dropped")
	}
}

func TestLoopSerializesPostedAndTimedActions(t *testing.T) {
	l := NewLoop(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go l.Run(ctx)

	results := make(chan string, 3)
	l.Post(func() { results <- "input" })
	l.AfterFunc(5*time.Millisecond, func() { results <- "timer" })

	for _, expected := range []string{"input", "timer"} {
		select {
		case got := <-results:
			if got != expected {
				t.Errorf("got %q, expected %q", got, expected)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q", expected)
		}
	}

	cancel()
	<-l.Done()
	if l.Post(func() {}) {
		t.Error("Post after Run returned should report false")
	}
}
