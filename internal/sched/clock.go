package sched

import (
	"sort"
	"time"
)

// Clock is a virtual-time Scheduler.
// Actions only run from Advance or Flush, on the caller's goroutine, ordered by
// due time and then by scheduling order.
type Clock struct {
	now     time.Duration
	seq     uint64
	pending []*clockEntry
}

type clockEntry struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop implements Timer.
func (e *clockEntry) Stop() bool {
	if e.stopped || e.fired {
		return false
	}
	e.stopped = true
	return true
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules fn to run once the clock has advanced by d.
// Negative delays are treated as zero.
func (c *Clock) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	e := &clockEntry{due: c.now + d, seq: c.seq, fn: fn}
	c.pending = append(c.pending, e)
	return e
}

// Pending returns the number of actions waiting to run.
func (c *Clock) Pending() int {
	c.compact()
	return len(c.pending)
}

// Advance moves the clock forward by d and runs every action that falls due,
// including actions scheduled by other actions inside the window.
// Returns the number of actions that ran.
func (c *Clock) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := c.now + d
	ran := 0
	for {
		e := c.next()
		if e == nil || e.due > target {
			break
		}
		c.now = e.due
		e.fired = true
		e.fn()
		ran++
	}
	c.now = target
	return ran
}

// Flush advances the clock to each pending action in turn until none remain.
// Callers must not use Flush with self-rescheduling actions.
func (c *Clock) Flush() int {
	ran := 0
	for {
		e := c.next()
		if e == nil {
			return ran
		}
		ran += c.Advance(e.due - c.now)
	}
}

// next returns the earliest live entry without removing it.
func (c *Clock) next() *clockEntry {
	c.compact()
	if len(c.pending) == 0 {
		return nil
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].due != c.pending[j].due {
			return c.pending[i].due < c.pending[j].due
		}
		return c.pending[i].seq < c.pending[j].seq
	})
	return c.pending[0]
}

// compact drops stopped and fired entries.
func (c *Clock) compact() {
	live := c.pending[:0]
	for _, e := range c.pending {
		if !e.stopped && !e.fired {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(c.pending); i++ {
		c.pending[i] = nil
	}
	c.pending = live
}
