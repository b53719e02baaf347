package sched

import "time"

// Group tracks the deferred actions owned by one engine instance so they can be
// cancelled together when the engine starts a new game.
type Group struct {
	sched  Scheduler
	timers map[uint64]Timer
	nextID uint64
	epoch  uint64
}

// NewGroup creates an empty group on top of s.
func NewGroup(s Scheduler) *Group {
	return &Group{
		sched:  s,
		timers: make(map[uint64]Timer),
	}
}

// After schedules fn to run after d unless the group is cancelled first.
// An action whose timer already fired but that has not executed when CancelAll
// is called is dropped as well.
func (g *Group) After(d time.Duration, fn func()) {
	g.nextID++
	id := g.nextID
	epoch := g.epoch
	g.timers[id] = g.sched.AfterFunc(d, func() {
		if epoch != g.epoch {
			return
		}
		delete(g.timers, id)
		fn()
	})
}

// CancelAll stops every pending action of the group.
func (g *Group) CancelAll() {
	for id, t := range g.timers {
		t.Stop()
		delete(g.timers, id)
	}
	g.epoch++
}

// Len returns the number of actions still pending.
func (g *Group) Len() int {
	return len(g.timers)
}
