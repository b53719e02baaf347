// Package sched provides cancellable deferred actions for game engines.
//
// Engines never block and never spawn goroutines of their own. Anything that has
// to happen "later" (sequence playback, an opponent's thinking pause) is handed
// to a Scheduler. Two schedulers exist: Clock, a virtual clock advanced by the
// caller (used by the fixed-tick terminal platform and by tests), and Loop, a
// real-time scheduler that funnels every action onto a single executor goroutine.
package sched

import "time"

// Timer is a handle to a pending deferred action.
type Timer interface {
	// Stop prevents the action from running.
	// Returns false if the action already ran or was already stopped.
	Stop() bool
}

// Scheduler runs fn once after delay d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
