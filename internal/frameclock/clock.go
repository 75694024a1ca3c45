// Package frameclock supplies the frame cadence that drives animators.
//
// A Clock is selected once at construction and injected into the core:
//
//   - System: real time, a run-loop goroutine firing at a fixed cadence.
//   - Manual: fake time for deterministic tests, advanced by hand.
//
// Callbacks registered with ScheduleNextFrame run exactly once, on the
// clock's single dispatch goroutine. Callbacks scheduled from within a
// callback land in the next batch, never the current one.
package frameclock

import (
	"sync"
	"time"
)

// DefaultInterval approximates a 60 Hz display cadence.
const DefaultInterval = 16666 * time.Microsecond

// Clock pairs a time source with a one-shot frame scheduler.
type Clock interface {
	// Now returns the clock's current time.
	Now() time.Time
	// ScheduleNextFrame arranges for fn to be invoked once at the next
	// frame boundary. A nil fn is ignored.
	ScheduleNextFrame(fn func())
}

var (
	defaultOnce  sync.Once
	defaultClock *System
)

// Default returns the lazily-created process-wide System clock at the
// default cadence. It is never closed.
func Default() *System {
	defaultOnce.Do(func() {
		defaultClock = NewSystem(DefaultInterval)
	})
	return defaultClock
}
