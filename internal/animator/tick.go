package animator

import "time"

// tick is one link of the self-rescheduling chain. While Running it
// requests the next tick first, then fires frame subscribers iff enough
// time has elapsed for the target rate. A skipped tick leaves prevTick
// untouched, so skipped time accumulates toward the next eligible tick
// and the achieved average converges on the target instead of drifting
// low.
//
// When the guard observes Stopped or Paused the chain simply ends; a
// Pause or Stop issued from inside a frame subscriber therefore takes
// effect on the next scheduled tick.
func (a *Animator) tick() {
	a.mu.Lock()
	a.scheduled = false
	if a.startedAt.IsZero() || a.paused {
		a.mu.Unlock()
		return
	}
	a.scheduleLocked()

	now := a.clock.Now()
	delta := now.Sub(a.prevTick)
	var handlers []FrameFunc
	if a.shouldFireLocked(delta) {
		if delta > 0 {
			a.measured = float64(time.Second) / float64(delta)
		}
		a.prevTick = now
		handlers = a.frame.snapshot()
	}
	a.mu.Unlock()

	for _, fn := range handlers {
		fn(delta)
	}
}

// shouldFireLocked is the throttling condition: fire on every tick in
// ignore-rate-cap mode, never with a non-positive target, and otherwise
// once at least 1/target seconds have elapsed since the last fire.
func (a *Animator) shouldFireLocked(delta time.Duration) bool {
	if a.ignoreCap {
		return true
	}
	if a.target <= 0 {
		return false
	}
	return delta >= a.minIntervalLocked()
}

func (a *Animator) minIntervalLocked() time.Duration {
	return time.Duration(float64(time.Second) / a.target)
}

// scheduleLocked requests the next tick unless one is already pending,
// keeping the chain single even when pause/resume race a pending tick.
func (a *Animator) scheduleLocked() {
	if a.scheduled {
		return
	}
	a.scheduled = true
	a.clock.ScheduleNextFrame(a.tick)
}
