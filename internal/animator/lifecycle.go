package animator

import "time"

// Start transitions Stopped to Running: record the start and previous
// tick timestamps as now, fire start subscribers, and begin the tick
// chain. No-op while Running or Paused.
func (a *Animator) Start() {
	a.mu.Lock()
	if !a.startedAt.IsZero() {
		a.mu.Unlock()
		return
	}
	now := a.clock.Now()
	a.startedAt = now
	// Seeding prevTick avoids a huge elapsed delta on the first tick.
	a.prevTick = now
	a.paused = false
	a.hiddenPause = false
	a.measured = 0
	a.scheduleLocked()
	handlers := a.started.snapshot()
	a.mu.Unlock()
	invoke(handlers)
}

// Pause transitions Running to Paused and fires pause subscribers.
// Ticking halts when the next scheduled tick observes the paused state.
// No-op while Stopped or already Paused.
func (a *Animator) Pause() {
	a.mu.Lock()
	handlers := a.pauseTransitionLocked()
	a.mu.Unlock()
	invoke(handlers)
}

// pauseTransitionLocked performs the Running -> Paused transition and
// returns the pause subscribers to fire, or nil when nothing changed.
func (a *Animator) pauseTransitionLocked() []func() {
	if a.startedAt.IsZero() || a.paused {
		return nil
	}
	a.paused = true
	return a.pauses.snapshot()
}

// Resume transitions Paused to Running. Suppressed entirely while the
// pause was forced by a hidden broadcast; only the matching shown
// broadcast lifts that. No-op while not Paused.
func (a *Animator) Resume() {
	a.mu.Lock()
	if a.hiddenPause {
		a.mu.Unlock()
		return
	}
	handlers := a.resumeTransitionLocked()
	a.mu.Unlock()
	invoke(handlers)
}

// resumeTransitionLocked performs the Paused -> Running transition and
// returns the resume subscribers to fire, or nil when nothing changed.
// prevTick resets to now so wall-clock time spent paused does not show
// up as a giant delta on the next fire.
func (a *Animator) resumeTransitionLocked() []func() {
	if a.startedAt.IsZero() || !a.paused {
		return nil
	}
	a.paused = false
	a.prevTick = a.clock.Now()
	a.scheduleLocked()
	return a.resumes.snapshot()
}

// Stop transitions Running or Paused to Stopped, clears the timing
// state, and fires stop subscribers. A later Start restarts timing from
// scratch. No-op while already Stopped.
func (a *Animator) Stop() {
	a.mu.Lock()
	if a.startedAt.IsZero() {
		a.mu.Unlock()
		return
	}
	a.startedAt = time.Time{}
	a.paused = false
	handlers := a.stops.snapshot()
	a.mu.Unlock()
	invoke(handlers)
}

// handleHidden reacts to a hidden broadcast: mark the pause as
// externally requested, then run the normal pause transition.
func (a *Animator) handleHidden() {
	a.mu.Lock()
	if !a.pauseOnHidden {
		a.mu.Unlock()
		return
	}
	a.hiddenPause = true
	handlers := a.pauseTransitionLocked()
	a.mu.Unlock()
	invoke(handlers)
}

// handleShown reacts to a shown broadcast: lift the external pause,
// then run the normal resume transition.
func (a *Animator) handleShown() {
	a.mu.Lock()
	if !a.resumeOnShown {
		a.mu.Unlock()
		return
	}
	a.hiddenPause = false
	handlers := a.resumeTransitionLocked()
	a.mu.Unlock()
	invoke(handlers)
}

func invoke(handlers []func()) {
	for _, fn := range handlers {
		fn()
	}
}
