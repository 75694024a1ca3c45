package animator

import (
	"sync"
	"time"

	"animd/internal/frameclock"
)

// Animator owns one independent animation timeline. Ticks arrive on the
// clock's dispatch goroutine while operations may come from any
// goroutine, so all state lives behind one mutex; subscriber callbacks
// run outside the lock, and may therefore call back into the animator.
type Animator struct {
	mu    sync.Mutex
	clock frameclock.Clock

	target    float64 // frames per second; <= 0 never fires unless ignoreCap
	ignoreCap bool

	pauseOnHidden bool
	resumeOnShown bool

	// startedAt is zero exactly while Stopped; it doubles as the
	// is-running flag.
	startedAt time.Time
	// prevTick is the time of the last tick at which subscribers fired.
	prevTick time.Time
	paused   bool
	// hiddenPause marks a pause forced by a hidden broadcast; it blocks
	// Resume until the matching shown broadcast clears it.
	hiddenPause bool
	// scheduled collapses duplicate tick chains after pause/resume races.
	scheduled bool

	measured float64 // last observed instantaneous rate, informational

	frame   registry[FrameFunc]
	started registry[func()]
	pauses  registry[func()]
	resumes registry[func()]
	stops   registry[func()]

	detach func()
}

// State reports the current lifecycle state.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stateLocked()
}

func (a *Animator) stateLocked() State {
	switch {
	case a.startedAt.IsZero():
		return StateStopped
	case a.paused:
		return StatePaused
	default:
		return StateRunning
	}
}

// TargetFrameRate returns the configured throttle target in frames per
// second; zero means no target is set.
func (a *Animator) TargetFrameRate() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.target
}

// MeasuredFrameRate returns the last observed instantaneous rate, or 0
// before the first fired tick.
func (a *Animator) MeasuredFrameRate() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.measured
}

// SetTargetFrameRate updates the throttle target, clamping to
// MaxFrameRate, and clears ignore-rate-cap mode. A rate of zero or
// below keeps the tick chain alive but never fires subscribers.
func (a *Animator) SetTargetFrameRate(fps float64) {
	a.mu.Lock()
	if fps > MaxFrameRate {
		fps = MaxFrameRate
	}
	a.target = fps
	a.ignoreCap = false
	a.mu.Unlock()
}

// SetIgnoreRateCap forces every tick to fire subscribers regardless of
// elapsed time.
func (a *Animator) SetIgnoreRateCap() {
	a.mu.Lock()
	a.ignoreCap = true
	a.mu.Unlock()
}

// SetPauseOnHidden updates the hidden-broadcast policy; it takes effect
// on the next broadcast.
func (a *Animator) SetPauseOnHidden(v bool) {
	a.mu.Lock()
	a.pauseOnHidden = v
	a.mu.Unlock()
}

// SetResumeOnShown updates the shown-broadcast policy; it takes effect
// on the next broadcast.
func (a *Animator) SetResumeOnShown(v bool) {
	a.mu.Lock()
	a.resumeOnShown = v
	a.mu.Unlock()
}

// Snapshot returns a read-only projection of the animator state.
func (a *Animator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		State:           a.stateLocked(),
		TargetFrameRate: a.target,
		MeasuredRate:    a.measured,
		IgnoreRateCap:   a.ignoreCap,
		PauseOnHidden:   a.pauseOnHidden,
		ResumeOnShown:   a.resumeOnShown,
	}
}

// Close stops the animator and detaches it from its visibility bus so
// later broadcasts no longer reach it. Safe to call more than once.
func (a *Animator) Close() error {
	a.Stop()
	a.mu.Lock()
	detach := a.detach
	a.detach = nil
	a.mu.Unlock()
	if detach != nil {
		detach()
	}
	return nil
}
