package animator

import (
	"animd/internal/frameclock"
	"animd/internal/visibility"
)

// MaxFrameRate is the hard cap on the target rate; higher requests
// silently clamp.
const MaxFrameRate = 60.0

// Config encapsulates all tunables for Animator construction. The zero
// value gives an uncapped animator attached to the shared visibility
// bus and the default system clock, pausing when hidden and resuming
// when shown.
type Config struct {
	// TargetFrameRate caps frame fires per second, clamped to
	// MaxFrameRate. Zero or negative leaves throttling disabled: every
	// tick fires (ignore-rate-cap mode).
	TargetFrameRate float64
	// DisablePauseOnHidden keeps the animator running through hidden
	// broadcasts.
	DisablePauseOnHidden bool
	// DisableResumeOnShown leaves the animator paused after shown
	// broadcasts.
	DisableResumeOnShown bool
	// Clock drives the tick chain. Defaults to frameclock.Default().
	Clock frameclock.Clock
	// Bus delivers visibility broadcasts. Defaults to visibility.Shared().
	Bus *visibility.Bus
}

// New constructs an Animator from cfg, applies defaults, and attaches
// it to the visibility bus. The animator starts out Stopped.
func New(cfg Config) *Animator {
	a := &Animator{
		pauseOnHidden: !cfg.DisablePauseOnHidden,
		resumeOnShown: !cfg.DisableResumeOnShown,
	}
	if cfg.Clock != nil {
		a.clock = cfg.Clock
	} else {
		a.clock = frameclock.Default()
	}
	if cfg.TargetFrameRate > 0 {
		a.target = min(cfg.TargetFrameRate, MaxFrameRate)
	} else {
		a.ignoreCap = true
	}
	bus := cfg.Bus
	if bus == nil {
		bus = visibility.Shared()
	}
	a.detach = bus.Attach(visibility.Listener{
		OnHidden: a.handleHidden,
		OnShown:  a.handleShown,
	})
	return a
}

// Animate is the convenience entry point: construct an Animator from
// cfg, subscribe fn to frame events, start it, and return it for
// further control.
func Animate(fn FrameFunc, cfg Config) *Animator {
	a := New(cfg)
	a.OnFrame(fn)
	a.Start()
	return a
}
