// Package animator provides a controllable animation loop: a lifecycle
// state machine (Stopped, Running, Paused) around a frame-rate-throttled
// tick chain driven by an injected frame clock. It is structured into
// small files by concern:
//
//   - animator.go: core Animator type, getters, Snapshot, Close.
//   - config.go: Config and package defaults; New applies defaults.
//   - types.go: State, Snapshot, handler types.
//   - lifecycle.go: Start/Pause/Resume/Stop and visibility reactions.
//   - tick.go: the self-rescheduling tick chain and throttling math.
//   - registry.go: generic ordered subscriber registry.
//   - subscribe.go: per-event On* subscription entry points.
//
// Invalid transitions (double start, pause while stopped, resume while
// not paused) are silent no-ops rather than errors. A pause caused by
// the visibility bus blocks Resume until the matching shown broadcast.
//
// Each animator is attached to a visibility bus for its whole life;
// Close detaches it and stops the loop.
package animator
