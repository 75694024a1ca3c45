package animator

import "time"

// State represents the lifecycle state of an Animator.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// FrameFunc receives the elapsed time since the previous frame fire.
type FrameFunc func(delta time.Duration)

// Snapshot is a read-only projection of an Animator's state.
type Snapshot struct {
	State           State
	TargetFrameRate float64
	MeasuredRate    float64
	IgnoreRateCap   bool
	PauseOnHidden   bool
	ResumeOnShown   bool
}
