package types

// StatusResponse is returned by GET /status and by every lifecycle
// endpoint after applying its operation.
type StatusResponse struct {
	// Lifecycle state of the animator (stopped, running, paused).
	// example: running
	State string `json:"state" example:"running"`
	// Configured throttle target in frames per second; 0 when unset.
	// example: 30
	TargetFPS float64 `json:"target_fps" example:"30"`
	// Last observed instantaneous rate; 0 before the first fired frame.
	// example: 29.4
	MeasuredFPS float64 `json:"measured_fps" example:"29.4"`
	// True when every tick fires regardless of elapsed time.
	// example: false
	IgnoreRateCap bool `json:"ignore_rate_cap" example:"false"`
	// True when hidden broadcasts pause the animator.
	// example: true
	PauseOnHidden bool `json:"pause_on_hidden" example:"true"`
	// True when shown broadcasts resume the animator.
	// example: true
	ResumeOnShown bool `json:"resume_on_shown" example:"true"`
	// Number of listeners attached to the visibility bus.
	// example: 1
	Listeners int `json:"listeners" example:"1"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// RateRequest is the payload for PUT /rate.
type RateRequest struct {
	// Desired target rate in frames per second, clamped to the server
	// maximum. Required unless ignore_cap is set.
	// example: 30
	FPS float64 `json:"fps" example:"30"`
	// When true, disable throttling entirely: every tick fires.
	// example: false
	IgnoreCap bool `json:"ignore_cap,omitempty" example:"false"`
}

// VisibilityRequest is the payload for POST /visibility.
type VisibilityRequest struct {
	// True to broadcast became-hidden, false to broadcast became-visible.
	// example: true
	Hidden bool `json:"hidden" example:"true"`
}

// PolicyRequest is the payload for PUT /policy.
type PolicyRequest struct {
	// Update the pause-on-hidden policy when present.
	PauseOnHidden *bool `json:"pause_on_hidden,omitempty"`
	// Update the resume-on-shown policy when present.
	ResumeOnShown *bool `json:"resume_on_shown,omitempty"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
