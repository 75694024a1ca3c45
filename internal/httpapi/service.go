package httpapi

import (
	"time"

	"animd/internal/animator"
	"animd/internal/visibility"
	"animd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Status() types.StatusResponse
	Start() types.StatusResponse
	Pause() types.StatusResponse
	Resume() types.StatusResponse
	Stop() types.StatusResponse
	SetRate(req types.RateRequest) (types.StatusResponse, error)
	SetPolicy(req types.PolicyRequest) types.StatusResponse
	SetVisibility(hidden bool) types.StatusResponse
	Ready() bool
}

// animService adapts an Animator and its visibility bus to the Service
// interface. Lifecycle endpoints return the post-operation status so a
// caller always sees the state its request produced.
type animService struct {
	anim *animator.Animator
	bus  *visibility.Bus
}

// NewAnimatorService wires an Animator and its Bus into a Service.
func NewAnimatorService(a *animator.Animator, bus *visibility.Bus) Service {
	return &animService{anim: a, bus: bus}
}

func (s *animService) Status() types.StatusResponse {
	snap := s.anim.Snapshot()
	return types.StatusResponse{
		State:          string(snap.State),
		TargetFPS:      snap.TargetFrameRate,
		MeasuredFPS:    snap.MeasuredRate,
		IgnoreRateCap:  snap.IgnoreRateCap,
		PauseOnHidden:  snap.PauseOnHidden,
		ResumeOnShown:  snap.ResumeOnShown,
		Listeners:      s.bus.Len(),
		ServerTimeUnix: time.Now().Unix(),
	}
}

func (s *animService) Start() types.StatusResponse {
	s.anim.Start()
	return s.Status()
}

func (s *animService) Pause() types.StatusResponse {
	s.anim.Pause()
	return s.Status()
}

func (s *animService) Resume() types.StatusResponse {
	s.anim.Resume()
	return s.Status()
}

func (s *animService) Stop() types.StatusResponse {
	s.anim.Stop()
	return s.Status()
}

func (s *animService) SetRate(req types.RateRequest) (types.StatusResponse, error) {
	if req.IgnoreCap {
		s.anim.SetIgnoreRateCap()
		return s.Status(), nil
	}
	if req.FPS <= 0 {
		return types.StatusResponse{}, errInvalidRate(req.FPS)
	}
	s.anim.SetTargetFrameRate(req.FPS)
	return s.Status(), nil
}

func (s *animService) SetPolicy(req types.PolicyRequest) types.StatusResponse {
	if req.PauseOnHidden != nil {
		s.anim.SetPauseOnHidden(*req.PauseOnHidden)
	}
	if req.ResumeOnShown != nil {
		s.anim.SetResumeOnShown(*req.ResumeOnShown)
	}
	return s.Status()
}

func (s *animService) SetVisibility(hidden bool) types.StatusResponse {
	if hidden {
		s.bus.Hidden()
	} else {
		s.bus.Shown()
	}
	return s.Status()
}

func (s *animService) Ready() bool { return true }
