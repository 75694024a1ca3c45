package animator

// OnFrame subscribes fn to frame fires; fn receives the elapsed time
// since the previous fire. The returned func removes exactly this
// subscription and is safe to call more than once. Subscribers fire in
// registration order.
func (a *Animator) OnFrame(fn FrameFunc) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	a.mu.Lock()
	id := a.frame.add(fn)
	a.mu.Unlock()
	return func() {
		a.mu.Lock()
		a.frame.remove(id)
		a.mu.Unlock()
	}
}

// OnStart subscribes fn to Stopped -> Running transitions.
func (a *Animator) OnStart(fn func()) (unsubscribe func()) {
	return a.on(&a.started, fn)
}

// OnPause subscribes fn to Running -> Paused transitions, including
// those forced by hidden broadcasts.
func (a *Animator) OnPause(fn func()) (unsubscribe func()) {
	return a.on(&a.pauses, fn)
}

// OnResume subscribes fn to Paused -> Running transitions.
func (a *Animator) OnResume(fn func()) (unsubscribe func()) {
	return a.on(&a.resumes, fn)
}

// OnStop subscribes fn to transitions into Stopped.
func (a *Animator) OnStop(fn func()) (unsubscribe func()) {
	return a.on(&a.stops, fn)
}

func (a *Animator) on(r *registry[func()], fn func()) func() {
	if fn == nil {
		return func() {}
	}
	a.mu.Lock()
	id := r.add(fn)
	a.mu.Unlock()
	return func() {
		a.mu.Lock()
		r.remove(id)
		a.mu.Unlock()
	}
}
