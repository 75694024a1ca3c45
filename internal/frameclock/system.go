package frameclock

import (
	"sync"
	"time"
)

// System is a real-time Clock backed by a single dispatch goroutine.
// Every cadence tick it drains the callbacks scheduled since the last
// tick and runs them in order. Serial execution on one goroutine means
// ticks of animators sharing a System never overlap.
//
// The same loop serves both the high-resolution cadence and the coarse
// fixed-delay fallback; the two differ only in the interval they are
// constructed with.
type System struct {
	interval time.Duration

	mu      sync.Mutex
	pending []func()

	done      chan struct{}
	closeOnce sync.Once
}

// NewSystem starts a System clock firing every interval. A non-positive
// interval falls back to DefaultInterval.
func NewSystem(interval time.Duration) *System {
	if interval <= 0 {
		interval = DefaultInterval
	}
	s := &System{
		interval: interval,
		done:     make(chan struct{}),
	}
	go s.loop()
	return s
}

// Now returns the wall-clock time.
func (s *System) Now() time.Time { return time.Now() }

// ScheduleNextFrame queues fn for the next cadence tick.
func (s *System) ScheduleNextFrame(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Close stops the dispatch loop. Callbacks still pending are dropped.
// Safe to call more than once.
func (s *System) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

func (s *System) loop() {
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			s.mu.Lock()
			batch := s.pending
			s.pending = nil
			s.mu.Unlock()
			for _, fn := range batch {
				fn()
			}
		}
	}
}
