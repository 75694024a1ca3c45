package frameclock

import (
	"sync"
	"time"
)

// Manual is a Clock with controllable time for deterministic tests.
// Advance moves the fake time forward and dispatches one frame batch,
// so a test can express "33ms pass, then the next frame tick arrives".
// All methods are safe for concurrent use.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	pending []func()
}

// NewManual returns a Manual clock starting at a fixed epoch.
func NewManual() *Manual {
	return &Manual{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to an exact time without dispatching.
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// ScheduleNextFrame queues fn for the next Advance or Fire.
func (c *Manual) ScheduleNextFrame(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.pending = append(c.pending, fn)
	c.mu.Unlock()
}

// Advance moves the clock forward by d and dispatches the callbacks
// that were pending when it was called. Callbacks scheduled during the
// dispatch wait for the next Advance.
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	batch := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, fn := range batch {
		fn()
	}
}

// Fire dispatches one batch without moving time.
func (c *Manual) Fire() {
	c.Advance(0)
}

// Pending reports how many callbacks await the next dispatch.
func (c *Manual) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
