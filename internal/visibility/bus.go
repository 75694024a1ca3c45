// Package visibility broadcasts surface-visibility transitions to every
// attached animator. The bus aggregates however many host signals exist
// into two logical events, hidden and shown, and fans each out to its
// listeners in attach order.
package visibility

import "sync"

// Listener receives visibility broadcasts. Either func may be nil.
type Listener struct {
	OnHidden func()
	OnShown  func()
}

type entry struct {
	id uint64
	l  Listener
}

// Bus is a visibility dispatcher. The zero value is not usable; call New.
type Bus struct {
	mu      sync.Mutex
	entries []entry
	nextID  uint64
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{}
}

// Attach registers l and returns a detach func. Detaching is idempotent;
// a detached listener receives no further broadcasts.
func (b *Bus) Attach(l Listener) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.entries = append(b.entries, entry{id: id, l: l})
	b.mu.Unlock()
	return func() { b.detach(id) }
}

func (b *Bus) detach(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.entries {
		if e.id == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Hidden broadcasts the became-hidden event.
func (b *Bus) Hidden() {
	for _, l := range b.snapshot() {
		if l.OnHidden != nil {
			l.OnHidden()
		}
	}
}

// Shown broadcasts the became-visible event.
func (b *Bus) Shown() {
	for _, l := range b.snapshot() {
		if l.OnShown != nil {
			l.OnShown()
		}
	}
}

// Len reports the number of attached listeners.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// snapshot copies the listener list so broadcasts run without the lock
// held; a handler may attach or detach listeners mid-broadcast.
func (b *Bus) snapshot() []Listener {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Listener, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.l
	}
	return out
}

var (
	sharedOnce sync.Once
	sharedBus  *Bus
)

// Shared returns the lazily-created process-wide bus. Animators attach
// here by default when no bus is injected at construction.
func Shared() *Bus {
	sharedOnce.Do(func() { sharedBus = New() })
	return sharedBus
}
