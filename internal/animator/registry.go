package animator

// registry is an ordered list of subscriber callbacks. Each add hands
// out a unique token; removal by token takes out that entry only, so
// the same callback added twice holds two independent subscriptions.
// Removing an unknown token is a no-op.
type registry[T any] struct {
	entries []regEntry[T]
	nextID  uint64
}

type regEntry[T any] struct {
	id uint64
	fn T
}

func (r *registry[T]) add(fn T) uint64 {
	r.nextID++
	r.entries = append(r.entries, regEntry[T]{id: r.nextID, fn: fn})
	return r.nextID
}

func (r *registry[T]) remove(id uint64) {
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// snapshot copies the callbacks in registration order so they can be
// invoked without holding the animator lock.
func (r *registry[T]) snapshot() []T {
	if len(r.entries) == 0 {
		return nil
	}
	out := make([]T, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.fn
	}
	return out
}

func (r *registry[T]) len() int { return len(r.entries) }
