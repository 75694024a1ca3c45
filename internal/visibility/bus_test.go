package visibility

import "testing"

func TestAttachAndBroadcast(t *testing.T) {
	b := New()
	var hidden, shown int
	b.Attach(Listener{
		OnHidden: func() { hidden++ },
		OnShown:  func() { shown++ },
	})

	b.Hidden()
	b.Hidden()
	b.Shown()
	if hidden != 2 || shown != 1 {
		t.Fatalf("hidden=%d shown=%d", hidden, shown)
	}
}

func TestBroadcastOrderFollowsAttachOrder(t *testing.T) {
	b := New()
	var order []string
	b.Attach(Listener{OnHidden: func() { order = append(order, "a") }})
	b.Attach(Listener{OnHidden: func() { order = append(order, "b") }})
	b.Attach(Listener{OnHidden: func() { order = append(order, "c") }})

	b.Hidden()
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("order = %v", order)
	}
}

func TestDetachStopsDelivery(t *testing.T) {
	b := New()
	calls := 0
	detach := b.Attach(Listener{OnHidden: func() { calls++ }})
	if b.Len() != 1 {
		t.Fatalf("len = %d", b.Len())
	}

	detach()
	if b.Len() != 0 {
		t.Fatalf("len = %d after detach", b.Len())
	}
	b.Hidden()
	if calls != 0 {
		t.Fatalf("calls = %d for detached listener", calls)
	}

	// Idempotent.
	detach()
	if b.Len() != 0 {
		t.Fatalf("len = %d after double detach", b.Len())
	}
}

func TestDetachOnlyRemovesItsOwnListener(t *testing.T) {
	b := New()
	var first, second int
	d1 := b.Attach(Listener{OnShown: func() { first++ }})
	b.Attach(Listener{OnShown: func() { second++ }})

	d1()
	b.Shown()
	if first != 0 || second != 1 {
		t.Fatalf("first=%d second=%d", first, second)
	}
}

func TestSameCallbacksAttachedTwiceAreDistinct(t *testing.T) {
	b := New()
	calls := 0
	l := Listener{OnHidden: func() { calls++ }}
	d1 := b.Attach(l)
	b.Attach(l)

	b.Hidden()
	if calls != 2 {
		t.Fatalf("calls = %d with two attachments", calls)
	}
	d1()
	b.Hidden()
	if calls != 3 {
		t.Fatalf("calls = %d after detaching one", calls)
	}
}

func TestNilCallbacksAreSkipped(t *testing.T) {
	b := New()
	shown := 0
	b.Attach(Listener{OnShown: func() { shown++ }})
	b.Attach(Listener{}) // both nil
	b.Hidden()
	b.Shown()
	if shown != 1 {
		t.Fatalf("shown = %d", shown)
	}
}

func TestDetachDuringBroadcast(t *testing.T) {
	b := New()
	var detach func()
	calls := 0
	detach = b.Attach(Listener{OnHidden: func() {
		calls++
		detach()
	}})

	b.Hidden()
	b.Hidden()
	if calls != 1 {
		t.Fatalf("calls = %d, self-detach during broadcast failed", calls)
	}
}

func TestSharedReturnsSameBus(t *testing.T) {
	if Shared() != Shared() {
		t.Fatalf("Shared returned distinct buses")
	}
}
