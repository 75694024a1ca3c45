package httpapi

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"animd/internal/animator"
	"animd/internal/frameclock"
	"animd/internal/visibility"
)

func TestObserveAnimator(t *testing.T) {
	clock := frameclock.NewManual()
	a := animator.New(animator.Config{TargetFrameRate: 30, Clock: clock, Bus: visibility.New()})
	defer a.Close()

	cancel := ObserveAnimator(a)
	defer cancel()

	startBefore := testutil.ToFloat64(lifecycleTransitionsTotal.WithLabelValues("start"))
	framesBefore := testutil.ToFloat64(framesFiredTotal)

	a.Start()
	clock.Advance(40 * time.Millisecond)

	if got := testutil.ToFloat64(lifecycleTransitionsTotal.WithLabelValues("start")); got != startBefore+1 {
		t.Fatalf("start transitions = %v, want %v", got, startBefore+1)
	}
	if got := testutil.ToFloat64(framesFiredTotal); got != framesBefore+1 {
		t.Fatalf("frames fired = %v, want %v", got, framesBefore+1)
	}
	if got := testutil.ToFloat64(measuredFPS); got < 24 || got > 26 {
		t.Fatalf("measured fps gauge = %v", got)
	}

	// After cancel the counters stop moving even though frames keep firing.
	after := testutil.ToFloat64(framesFiredTotal)
	cancel()
	a.Stop()
	a.Start()
	clock.Advance(40 * time.Millisecond)
	if got := testutil.ToFloat64(framesFiredTotal); got != after {
		t.Fatalf("frames fired after cancel = %v, want %v", got, after)
	}
}
