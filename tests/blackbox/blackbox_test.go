// Package blackbox exercises the daemon through its HTTP surface only:
// a real animator on a manual clock behind the real router, driven with
// plain HTTP requests the way animctl or a UI would drive it.
package blackbox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"animd/internal/animator"
	"animd/internal/frameclock"
	"animd/internal/httpapi"
	"animd/internal/visibility"
	"animd/pkg/types"
)

type harness struct {
	srv   *httptest.Server
	clock *frameclock.Manual
	anim  *animator.Animator
	bus   *visibility.Bus
}

func newHarness(t *testing.T, fps float64) *harness {
	t.Helper()
	clock := frameclock.NewManual()
	bus := visibility.New()
	anim := animator.New(animator.Config{
		TargetFrameRate: fps,
		Clock:           clock,
		Bus:             bus,
	})
	mux := httpapi.NewMux(httpapi.NewAnimatorService(anim, bus))
	srv := httptest.NewServer(mux)
	t.Cleanup(func() {
		srv.Close()
		_ = anim.Close()
	})
	return &harness{srv: srv, clock: clock, anim: anim, bus: bus}
}

func (h *harness) request(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, h.srv.URL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func (h *harness) status(t *testing.T, method, path string, body any) types.StatusResponse {
	t.Helper()
	code, data := h.request(t, method, path, body)
	if code != http.StatusOK {
		t.Fatalf("%s %s: status %d: %s", method, path, code, data)
	}
	var st types.StatusResponse
	if err := json.Unmarshal(data, &st); err != nil {
		t.Fatalf("decode status: %v (%s)", err, data)
	}
	return st
}

func TestLifecycleOverHTTP(t *testing.T) {
	h := newHarness(t, 30)

	st := h.status(t, http.MethodGet, "/status", nil)
	if st.State != "stopped" || st.TargetFPS != 30 {
		t.Fatalf("initial status: %+v", st)
	}

	if st = h.status(t, http.MethodPost, "/start", nil); st.State != "running" {
		t.Fatalf("after start: %+v", st)
	}
	if st = h.status(t, http.MethodPost, "/pause", nil); st.State != "paused" {
		t.Fatalf("after pause: %+v", st)
	}
	if st = h.status(t, http.MethodPost, "/resume", nil); st.State != "running" {
		t.Fatalf("after resume: %+v", st)
	}
	if st = h.status(t, http.MethodPost, "/stop", nil); st.State != "stopped" {
		t.Fatalf("after stop: %+v", st)
	}
}

func TestFramesFlowWhileRunning(t *testing.T) {
	h := newHarness(t, 30)
	fired := 0
	h.anim.OnFrame(func(time.Duration) { fired++ })

	h.status(t, http.MethodPost, "/start", nil)
	h.clock.Advance(40 * time.Millisecond)
	h.clock.Advance(40 * time.Millisecond)
	if fired != 2 {
		t.Fatalf("fired = %d", fired)
	}

	st := h.status(t, http.MethodGet, "/status", nil)
	if st.MeasuredFPS != 25 {
		t.Fatalf("measured_fps = %v, want 25 at a 40ms cadence", st.MeasuredFPS)
	}

	h.status(t, http.MethodPost, "/pause", nil)
	h.clock.Advance(40 * time.Millisecond)
	if fired != 2 {
		t.Fatalf("fired = %d while paused", fired)
	}
}

func TestRateEndpoint(t *testing.T) {
	h := newHarness(t, 30)

	st := h.status(t, http.MethodPut, "/rate", types.RateRequest{FPS: 24})
	if st.TargetFPS != 24 || st.IgnoreRateCap {
		t.Fatalf("after rate 24: %+v", st)
	}

	// Clamped at the cap.
	st = h.status(t, http.MethodPut, "/rate", types.RateRequest{FPS: 240})
	if st.TargetFPS != animator.MaxFrameRate {
		t.Fatalf("after rate 240: %+v", st)
	}

	// Uncapped mode.
	st = h.status(t, http.MethodPut, "/rate", types.RateRequest{IgnoreCap: true})
	if !st.IgnoreRateCap {
		t.Fatalf("after ignore_cap: %+v", st)
	}

	// Invalid rate is a 400 with a structured error.
	code, data := h.request(t, http.MethodPut, "/rate", types.RateRequest{FPS: -5})
	if code != http.StatusBadRequest {
		t.Fatalf("rate -5: status %d: %s", code, data)
	}
	var e types.ErrorResponse
	if err := json.Unmarshal(data, &e); err != nil || e.Error == "" {
		t.Fatalf("error body: %s", data)
	}
}

func TestVisibilityEndpoint(t *testing.T) {
	h := newHarness(t, 30)
	h.status(t, http.MethodPost, "/start", nil)

	st := h.status(t, http.MethodPost, "/visibility", types.VisibilityRequest{Hidden: true})
	if st.State != "paused" {
		t.Fatalf("after hidden: %+v", st)
	}

	// Explicit resume is refused while the surface is hidden.
	if st = h.status(t, http.MethodPost, "/resume", nil); st.State != "paused" {
		t.Fatalf("resume while hidden: %+v", st)
	}

	st = h.status(t, http.MethodPost, "/visibility", types.VisibilityRequest{Hidden: false})
	if st.State != "running" {
		t.Fatalf("after shown: %+v", st)
	}
}

func TestPolicyEndpoint(t *testing.T) {
	h := newHarness(t, 30)
	h.status(t, http.MethodPost, "/start", nil)

	f := false
	st := h.status(t, http.MethodPut, "/policy", types.PolicyRequest{PauseOnHidden: &f})
	if st.PauseOnHidden {
		t.Fatalf("after policy: %+v", st)
	}

	st = h.status(t, http.MethodPost, "/visibility", types.VisibilityRequest{Hidden: true})
	if st.State != "running" {
		t.Fatalf("hidden should be ignored: %+v", st)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	h := newHarness(t, 30)

	code, data := h.request(t, http.MethodGet, "/healthz", nil)
	if code != http.StatusOK {
		t.Fatalf("healthz: %d %s", code, data)
	}
	code, _ = h.request(t, http.MethodGet, "/readyz", nil)
	if code != http.StatusOK {
		t.Fatalf("readyz: %d", code)
	}

	code, data = h.request(t, http.MethodGet, "/metrics", nil)
	if code != http.StatusOK {
		t.Fatalf("metrics: %d", code)
	}
	if !bytes.Contains(data, []byte("animd_http_requests_total")) {
		t.Fatalf("metrics output missing http counters")
	}
}

func TestMalformedRequests(t *testing.T) {
	h := newHarness(t, 30)

	// Wrong content type.
	resp, err := http.Post(h.srv.URL+"/visibility", "text/plain", bytes.NewReader([]byte("{}")))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Fatalf("text/plain visibility: %d", resp.StatusCode)
	}

	// Wrong method on a routed path.
	code, _ := h.request(t, http.MethodPost, "/rate", nil)
	if code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /rate: %d", code)
	}

	// Broken JSON.
	resp, err = http.Post(h.srv.URL+"/visibility", "application/json", bytes.NewReader([]byte("{oops")))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("broken json: %d", resp.StatusCode)
	}

	// Unknown route.
	code, _ = h.request(t, http.MethodGet, fmt.Sprintf("/no-such-%d", time.Now().Unix()), nil)
	if code != http.StatusNotFound {
		t.Fatalf("unknown route: %d", code)
	}
}
