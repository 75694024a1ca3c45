package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"animd/internal/animator"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "animd",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "animd",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	framesFiredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "animd",
			Subsystem: "animator",
			Name:      "frames_fired_total",
			Help:      "Total frame fires (ticks that invoked subscribers)",
		},
	)

	frameDeltaSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "animd",
			Subsystem: "animator",
			Name:      "frame_delta_seconds",
			Help:      "Elapsed time between consecutive frame fires",
			Buckets:   []float64{.008, .016, .033, .05, .1, .25, .5, 1},
		},
	)

	measuredFPS = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "animd",
			Subsystem: "animator",
			Name:      "measured_fps",
			Help:      "Last observed instantaneous frame rate",
		},
	)

	lifecycleTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "animd",
			Subsystem: "animator",
			Name:      "lifecycle_transitions_total",
			Help:      "Total lifecycle transitions by kind",
		},
		[]string{"transition"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal, httpRequestDuration,
		framesFiredTotal, frameDeltaSeconds, measuredFPS,
		lifecycleTransitionsTotal,
	)
}

// ObserveAnimator feeds the animator metrics from a's own subscription
// registries and returns a func that unsubscribes everything.
func ObserveAnimator(a *animator.Animator) func() {
	offs := []func(){
		a.OnFrame(func(delta time.Duration) {
			framesFiredTotal.Inc()
			frameDeltaSeconds.Observe(delta.Seconds())
			measuredFPS.Set(a.MeasuredFrameRate())
		}),
		a.OnStart(func() { lifecycleTransitionsTotal.WithLabelValues("start").Inc() }),
		a.OnPause(func() { lifecycleTransitionsTotal.WithLabelValues("pause").Inc() }),
		a.OnResume(func() { lifecycleTransitionsTotal.WithLabelValues("resume").Inc() }),
		a.OnStop(func() { lifecycleTransitionsTotal.WithLabelValues("stop").Inc() }),
	}
	return func() {
		for _, off := range offs {
			off()
		}
	}
}

// statusRecorder wraps http.ResponseWriter to capture status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware instruments requests for Prometheus
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := routePatternOrPath(r)
		method := r.Method

		sr := &statusRecorder{ResponseWriter: w, status: 200}
		start := time.Now()
		next.ServeHTTP(sr, r)
		statusLabel := itoa(sr.status)
		dur := time.Since(start).Seconds()
		httpRequestsTotal.WithLabelValues(path, method, statusLabel).Inc()
		httpRequestDuration.WithLabelValues(path, method, statusLabel).Observe(dur)
	})
}

// routePatternOrPath returns the chi route pattern if available, otherwise
// falls back to URL path. This avoids high-cardinality label values.
func routePatternOrPath(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// fast integer to ascii for small set of status codes
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
