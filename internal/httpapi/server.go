package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"animd/pkg/types"
)

// NewMux builds the control API router over svc.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Status())
	})

	lifecycle := func(op string, apply func() types.StatusResponse) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			st := apply()
			logOp(r, op, st.State)
			writeJSON(w, st)
		}
	}
	r.Post("/start", lifecycle("start", svc.Start))
	r.Post("/pause", lifecycle("pause", svc.Pause))
	r.Post("/resume", lifecycle("resume", svc.Resume))
	r.Post("/stop", lifecycle("stop", svc.Stop))

	r.Put("/rate", func(w http.ResponseWriter, r *http.Request) {
		var req types.RateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		st, err := svc.SetRate(req)
		if err != nil {
			if IsInvalidRate(err) {
				writeJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			if he, ok := err.(HTTPError); ok {
				writeJSONError(w, he.StatusCode(), he.Error())
				return
			}
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		logOp(r, "rate", st.State)
		writeJSON(w, st)
	})

	r.Put("/policy", func(w http.ResponseWriter, r *http.Request) {
		var req types.PolicyRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		writeJSON(w, svc.SetPolicy(req))
	})

	r.Post("/visibility", func(w http.ResponseWriter, r *http.Request) {
		var req types.VisibilityRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		st := svc.SetVisibility(req.Hidden)
		if req.Hidden {
			logOp(r, "hidden", st.State)
		} else {
			logOp(r, "shown", st.State)
		}
		writeJSON(w, st)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("starting"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodeJSON enforces the JSON content type and body limit, decoding
// into dst. It writes the error response itself and reports success.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
