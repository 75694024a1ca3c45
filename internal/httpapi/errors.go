package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"animd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// invalidRateError signals a rejected rate request for 400 mapping.
type invalidRateError struct{ fps float64 }

func (e invalidRateError) Error() string {
	return fmt.Sprintf("invalid target rate: %g fps", e.fps)
}

func errInvalidRate(fps float64) error { return invalidRateError{fps: fps} }

// IsInvalidRate reports whether err indicates a rejected rate request.
func IsInvalidRate(err error) bool {
	_, ok := err.(invalidRateError)
	return ok
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
