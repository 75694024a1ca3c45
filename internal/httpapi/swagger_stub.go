//go:build !swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
)

// MountSwagger is a no-op by default. Build with -tags=swagger after
// generating docs (make swagger-gen) to serve the API docs UI.
func MountSwagger(r chi.Router) {}
