// internal/app/features/posts/routes.go
package posts

import (
	"github.com/dalemusser/sharetable/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter for food posts. Reads are public;
// creation goes through the configured writer gate.
func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Get("/nearby", h.HandleNearby)
	r.Get("/{id}", h.HandleGet)
	r.With(gate.RequireWriter).Post("/", h.HandleCreate)
	return r
}
