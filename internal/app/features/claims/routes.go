// internal/app/features/claims/routes.go
package claims

import (
	"github.com/dalemusser/sharetable/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the claims subrouter. Every claim operation sits
// behind the static-key gate.
func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(gate.RequireAPIKey)

		pr.Post("/", h.HandleCreate)
		pr.Get("/", h.HandleList)
	})

	return r
}
