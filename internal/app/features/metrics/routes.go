// internal/app/features/metrics/routes.go
package metrics

import "github.com/go-chi/chi/v5"

// Routes returns the router for the scrape endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeMetrics)
	return r
}
