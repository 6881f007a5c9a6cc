// internal/app/features/metrics/handler.go
package metrics

import (
	"net/http"

	sysmetrics "github.com/dalemusser/sharetable/internal/app/system/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler serves the Prometheus scrape endpoint for the app's private
// registry.
type Handler struct {
	scrape http.Handler
}

// NewHandler creates a handler exposing the given gatherer.
func NewHandler(gatherer prometheus.Gatherer) *Handler {
	return &Handler{scrape: sysmetrics.Handler(gatherer)}
}

// ServeMetrics handles GET /metrics.
func (h *Handler) ServeMetrics(w http.ResponseWriter, r *http.Request) {
	h.scrape.ServeHTTP(w, r)
}
