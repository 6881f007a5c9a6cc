// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the root banner.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot handles GET / with a plain-text liveness banner.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ShareTable API is running"))
}
