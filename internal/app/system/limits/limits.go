// internal/app/system/limits/limits.go
package limits

import "sync"

// Request and query limits.
// These keep a single request from dragging the whole process around.
const (
	// MaxBodySize is the maximum accepted JSON request body.
	MaxBodySize = 1 << 20 // 1 MB

	// DefaultPageSize is the page cap used when no page_limit is
	// configured.
	DefaultPageSize = 100

	// DefaultRadiusKm is the nearby-search radius when the request
	// does not supply one.
	DefaultRadiusKm = 10.0

	// MaxRadiusKm bounds the nearby-search radius. Larger requests are
	// clamped rather than rejected.
	MaxRadiusKm = 500.0
)

var (
	mu       sync.RWMutex
	pageSize = DefaultPageSize
)

// PageSize returns the hard cap for listing and nearby results.
// It is a ceiling, not a cursor: there is no pagination beyond it.
func PageSize() int {
	mu.RLock()
	defer mu.RUnlock()
	return pageSize
}

// SetPageSize overrides the page cap (config key page_limit). Call
// during startup, before handlers are serving; values below 1 are
// ignored.
func SetPageSize(n int) {
	if n < 1 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	pageSize = n
}
