// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: CoreConfig covers
// framework concerns like HTTP/HTTPS ports, TLS, logging level, and
// CORS. AppConfig is everything specific to ShareTable.
//
// The struct is passed to most lifecycle hooks, so any configuration
// needed during startup, request handling, or shutdown should live here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm in the pool

	// Auth configuration
	TokenSecret string        // JWT signing secret; startup fails if unset
	TokenTTL    time.Duration // Lifetime of issued tokens (default 7 days)
	APIKey      string        // Static key for key-gated endpoints (may be unset)
	AuthMode    string        // Post-creation gate: "token" or "key"

	// Query limits
	PageLimit int // Hard cap for listing and nearby results
}
