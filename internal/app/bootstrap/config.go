// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/sharetable/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ShareTable.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_secret, etc.
//   - Environment variables: SHARETABLE_MONGO_URI, SHARETABLE_TOKEN_SECRET, etc.
//   - Command-line flags: --mongo_uri, --token_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_db", Default: "sharetable", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Auth configuration
	{Name: "token_secret", Default: "", Desc: "JWT signing secret (required; startup fails if unset)"},
	{Name: "token_ttl", Default: "168h", Desc: "Issued token lifetime (e.g., 168h, 24h)"},
	{Name: "api_key", Default: "", Desc: "Static API key for key-gated endpoints"},
	{Name: "auth_mode", Default: "token", Desc: "Post-creation gate: 'token' or 'key'"},

	// Query limits
	{Name: "page_limit", Default: 100, Desc: "Hard cap for listing and nearby results"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SHARETABLE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SHARETABLE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_db"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenSecret: appValues.String("token_secret"),
		TokenTTL:    appValues.Duration("token_ttl", 168*time.Hour),
		APIKey:      appValues.String("api_key"),
		AuthMode:    appValues.String("auth_mode"),

		PageLimit: appValues.Int("page_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// ShareTable validates the MongoDB URI format to catch configuration
// errors early, and refuses to start without a token signing secret:
// there is no fallback value, because a baked-in default would mean
// every deployment shares the same key and every token is forgeable.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.TokenSecret == "" {
		logger.Error("token_secret is not set")
		return fmt.Errorf("token_secret must be set (SHARETABLE_TOKEN_SECRET)")
	}

	if appCfg.AuthMode != string(auth.ModeToken) && appCfg.AuthMode != string(auth.ModeKey) {
		return fmt.Errorf("auth_mode must be %q or %q, got %q", auth.ModeToken, auth.ModeKey, appCfg.AuthMode)
	}

	if appCfg.TokenTTL < 0 {
		return fmt.Errorf("token_ttl must not be negative, got %s", appCfg.TokenTTL)
	}

	if appCfg.PageLimit < 1 {
		return fmt.Errorf("page_limit must be at least 1, got %d", appCfg.PageLimit)
	}

	return nil
}
