// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	accountsfeature "github.com/dalemusser/sharetable/internal/app/features/accounts"
	claimsfeature "github.com/dalemusser/sharetable/internal/app/features/claims"
	healthfeature "github.com/dalemusser/sharetable/internal/app/features/health"
	homefeature "github.com/dalemusser/sharetable/internal/app/features/home"
	metricsfeature "github.com/dalemusser/sharetable/internal/app/features/metrics"
	postsfeature "github.com/dalemusser/sharetable/internal/app/features/posts"
	"github.com/dalemusser/sharetable/internal/app/system/auth"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/metrics"
	"github.com/dalemusser/sharetable/internal/app/system/token"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// ShareTable builds the shared token manager and write gate, registers
// the Prometheus collector, and mounts feature routers for every part
// of the API: home, health, accounts, posts, claims, and metrics.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Token manager and write gate shared by the guarded routes.
	tokens := token.NewManager(appCfg.TokenSecret, appCfg.TokenTTL)
	gate := auth.NewGate(auth.Mode(appCfg.AuthMode), tokens, appCfg.APIKey, logger)

	// Error logger for handlers.
	errLog := httperr.NewErrorLogger(logger)

	// Private metrics registry; the collector's middleware observes
	// every request that reaches the router.
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	r := chi.NewRouter()
	r.Use(collector.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.ShareTableMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Root banner
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Signup / login
	accountsHandler := accountsfeature.NewHandler(deps.ShareTableMongoDatabase, tokens, errLog, logger)
	r.Mount("/auth", accountsfeature.Routes(accountsHandler))

	// Food posts. /api/food is the same router at the path the first
	// clients shipped with.
	postsHandler := postsfeature.NewHandler(deps.ShareTableMongoDatabase, collector, errLog, logger)
	r.Mount("/posts", postsfeature.Routes(postsHandler, gate))
	r.Mount("/api/food", postsfeature.Routes(postsHandler, gate))

	// Claims
	claimsHandler := claimsfeature.NewHandler(deps.ShareTableMongoDatabase, collector, errLog, logger)
	r.Mount("/claims", claimsfeature.Routes(claimsHandler, gate))

	// Prometheus scrape endpoint
	r.Mount("/metrics", metricsfeature.Routes(metricsfeature.NewHandler(registry)))

	return r, nil
}
