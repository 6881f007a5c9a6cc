// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/sharetable/internal/app/system/limits"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// ShareTable uses it to apply configured runtime limits.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	limits.SetPageSize(appCfg.PageLimit)

	logger.Info("sharetable ready",
		zap.String("auth_mode", appCfg.AuthMode),
		zap.Int("page_limit", limits.PageSize()))
	return nil
}
