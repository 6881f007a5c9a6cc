// internal/app/features/claims/handler.go
package claims

import (
	claimstore "github.com/dalemusser/sharetable/internal/app/store/claims"
	poststore "github.com/dalemusser/sharetable/internal/app/store/posts"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the claim endpoints. It talks to both
// stores: creating a claim flips the post's status in the same request.
type Handler struct {
	Claims  *claimstore.Store
	Posts   *poststore.Store
	Metrics *metrics.Collector
	ErrLog  *httperr.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, collector *metrics.Collector, errLog *httperr.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Claims:  claimstore.New(db),
		Posts:   poststore.New(db),
		Metrics: collector,
		ErrLog:  errLog,
		Log:     logger,
	}
}
