// internal/app/features/posts/handler.go
package posts

import (
	poststore "github.com/dalemusser/sharetable/internal/app/store/posts"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the food-post endpoints.
type Handler struct {
	Posts   *poststore.Store
	Metrics *metrics.Collector
	ErrLog  *httperr.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, collector *metrics.Collector, errLog *httperr.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Posts:   poststore.New(db),
		Metrics: collector,
		ErrLog:  errLog,
		Log:     logger,
	}
}
