// internal/app/features/accounts/handler.go
package accounts

import (
	userstore "github.com/dalemusser/sharetable/internal/app/store/users"
	"github.com/dalemusser/sharetable/internal/app/system/httperr"
	"github.com/dalemusser/sharetable/internal/app/system/ratelimit"
	"github.com/dalemusser/sharetable/internal/app/system/token"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for signup and login.
type Handler struct {
	Users   *userstore.Store
	Tokens  *token.Manager
	Limiter *ratelimit.CredentialLimiter
	ErrLog  *httperr.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, tokens *token.Manager, errLog *httperr.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:   userstore.New(db),
		Tokens:  tokens,
		Limiter: ratelimit.NewCredentialLimiter(),
		ErrLog:  errLog,
		Log:     logger,
	}
}
