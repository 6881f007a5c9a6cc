// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/sharetable/internal/app/system/indexes"
	"github.com/dalemusser/sharetable/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// connectAttempts bounds how long startup waits for MongoDB: three
// tries with doubling backoff, then the boot sequence aborts.
const (
	connectAttempts     = 3
	connectInitialDelay = time.Second
)

// ConnectDB establishes the MongoDB connection the whole app shares.
//
// The client is opened once and handed around through DBDeps; nothing
// reconnects per request. Startup never proceeds against a dead
// database: each attempt is verified with a bounded ping, and after the
// final failed attempt the error aborts the boot sequence.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	var lastErr error
	delay := connectInitialDelay

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()
			if err == nil {
				logger.Info("connected to MongoDB",
					zap.String("database", appCfg.MongoDatabase),
					zap.Int("attempt", attempt))
				return DBDeps{
					ShareTableMongoClient:   client,
					ShareTableMongoDatabase: client.Database(appCfg.MongoDatabase),
				}, nil
			}
			// Half-open client: close it before the next attempt.
			_ = client.Disconnect(ctx)
		}
		lastErr = err

		if attempt < connectAttempts {
			logger.Warn("MongoDB connection failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("retry_in", delay),
				zap.Error(err))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return DBDeps{}, ctx.Err()
			}
			delay *= 2
		}
	}

	logger.Error("could not connect to MongoDB", zap.Error(lastErr))
	return DBDeps{}, fmt.Errorf("connect to MongoDB after %d attempts: %w", connectAttempts, lastErr)
}

// EnsureSchema reconciles the indexes the queries depend on: the
// unique email fold on users, the 2dsphere location index on posts,
// and the claim lookup index.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ensureCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	if err := indexes.EnsureAll(ensureCtx, deps.ShareTableMongoDatabase); err != nil {
		logger.Error("index reconciliation failed", zap.Error(err))
		return err
	}
	logger.Info("database indexes ensured")
	return nil
}
