package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dalemusser/sharetable/internal/app/system/indexes"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SetupTestDB connects to the MongoDB named by SHARETABLE_TEST_MONGO_URI
// (default mongodb://localhost:27017) and returns a uniquely named
// throwaway database that is dropped when the test finishes. Indexes are
// ensured up front so store tests see the same constraints production
// does (unique email, 2dsphere location). Tests are skipped when no
// MongoDB is reachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("SHARETABLE_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongodb unavailable: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongodb unavailable: %v", err)
	}

	db := client.Database("sharetable_test_" + uuid.New().String()[:8])

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("failed to ensure test indexes: %v", err)
	}

	return db
}

// TestContext returns a context with a timeout generous enough for any
// single store round-trip in tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
