package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/sharetable/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user with a bcrypt hash of password.
// MinCost keeps test runs fast; production hashing uses its own cost.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		EmailFold:    text.Fold(email),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateOpenPost inserts an open food post at (lng, lat).
func (f *Fixtures) CreateOpenPost(ctx context.Context, title string, lng, lat float64) models.Post {
	f.t.Helper()
	return f.CreatePostWithStatus(ctx, title, lng, lat, models.PostStatusOpen)
}

// CreatePostWithStatus inserts a food post in the given status.
func (f *Fixtures) CreatePostWithStatus(ctx context.Context, title string, lng, lat float64, status string) models.Post {
	f.t.Helper()

	now := time.Now().UTC()
	post := models.Post{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Servings:  4,
		Location:  models.NewGeoPoint(lng, lat),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("posts").InsertOne(ctx, post)
	if err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}

	return post
}

// CreateClaim inserts a claim against the given post.
func (f *Fixtures) CreateClaim(ctx context.Context, postID primitive.ObjectID) models.Claim {
	f.t.Helper()

	now := time.Now().UTC()
	claim := models.Claim{
		ID:          primitive.NewObjectID(),
		PostID:      postID,
		ClaimerName: "Test Claimer",
		PickupCode:  "testcode",
		Status:      models.ClaimStatusAccepted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := f.db.Collection("claims").InsertOne(ctx, claim)
	if err != nil {
		f.t.Fatalf("failed to create test claim: %v", err)
	}

	return claim
}
