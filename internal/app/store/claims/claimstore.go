// internal/app/store/claims/claimstore.go
package claimstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/sharetable/internal/app/system/normalize"
	"github.com/dalemusser/sharetable/internal/domain/models"
	"github.com/google/uuid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errPostRequired = errors.New("post id is required")

// Store wraps the claims collection.
type Store struct {
	c *mongo.Collection
}

// New returns a Store bound to the claims collection of db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("claims")}
}

// Create inserts a claim against a post. Status defaults to accepted and
// an 8-char pickup code is generated when the caller does not supply one.
func (s *Store) Create(ctx context.Context, cl models.Claim) (models.Claim, error) {
	now := time.Now().UTC()

	cl.ID = primitive.NewObjectID()
	cl.ClaimerName = normalize.Name(cl.ClaimerName)
	cl.ClaimerPhone = normalize.Phone(cl.ClaimerPhone)
	if cl.Status == "" {
		cl.Status = models.ClaimStatusAccepted
	}
	if cl.PickupCode == "" {
		cl.PickupCode = uuid.New().String()[:8]
	}
	cl.CreatedAt = now
	cl.UpdatedAt = now

	if cl.PostID.IsZero() {
		return models.Claim{}, errPostRequired
	}

	if _, err := s.c.InsertOne(ctx, cl); err != nil {
		return models.Claim{}, err
	}
	return cl, nil
}

// ListByPost returns every claim recorded against a post, newest first.
func (s *Store) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Claim, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.c.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Claim
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
