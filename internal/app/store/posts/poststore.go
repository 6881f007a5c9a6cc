// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/sharetable/internal/app/system/limits"
	"github.com/dalemusser/sharetable/internal/app/system/normalize"
	"github.com/dalemusser/sharetable/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when the requested post does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrNotOpen is returned when a claim loses the open→claimed race:
	// the post exists but its status is no longer "open".
	ErrNotOpen = errors.New("post is not open")
)

var (
	errTitleRequired = errors.New("title is required")
	errBadServings   = errors.New("servings must be at least 1")
	errBadLocation   = errors.New("location must be a GeoJSON point")
)

// Store wraps the posts collection.
type Store struct {
	c *mongo.Collection
}

// New returns a Store bound to the posts collection of db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts")}
}

// Create inserts a new food post, defaulting status to open and stamping
// timestamps. Handlers validate request shape before calling; the guards
// here protect the collection's invariants no matter who calls.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	now := time.Now().UTC()

	p.ID = primitive.NewObjectID()
	p.Title = normalize.Name(p.Title)
	if p.Status == "" {
		p.Status = models.PostStatusOpen
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if p.Title == "" {
		return models.Post{}, errTitleRequired
	}
	if p.Servings < 1 {
		return models.Post{}, errBadServings
	}
	if p.Location.Type != "Point" || len(p.Location.Coordinates) != 2 {
		return models.Post{}, errBadLocation
	}

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// Recent returns the newest posts, all statuses, newest first. A
// non-positive or oversized limit falls back to the page cap.
func (s *Store) Recent(ctx context.Context, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > limits.PageSize() {
		limit = limits.PageSize()
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Nearby returns open posts within radiusMeters of (lng, lat),
// nearest first. $nearSphere orders results by distance, so no
// explicit sort is applied; the 2dsphere index on location is required.
func (s *Store) Nearby(ctx context.Context, lng, lat, radiusMeters float64, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > limits.PageSize() {
		limit = limits.PageSize()
	}

	filter := bson.M{
		"status": models.PostStatusOpen,
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lng, lat},
				},
				"$maxDistance": radiusMeters,
			},
		},
	}

	cur, err := s.c.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single post. Absent documents come back as ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ClaimOpen atomically flips an open post to claimed and returns the
// updated document. The status condition lives in the filter, so when N
// claimers race, the database picks exactly one winner; everyone else
// sees ErrNotOpen (post exists, already claimed) or ErrNotFound.
func (s *Store) ClaimOpen(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After)

	var p models.Post
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{
			"_id":    id,
			"status": models.PostStatusOpen,
		},
		bson.M{"$set": bson.M{
			"status":     models.PostStatusClaimed,
			"updated_at": time.Now().UTC(),
		}},
		opts,
	).Decode(&p)

	if err == mongo.ErrNoDocuments {
		// Lost the race or the post never existed; look again to tell
		// the caller which.
		n, cerr := s.c.CountDocuments(ctx, bson.M{"_id": id})
		if cerr != nil {
			return nil, cerr
		}
		if n == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrNotOpen
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Reopen compensates a failed claim by flipping a claimed post back to
// open. Only touches the document if it is still in the claimed state.
func (s *Store) Reopen(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":    id,
			"status": models.PostStatusClaimed,
		},
		bson.M{"$set": bson.M{
			"status":     models.PostStatusOpen,
			"updated_at": time.Now().UTC(),
		}},
	)
	return err
}
