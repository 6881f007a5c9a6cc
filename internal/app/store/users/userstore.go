// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/sharetable/internal/app/system/normalize"
	"github.com/dalemusser/sharetable/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateEmail is returned when a create would collide with an
// existing account's email (case-insensitive).
var ErrDuplicateEmail = errors.New("a user with this email already exists")

var (
	errEmailRequired = errors.New("email is required")
	errHashRequired  = errors.New("password hash is required")
)

// Store wraps the users collection.
type Store struct {
	c *mongo.Collection
}

// New returns a Store bound to the users collection of db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID fetches a single user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail fetches a user by e-mail address. The lookup goes through
// the folded shadow field, so "Ana@Example.com" and "ana@example.com"
// resolve to the same account.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	fold := text.Fold(normalize.Email(email))
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email_fold": fold}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The caller supplies the bcrypt hash; the
// store normalizes name and email, maintains the folded email shadow,
// and stamps both timestamps. A unique-index collision comes back as
// ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.Email = normalize.Email(u.Email)
	u.EmailFold = text.Fold(u.Email)

	if u.Email == "" {
		return models.User{}, errEmailRequired
	}
	if u.PasswordHash == "" {
		return models.User{}, errHashRequired
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}
