// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account that can sign in and post food.
//
// PasswordHash and EmailFold are storage-only fields: they are never
// serialized into API responses. Email uniqueness is enforced on the
// folded form, so "Ana@Example.com" and "ana@example.com " collide.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	EmailFold string             `bson:"email_fold" json:"-"` // lowercase, diacritics-stripped

	PasswordHash string `bson:"password_hash" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
