// internal/domain/models/claim.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claim records a commitment to pick up a specific food post.
//
// A claim can only be created while its post is open; creating one flips
// the post to claimed in the same request. PickupCode is a short
// server-generated code the claimer shows at pickup.
type Claim struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID primitive.ObjectID `bson:"post_id" json:"post_id"`

	ClaimerName  string `bson:"claimer_name,omitempty" json:"claimer_name,omitempty"`
	ClaimerPhone string `bson:"claimer_phone,omitempty" json:"claimer_phone,omitempty"`
	Note         string `bson:"note,omitempty" json:"note,omitempty"`
	PickupCode   string `bson:"pickup_code" json:"pickup_code"`

	Status string `bson:"status" json:"status"` // see statuses.go

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
