// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON Point as stored in MongoDB.
//
// Coordinates are ordered [longitude, latitude] per GeoJSON, the reverse of
// the lat/lng order used in request parameters. Build values with NewGeoPoint
// so the ordering is decided in exactly one place.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON Point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Lng returns the longitude (first coordinate), or 0 if malformed.
func (p GeoPoint) Lng() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[0]
}

// Lat returns the latitude (second coordinate), or 0 if malformed.
func (p GeoPoint) Lat() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[1]
}

// Post is a surplus food offer on the board.
//
// CreatedBy is a weak reference: it records which account posted the food
// when the token gate produced an identity, and is nil for posts created
// through the static-key gate. Nothing cascades through it.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Servings int                `bson:"servings" json:"servings"`

	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	Location     GeoPoint   `bson:"location" json:"location"`
	Address      string     `bson:"address,omitempty" json:"address,omitempty"`
	ContactName  string     `bson:"contact_name,omitempty" json:"contact_name,omitempty"`
	ContactPhone string     `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	ReadyUntil   *time.Time `bson:"ready_until,omitempty" json:"ready_until,omitempty"`

	Status    string              `bson:"status" json:"status"` // see statuses.go
	CreatedBy *primitive.ObjectID `bson:"created_by,omitempty" json:"created_by,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
