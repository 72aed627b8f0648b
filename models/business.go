package models

import (
	"time"
)

// Business lifecycle statuses.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusPending   = "pending"
	StatusSuspended = "suspended"
)

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a latitude/longitude pair.
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Lat returns the latitude of the point, or 0 when the point is malformed.
func (g GeoPoint) Lat() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

// Lng returns the longitude of the point, or 0 when the point is malformed.
func (g GeoPoint) Lng() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Valid reports whether the point carries a usable coordinate pair.
func (g GeoPoint) Valid() bool {
	return len(g.Coordinates) == 2
}

type BusinessAddress struct {
	Street  string `bson:"street" json:"street,omitempty"`
	City    string `bson:"city" json:"city,omitempty"`
	State   string `bson:"state" json:"state,omitempty"`
	Pincode string `bson:"pincode" json:"pincode,omitempty"`
}

type BusinessContact struct {
	Phone   string `bson:"phone" json:"phone,omitempty"`
	Email   string `bson:"email" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// BusinessHours holds a single open/close window per weekday, keyed by the
// lowercase weekday name ("monday".."sunday"). Times are "15:04" local.
type BusinessHours map[string]DayHours

type DayHours struct {
	Open   string `bson:"open" json:"open"`
	Close  string `bson:"close" json:"close"`
	Closed bool   `bson:"closed" json:"closed"`
}

// Business is a single directory listing. The matcher treats it as a read-only
// snapshot; only the owner and admin workflows mutate it.
type Business struct {
	ID          string          `bson:"id" json:"id"`
	OwnerID     string          `bson:"ownerId" json:"ownerId,omitempty"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description" json:"description,omitempty"`
	Category    string          `bson:"category" json:"category"`
	Address     BusinessAddress `bson:"address" json:"address"`
	Contact     BusinessContact `bson:"contact" json:"contact"`
	Services    []string        `bson:"services" json:"services,omitempty"`
	Tags        []string        `bson:"tags" json:"tags,omitempty"`

	// Rating is only meaningful when ReviewCount > 0.
	Rating      float64 `bson:"rating" json:"rating"`
	ReviewCount int     `bson:"reviewCount" json:"reviewCount"`

	Verified bool `bson:"verified" json:"verified"`
	Featured bool `bson:"featured" json:"featured"`
	Premium  bool `bson:"premium" json:"premium"`

	Status      string        `bson:"status" json:"status"`
	Hours       BusinessHours `bson:"hours,omitempty" json:"hours,omitempty"`
	PriceRange  string        `bson:"priceRange,omitempty" json:"priceRange,omitempty"` // "", "budget", "moderate", "premium"
	Images      []string      `bson:"images,omitempty" json:"images,omitempty"`
	LocationGeo GeoPoint      `bson:"locationGeo" json:"locationGeo"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// DisplayRating returns the rating to show, honouring the no-reviews rule.
func (b *Business) DisplayRating() (float64, bool) {
	if b.ReviewCount <= 0 {
		return 0, false
	}
	return b.Rating, true
}

type Review struct {
	ReviewID   string    `bson:"reviewId" json:"reviewId"`
	BusinessID string    `bson:"businessId" json:"businessId"`
	UserID     string    `bson:"userId" json:"userId"`
	Rating     float64   `bson:"rating" json:"rating"` // Expected value between 1 and 5.
	Comment    string    `bson:"comment" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
