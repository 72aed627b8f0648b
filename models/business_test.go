package models

import "testing"

func TestDisplayRatingRequiresReviews(t *testing.T) {
	// A stored rating with no reviews behind it must not be shown.
	b := Business{Rating: 4.8, ReviewCount: 0}
	if rating, ok := b.DisplayRating(); ok || rating != 0 {
		t.Errorf("DisplayRating() = (%v, %v); want (0, false) with zero reviews", rating, ok)
	}

	b.ReviewCount = 12
	if rating, ok := b.DisplayRating(); !ok || rating != 4.8 {
		t.Errorf("DisplayRating() = (%v, %v); want (4.8, true)", rating, ok)
	}
}

func TestGeoPointAccessors(t *testing.T) {
	p := NewGeoPoint(23.1765, 77.5885)
	if p.Type != "Point" {
		t.Errorf("Type = %q; want Point", p.Type)
	}
	if p.Lat() != 23.1765 || p.Lng() != 77.5885 {
		t.Errorf("Lat/Lng = %v/%v; want 23.1765/77.5885", p.Lat(), p.Lng())
	}
	if !p.Valid() {
		t.Errorf("Valid() = false for a well-formed point")
	}

	var empty GeoPoint
	if empty.Valid() {
		t.Errorf("Valid() = true for an empty point")
	}
	if empty.Lat() != 0 || empty.Lng() != 0 {
		t.Errorf("empty point accessors should return 0")
	}
}
