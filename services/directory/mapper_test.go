package directory

import (
	"testing"

	"betulbuzz/models"
)

func TestMapPlaceDerivesTaxonomy(t *testing.T) {
	ref := models.ReferenceLocation{Lat: 23.1765, Lng: 77.5885, Label: "Betul, Madhya Pradesh"}
	place := models.PlaceResult{
		PlaceID:          "abc123",
		Name:             "Betul Biryani House",
		Types:            []string{"restaurant", "meal_delivery", "point_of_interest"},
		Rating:           4.2,
		UserRatingsTotal: 31,
		Vicinity:         "Main Road, Betul",
		PriceLevel:       2,
		Geometry: models.PlaceGeometry{
			Location: models.PlaceLatLng{Lat: 23.1780, Lng: 77.5900},
		},
	}

	results := MapPlaces([]models.PlaceResult{place}, ref)
	if len(results) != 1 {
		t.Fatalf("MapPlaces returned %d results; want 1", len(results))
	}
	got := results[0]

	if got.Category != "Restaurant & Food" {
		t.Errorf("category = %q; want Restaurant & Food", got.Category)
	}
	if len(got.Services) == 0 {
		t.Errorf("no services derived from place types")
	}
	foundDelivery := false
	for _, s := range got.Services {
		if s == "Home Delivery" {
			foundDelivery = true
		}
	}
	if !foundDelivery {
		t.Errorf("services %v missing Home Delivery", got.Services)
	}
	if got.PriceRange != "moderate" {
		t.Errorf("price range = %q; want moderate", got.PriceRange)
	}
	if got.Contact.Email != notProvided || got.Address.Pincode != notProvided {
		t.Errorf("missing placeholder values for unavailable fields")
	}
	if got.ID != "gplace-abc123" {
		t.Errorf("id = %q; want gplace-abc123", got.ID)
	}
	if got.DistanceKm == nil {
		t.Fatalf("mapped place carries no distance")
	}
	if *got.DistanceKm > 1 {
		t.Errorf("distance = %.3f km; want under 1 km", *got.DistanceKm)
	}
	if got.Status != models.StatusActive {
		t.Errorf("status = %q; want active", got.Status)
	}
}

func TestMapPlaceUnknownTypesLandInOther(t *testing.T) {
	ref := models.ReferenceLocation{Lat: 23.1765, Lng: 77.5885}
	place := models.PlaceResult{
		PlaceID: "zzz",
		Name:    "Mystery Spot",
		Types:   []string{"point_of_interest", "establishment"},
	}

	got := MapPlaces([]models.PlaceResult{place}, ref)[0]
	if got.Category != "Other" {
		t.Errorf("category = %q; want Other", got.Category)
	}
}
