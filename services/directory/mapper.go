package directory

import (
	"strings"
	"time"

	"betulbuzz/models"
)

// placeholder used for fields the external source does not provide.
const notProvided = "Not available"

// placeTypeCategories maps Google place types onto the directory's category
// taxonomy. Unmapped types land in "Other".
var placeTypeCategories = map[string]string{
	"restaurant":         "Restaurant & Food",
	"food":               "Restaurant & Food",
	"cafe":               "Restaurant & Food",
	"bakery":             "Restaurant & Food",
	"meal_takeaway":      "Restaurant & Food",
	"meal_delivery":      "Restaurant & Food",
	"hospital":           "Healthcare",
	"doctor":             "Healthcare",
	"pharmacy":           "Healthcare",
	"dentist":            "Healthcare",
	"physiotherapist":    "Healthcare",
	"school":             "Education",
	"university":         "Education",
	"library":            "Education",
	"store":              "Retail & Shopping",
	"shopping_mall":      "Retail & Shopping",
	"supermarket":        "Retail & Shopping",
	"clothing_store":     "Retail & Shopping",
	"electronics_store":  "Retail & Shopping",
	"beauty_salon":       "Beauty & Wellness",
	"hair_care":          "Beauty & Wellness",
	"spa":                "Beauty & Wellness",
	"gym":                "Beauty & Wellness",
	"car_repair":         "Automotive",
	"car_dealer":         "Automotive",
	"car_wash":           "Automotive",
	"gas_station":        "Automotive",
	"plumber":            "Home Services",
	"electrician":        "Home Services",
	"painter":            "Home Services",
	"locksmith":          "Home Services",
	"lawyer":             "Professional Services",
	"accounting":         "Professional Services",
	"real_estate_agency": "Professional Services",
	"insurance_agency":   "Professional Services",
	"lodging":            "Hotels & Travel",
	"travel_agency":      "Hotels & Travel",
	"movie_theater":      "Entertainment",
	"amusement_park":     "Entertainment",
	"night_club":         "Entertainment",
}

// placeTypeServices derives coarse service tags from place types.
var placeTypeServices = map[string][]string{
	"meal_takeaway": {"Takeaway"},
	"meal_delivery": {"Home Delivery"},
	"restaurant":    {"Dine-in"},
	"cafe":          {"Dine-in"},
	"lodging":       {"Accommodation"},
	"pharmacy":      {"Medicines"},
	"gym":           {"Fitness"},
}

var priceLevelBands = map[int]string{
	1: "budget",
	2: "moderate",
	3: "premium",
	4: "premium",
}

// MapPlaces converts an external places result set into the matcher's output
// shape. External hits are never merged with local ones.
func MapPlaces(places []models.PlaceResult, ref models.ReferenceLocation) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(places))
	for _, p := range places {
		results = append(results, mapPlace(p, ref))
	}
	return results
}

func mapPlace(p models.PlaceResult, ref models.ReferenceLocation) models.MatchResult {
	address := p.Vicinity
	if address == "" {
		address = p.FormattedAddress
	}

	b := models.Business{
		ID:          "gplace-" + p.PlaceID,
		Name:        p.Name,
		Description: strings.Join(p.Types, ", "),
		Category:    deriveCategory(p.Types),
		Address: models.BusinessAddress{
			Street:  address,
			City:    ref.Label,
			Pincode: notProvided,
		},
		Contact: models.BusinessContact{
			Email: notProvided,
		},
		Services:    deriveServices(p.Types),
		Tags:        p.Types,
		Rating:      p.Rating,
		ReviewCount: p.UserRatingsTotal,
		Status:      models.StatusActive,
		PriceRange:  priceLevelBands[p.PriceLevel],
		LocationGeo: models.NewGeoPoint(p.Geometry.Location.Lat, p.Geometry.Location.Lng),
		UpdatedAt:   time.Now(),
	}

	d := Haversine(ref.Lat, ref.Lng, p.Geometry.Location.Lat, p.Geometry.Location.Lng)
	return models.MatchResult{Business: b, DistanceKm: &d}
}

func deriveCategory(types []string) string {
	for _, t := range types {
		if cat, ok := placeTypeCategories[t]; ok {
			return cat
		}
	}
	return "Other"
}

func deriveServices(types []string) []string {
	var services []string
	seen := map[string]bool{}
	for _, t := range types {
		for _, s := range placeTypeServices[t] {
			if !seen[s] {
				seen[s] = true
				services = append(services, s)
			}
		}
	}
	return services
}
