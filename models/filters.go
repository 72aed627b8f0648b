package models

// Sort keys accepted by the directory search.
const (
	SortByRating   = "rating"
	SortByDistance = "distance"
	SortByName     = "name"
	SortByNewest   = "newest"
)

// CategoryAll disables category narrowing.
const CategoryAll = "all"

// SearchFilters is the per-invocation filter set for a directory search.
// Zero values mean "do not narrow": empty query, category "all" (or ""),
// rating 0, distance 0, flags false, no required services.
type SearchFilters struct {
	Query      string   `json:"query"`
	Category   string   `json:"category"`
	Rating     float64  `json:"rating"`
	Distance   float64  `json:"distance"` // radius cap in km; 0 = no cap
	Verified   bool     `json:"verified"`
	Featured   bool     `json:"featured"`
	Premium    bool     `json:"premium"`
	OpenNow    bool     `json:"openNow"`
	Services   []string `json:"services,omitempty"`
	PriceRange string   `json:"priceRange,omitempty"` // "", "budget", "moderate", "premium"
}

// ReferenceLocation is the point distances are measured from. It comes from
// device geolocation, a manually picked place, or the static fallback.
type ReferenceLocation struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label,omitempty"`
}

// MatchResult is a Business annotated with the computed distance from the
// reference location. DistanceKm is nil when no reference location was in play.
type MatchResult struct {
	Business
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// SearchRequest is the request body for the directory search endpoint.
type SearchRequest struct {
	Filters  SearchFilters      `json:"filters"`
	SortBy   string             `json:"sortBy,omitempty"`
	Location *ReferenceLocation `json:"location,omitempty"`
}
