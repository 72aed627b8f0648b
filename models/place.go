package models

// Types for the Google Places nearby/text search responses. Only the fields
// the directory actually maps are kept.

type PlacesResponse struct {
	Results       []PlaceResult `json:"results"`
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

type PlaceResult struct {
	PlaceID          string         `json:"place_id"`
	Name             string         `json:"name"`
	BusinessStatus   string         `json:"business_status,omitempty"`
	Geometry         PlaceGeometry  `json:"geometry"`
	Rating           float64        `json:"rating,omitempty"`
	UserRatingsTotal int            `json:"user_ratings_total,omitempty"`
	Types            []string       `json:"types,omitempty"`
	Vicinity         string         `json:"vicinity,omitempty"`
	FormattedAddress string         `json:"formatted_address,omitempty"`
	OpeningHours     *PlaceOpenInfo `json:"opening_hours,omitempty"`
	PriceLevel       int            `json:"price_level,omitempty"`
}

type PlaceGeometry struct {
	Location PlaceLatLng `json:"location"`
}

type PlaceLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlaceOpenInfo struct {
	OpenNow bool `json:"open_now"`
}
