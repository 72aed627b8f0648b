// File: utils/constants.go
package utils

import "time"

// SearchCachePrefix is the prefix used for Redis search-result cache keys.
const SearchCachePrefix = "search:"

// SearchCacheTTL is the time-to-live for cached search results.
const SearchCacheTTL = 2 * time.Minute

// SavedSetPrefix is the prefix for per-user saved listing sets.
const SavedSetPrefix = "saved:"

// Fallback reference coordinate (Betul, Madhya Pradesh) used when a request
// carries no usable location.
const (
	FallbackLat   = 23.1765
	FallbackLng   = 77.5885
	FallbackLabel = "Betul, Madhya Pradesh"
)

// Categories recognised by the directory. Businesses registered through the
// owner workflow must use one of these; places mapped from the external search
// are coerced onto the same taxonomy.
var Categories = []string{
	"Restaurant & Food",
	"Healthcare",
	"Education",
	"Retail & Shopping",
	"Beauty & Wellness",
	"Automotive",
	"Home Services",
	"Professional Services",
	"Hotels & Travel",
	"Entertainment",
	"Other",
}
