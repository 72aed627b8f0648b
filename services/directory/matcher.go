package directory

import (
	"math"
	"sort"
	"strings"
	"time"

	"betulbuzz/models"
)

// FilterAndSort runs the filter chain over the in-memory business collection
// and orders the survivors. It never mutates its input; distance annotation
// happens separately (AnnotateDistance/CapByDistance) when the caller has a
// reference location. Order of the predicates matters: each narrows the
// candidate set before the next.
func FilterAndSort(records []models.Business, filters models.SearchFilters, sortBy string) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(records))

	tokens := queryTokens(filters.Query)
	now := time.Now()

	for _, b := range records {
		// 1) Text match: every query token must appear somewhere in the haystack.
		if len(tokens) > 0 && !matchesTokens(&b, tokens) {
			continue
		}
		// 2) Category: exact match unless "all".
		if filters.Category != "" && filters.Category != models.CategoryAll && b.Category != filters.Category {
			continue
		}
		// 3) Rating floor.
		if b.Rating < filters.Rating {
			continue
		}
		// 4) Verified/featured/premium flags are independent ANDs.
		if filters.Verified && !b.Verified {
			continue
		}
		if filters.Featured && !b.Featured {
			continue
		}
		if filters.Premium && !b.Premium {
			continue
		}
		// 5) Services: the record needs ANY of the requested service tags.
		if len(filters.Services) > 0 && !hasAnyService(b.Services, filters.Services) {
			continue
		}
		// Records with no hours/price data pass these two, so legacy listings
		// behave as before the fields existed.
		if filters.OpenNow && !openAt(b.Hours, now) {
			continue
		}
		if filters.PriceRange != "" && b.PriceRange != "" && b.PriceRange != filters.PriceRange {
			continue
		}

		results = append(results, models.MatchResult{Business: b})
	}

	sortResults(results, sortBy)
	return results
}

// queryTokens lowercases and splits the free-text query into word tokens.
func queryTokens(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}

// matchesTokens builds the record's haystack and checks that every token
// appears as a substring. Substring, not word-boundary: "rest" matches
// "restaurant".
func matchesTokens(b *models.Business, tokens []string) bool {
	var sb strings.Builder
	sb.WriteString(b.Name)
	sb.WriteByte(' ')
	sb.WriteString(b.Description)
	sb.WriteByte(' ')
	sb.WriteString(b.Category)
	for _, s := range b.Services {
		sb.WriteByte(' ')
		sb.WriteString(s)
	}
	for _, t := range b.Tags {
		sb.WriteByte(' ')
		sb.WriteString(t)
	}
	sb.WriteByte(' ')
	sb.WriteString(b.Address.Street)
	sb.WriteByte(' ')
	sb.WriteString(b.Address.City)

	haystack := strings.ToLower(sb.String())
	for _, tok := range tokens {
		if !strings.Contains(haystack, tok) {
			return false
		}
	}
	return true
}

func hasAnyService(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// openAt evaluates the business hours against the given instant. Listings
// without hours data always pass.
func openAt(hours models.BusinessHours, now time.Time) bool {
	if len(hours) == 0 {
		return true
	}
	day, ok := hours[strings.ToLower(now.Weekday().String())]
	if !ok {
		return false
	}
	if day.Closed {
		return false
	}
	if day.Open == "" || day.Close == "" {
		return true
	}
	hm := now.Format("15:04")
	return hm >= day.Open && hm <= day.Close
}

// sortResults orders results in place. Sorts are stable so ties preserve the
// prior relative order.
func sortResults(results []models.MatchResult, sortBy string) {
	switch sortBy {
	case models.SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case models.SortByDistance:
		// A no-op unless distances were annotated beforehand.
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].DistanceKm == nil || results[j].DistanceKm == nil {
				return false
			}
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	case models.SortByName:
		sort.SliceStable(results, func(i, j int) bool {
			return strings.ToLower(results[i].Name) < strings.ToLower(results[j].Name)
		})
	case models.SortByNewest:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	}
}

// AnnotateDistance computes each result's great-circle distance from the
// reference location. Results whose coordinates are malformed are left
// unannotated.
func AnnotateDistance(results []models.MatchResult, ref models.ReferenceLocation) {
	for i := range results {
		geo := results[i].LocationGeo
		if !geo.Valid() {
			continue
		}
		d := Haversine(ref.Lat, ref.Lng, geo.Lat(), geo.Lng())
		results[i].DistanceKm = &d
	}
}

// CapByDistance drops results beyond radiusKm and returns the survivors sorted
// ascending by distance. Unannotated results are dropped with them: a record
// with no usable coordinates cannot be shown in a proximity view.
func CapByDistance(results []models.MatchResult, radiusKm float64) []models.MatchResult {
	capped := make([]models.MatchResult, 0, len(results))
	for _, r := range results {
		if r.DistanceKm == nil {
			continue
		}
		if *r.DistanceKm <= radiusKm {
			capped = append(capped, r)
		}
	}
	sort.SliceStable(capped, func(i, j int) bool {
		return *capped[i].DistanceKm < *capped[j].DistanceKm
	})
	return capped
}

// Haversine returns the great-circle distance in kilometres between two
// latitude/longitude points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
