package directory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"betulbuzz/database/repository"
	"betulbuzz/models"
	"betulbuzz/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultDirectoryService implements DirectoryService over the business
// repository, the external places collaborator and the Redis result cache.
type DefaultDirectoryService struct {
	Repo   repository.BusinessRepository
	Places PlacesClient
	Cache  *redis.Client
	Logger *zap.Logger
}

// Search runs the filter/sort pipeline over the active listings. When the
// local chain yields nothing for a non-empty query, one external places
// search is issued instead; its failure degrades to zero results, never to an
// error the caller has to handle.
func (s *DefaultDirectoryService) Search(ctx context.Context, req models.SearchRequest) ([]models.MatchResult, error) {
	ref := resolveReference(req.Location)
	wantDistance := req.Filters.Distance > 0 || req.SortBy == models.SortByDistance

	if cached, ok := s.cacheGet(ctx, req); ok {
		return cached, nil
	}

	records, err := s.Repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load active businesses: %w", err)
	}

	results := FilterAndSort(records, req.Filters, req.SortBy)
	if wantDistance {
		AnnotateDistance(results, ref)
		if req.Filters.Distance > 0 {
			results = CapByDistance(results, req.Filters.Distance)
		}
		if req.SortBy == models.SortByDistance {
			sortResults(results, models.SortByDistance)
		}
	}

	if len(results) == 0 && strings.TrimSpace(req.Filters.Query) != "" {
		results = s.externalFallback(ctx, req.Filters, ref)
	}

	s.cacheSet(ctx, req, results)
	return results, nil
}

// Nearby returns active listings within radiusKm of the reference location,
// nearest first.
func (s *DefaultDirectoryService) Nearby(ctx context.Context, ref models.ReferenceLocation, radiusKm float64) ([]models.MatchResult, error) {
	if radiusKm <= 0 {
		radiusKm = 50
	}
	records, err := s.Repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load active businesses: %w", err)
	}
	results := FilterAndSort(records, models.SearchFilters{}, "")
	AnnotateDistance(results, resolveReference(&ref))
	return CapByDistance(results, radiusKm), nil
}

func (s *DefaultDirectoryService) GetByID(ctx context.Context, id string) (*models.Business, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultDirectoryService) GetByCategory(ctx context.Context, category string) ([]models.Business, error) {
	records, err := s.Repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load active businesses: %w", err)
	}
	var out []models.Business
	for _, b := range records {
		if category == models.CategoryAll || b.Category == category {
			out = append(out, b)
		}
	}
	return out, nil
}

// externalFallback consults the places collaborator. Any failure is logged and
// swallowed; the caller only ever observes zero results.
func (s *DefaultDirectoryService) externalFallback(ctx context.Context, filters models.SearchFilters, ref models.ReferenceLocation) []models.MatchResult {
	if s.Places == nil {
		return []models.MatchResult{}
	}
	radius := filters.Distance
	if radius <= 0 {
		radius = 10
	}
	places, err := s.Places.Search(ctx, filters.Query, ref, radius)
	if err != nil {
		s.Logger.Warn("external places search failed",
			zap.String("query", filters.Query), zap.Error(err))
		return []models.MatchResult{}
	}
	return MapPlaces(places, ref)
}

// resolveReference substitutes the static fallback coordinate for a missing or
// malformed reference location. Never an error.
func resolveReference(loc *models.ReferenceLocation) models.ReferenceLocation {
	if loc == nil || (loc.Lat == 0 && loc.Lng == 0) {
		return models.ReferenceLocation{
			Lat:   utils.FallbackLat,
			Lng:   utils.FallbackLng,
			Label: utils.FallbackLabel,
		}
	}
	return *loc
}

func (s *DefaultDirectoryService) cacheKey(req models.SearchRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return utils.SearchCachePrefix + hex.EncodeToString(sum[:])
}

func (s *DefaultDirectoryService) cacheGet(ctx context.Context, req models.SearchRequest) ([]models.MatchResult, bool) {
	if s.Cache == nil {
		return nil, false
	}
	val, err := s.Cache.Get(ctx, s.cacheKey(req)).Result()
	if err != nil {
		return nil, false
	}
	var results []models.MatchResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, false
	}
	return results, true
}

func (s *DefaultDirectoryService) cacheSet(ctx context.Context, req models.SearchRequest, results []models.MatchResult) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, s.cacheKey(req), data, utils.SearchCacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache search results", zap.Error(err))
	}
}
