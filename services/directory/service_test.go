package directory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"betulbuzz/models"

	"go.uber.org/zap"
)

// fakeRepo serves a fixed record set.
type fakeRepo struct {
	active []models.Business
	err    error
}

func (f *fakeRepo) Create(*models.Business) error { return nil }
func (f *fakeRepo) Update(*models.Business) error { return nil }
func (f *fakeRepo) Delete(string) error           { return nil }
func (f *fakeRepo) GetAll() ([]models.Business, error) {
	return f.active, f.err
}
func (f *fakeRepo) GetActive() ([]models.Business, error) {
	return f.active, f.err
}
func (f *fakeRepo) GetByID(id string) (*models.Business, error) {
	for i := range f.active {
		if f.active[i].ID == id {
			return &f.active[i], nil
		}
	}
	return nil, fmt.Errorf("business with id %s not found", id)
}
func (f *fakeRepo) GetByOwner(string) ([]models.Business, error)  { return nil, nil }
func (f *fakeRepo) GetByStatus(string) ([]models.Business, error) { return nil, nil }
func (f *fakeRepo) UpdateStatus(string, string) error             { return nil }
func (f *fakeRepo) SetFlag(string, string, bool) error            { return nil }
func (f *fakeRepo) AddImage(string, string) error                 { return nil }
func (f *fakeRepo) RemoveImage(string, string) error              { return nil }
func (f *fakeRepo) AddReview(*models.Review) error                { return nil }
func (f *fakeRepo) GetReviews(string) ([]models.Review, error)    { return nil, nil }
func (f *fakeRepo) UpdateRating(string, float64, int) error       { return nil }
func (f *fakeRepo) EnsureIndexes() error                          { return nil }

// fakePlaces records calls and returns a canned result or error.
type fakePlaces struct {
	calls   int
	results []models.PlaceResult
	err     error
}

func (f *fakePlaces) Search(ctx context.Context, query string, ref models.ReferenceLocation, radiusKm float64) ([]models.PlaceResult, error) {
	f.calls++
	return f.results, f.err
}

func newService(repo *fakeRepo, places *fakePlaces) *DefaultDirectoryService {
	return &DefaultDirectoryService{
		Repo:   repo,
		Places: places,
		Logger: zap.NewNop(),
	}
}

func TestSearchLocalHitsSkipFallback(t *testing.T) {
	repo := &fakeRepo{active: []models.Business{
		biz("a", "Royal Restaurant", "Restaurant & Food"),
	}}
	ext := &fakePlaces{results: []models.PlaceResult{{PlaceID: "x", Name: "External"}}}
	svc := newService(repo, ext)

	results, err := svc.Search(context.Background(), models.SearchRequest{
		Filters: models.SearchFilters{Query: "rest"},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Errorf("results = %v; want local record only", ids(results))
	}
	if ext.calls != 0 {
		t.Errorf("external search consulted despite local hits")
	}
}

func TestSearchZeroLocalHitsTriggersFallback(t *testing.T) {
	repo := &fakeRepo{active: []models.Business{
		biz("a", "Royal Restaurant", "Restaurant & Food"),
	}}
	ext := &fakePlaces{results: []models.PlaceResult{
		{PlaceID: "p1", Name: "Xyz123 Traders", Types: []string{"store"}},
	}}
	svc := newService(repo, ext)

	results, err := svc.Search(context.Background(), models.SearchRequest{
		Filters: models.SearchFilters{Query: "xyz123"},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if ext.calls != 1 {
		t.Fatalf("external search called %d times; want 1", ext.calls)
	}
	// External results replace, never merge with, the empty local set.
	if len(results) != 1 || results[0].ID != "gplace-p1" {
		t.Errorf("results = %v; want mapped external record", ids(results))
	}
}

func TestSearchEmptyQueryNeverFallsBack(t *testing.T) {
	repo := &fakeRepo{active: []models.Business{
		biz("a", "Royal Restaurant", "Restaurant & Food"),
	}}
	ext := &fakePlaces{}
	svc := newService(repo, ext)

	// Category narrows to zero, but the query is empty.
	results, err := svc.Search(context.Background(), models.SearchRequest{
		Filters: models.SearchFilters{Category: "Healthcare"},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %v; want none", ids(results))
	}
	if ext.calls != 0 {
		t.Errorf("external search consulted for empty query")
	}
}

func TestExternalFailureDegradesToEmpty(t *testing.T) {
	repo := &fakeRepo{}
	ext := &fakePlaces{err: errors.New("quota exceeded")}
	svc := newService(repo, ext)

	results, err := svc.Search(context.Background(), models.SearchRequest{
		Filters: models.SearchFilters{Query: "xyz123"},
	})
	if err != nil {
		t.Fatalf("external failure surfaced as error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %v; want empty", ids(results))
	}
}

func TestSearchDistanceCapAndSort(t *testing.T) {
	repo := &fakeRepo{active: []models.Business{
		biz("far", "Far Cafe", "Restaurant & Food", withLocation(23.50, 77.90)),
		biz("near", "Near Cafe", "Restaurant & Food", withLocation(23.1780, 77.5900)),
	}}
	svc := newService(repo, &fakePlaces{})

	results, err := svc.Search(context.Background(), models.SearchRequest{
		Filters:  models.SearchFilters{Query: "cafe", Distance: 5},
		SortBy:   models.SortByDistance,
		Location: &models.ReferenceLocation{Lat: 23.1765, Lng: 77.5885},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "near" {
		t.Errorf("results = %v; want [near]", ids(results))
	}
	if results[0].DistanceKm == nil || *results[0].DistanceKm > 5 {
		t.Errorf("capped result missing or exceeding distance")
	}
}

func TestSearchFallsBackToStaticReference(t *testing.T) {
	// A record right at the Betul fallback point survives a tight cap even
	// when the request carries no location.
	repo := &fakeRepo{active: []models.Business{
		biz("home", "Betul Kirana", "Retail & Shopping", withLocation(23.1765, 77.5885)),
	}}
	svc := newService(repo, &fakePlaces{})

	results, err := svc.Search(context.Background(), models.SearchRequest{
		Filters: models.SearchFilters{Query: "kirana", Distance: 1},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "home" {
		t.Errorf("results = %v; want [home]", ids(results))
	}
}

func TestNearbySortsAscending(t *testing.T) {
	repo := &fakeRepo{active: []models.Business{
		biz("far", "Far", "Other", withLocation(23.30, 77.70)),
		biz("near", "Near", "Other", withLocation(23.1780, 77.5900)),
	}}
	svc := newService(repo, &fakePlaces{})

	results, err := svc.Nearby(context.Background(), models.ReferenceLocation{Lat: 23.1765, Lng: 77.5885}, 100)
	if err != nil {
		t.Fatalf("Nearby returned error: %v", err)
	}
	if len(results) != 2 || results[0].ID != "near" {
		t.Errorf("results = %v; want nearest first", ids(results))
	}
}
