package directory

import (
	"context"

	"betulbuzz/models"
)

// PlacesClient is the external places-search collaborator. It is consulted only
// when the local collection yields no hits for a non-empty query.
type PlacesClient interface {
	Search(ctx context.Context, query string, ref models.ReferenceLocation, radiusKm float64) ([]models.PlaceResult, error)
}

// DirectoryService exposes the search surface of the directory.
type DirectoryService interface {
	Search(ctx context.Context, req models.SearchRequest) ([]models.MatchResult, error)
	Nearby(ctx context.Context, ref models.ReferenceLocation, radiusKm float64) ([]models.MatchResult, error)
	GetByID(ctx context.Context, id string) (*models.Business, error)
	GetByCategory(ctx context.Context, category string) ([]models.Business, error)
}

// SavedService tracks per-user saved listings.
type SavedService interface {
	Save(ctx context.Context, userID, businessID string) error
	Unsave(ctx context.Context, userID, businessID string) error
	List(ctx context.Context, userID string) ([]models.Business, error)
	IsSaved(ctx context.Context, userID, businessID string) (bool, error)
}
