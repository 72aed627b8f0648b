package businessRepo

import (
	"betulbuzz/models"
)

// BusinessRepository defines persistence operations for directory listings.
type BusinessRepository interface {
	Create(business *models.Business) error
	Update(business *models.Business) error
	Delete(id string) error
	GetByID(id string) (*models.Business, error)
	GetAll() ([]models.Business, error)
	GetActive() ([]models.Business, error)
	GetByOwner(ownerID string) ([]models.Business, error)
	GetByStatus(status string) ([]models.Business, error)
	UpdateStatus(id, status string) error
	SetFlag(id, flag string, value bool) error
	AddImage(id, publicID string) error
	RemoveImage(id, publicID string) error

	AddReview(review *models.Review) error
	GetReviews(businessID string) ([]models.Review, error)
	UpdateRating(businessID string, rating float64, reviewCount int) error

	EnsureIndexes() error
}
