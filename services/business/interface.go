package business

import (
	"context"

	"betulbuzz/models"
)

// BusinessService manages owner-facing listing operations. Registration lands
// listings in "pending" until an administrator approves them.
type BusinessService interface {
	Register(ctx context.Context, ownerID string, b *models.Business) (*models.Business, error)
	Update(ctx context.Context, ownerID string, b *models.Business) (*models.Business, error)
	Delete(ctx context.Context, ownerID, businessID string) error
	GetOwned(ctx context.Context, ownerID string) ([]models.Business, error)

	AddReview(ctx context.Context, userID string, review *models.Review) error
	GetReviews(ctx context.Context, businessID string) ([]models.Review, error)

	StartPremiumUpgrade(ctx context.Context, ownerID, businessID string) (*PremiumUpgrade, error)
	ConfirmPremiumUpgrade(ctx context.Context, ownerID, businessID, paymentIntentID string) error
}
