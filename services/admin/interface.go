package admin

import (
	"context"

	"betulbuzz/models"
)

// AdminService covers listing moderation.
type AdminService interface {
	ListPending(ctx context.Context) ([]models.Business, error)
	ListAll(ctx context.Context) ([]models.Business, error)
	Approve(ctx context.Context, businessID string) error
	Suspend(ctx context.Context, businessID string) error
	Reinstate(ctx context.Context, businessID string) error
	SetVerified(ctx context.Context, businessID string, verified bool) error
	SetFeatured(ctx context.Context, businessID string, featured bool) error
}
