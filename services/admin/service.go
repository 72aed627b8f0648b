package admin

import (
	"context"
	"fmt"

	"betulbuzz/database/repository"
	"betulbuzz/models"

	"go.uber.org/zap"
)

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Repo   repository.BusinessRepository
	Logger *zap.Logger
}

func (s *DefaultAdminService) ListPending(ctx context.Context) ([]models.Business, error) {
	return s.Repo.GetByStatus(models.StatusPending)
}

func (s *DefaultAdminService) ListAll(ctx context.Context) ([]models.Business, error) {
	return s.Repo.GetAll()
}

// Approve moves a pending listing into the active directory.
func (s *DefaultAdminService) Approve(ctx context.Context, businessID string) error {
	b, err := s.Repo.GetByID(businessID)
	if err != nil {
		return err
	}
	if b.Status != models.StatusPending {
		return fmt.Errorf("business %s is not pending (status %s)", businessID, b.Status)
	}
	if err := s.Repo.UpdateStatus(businessID, models.StatusActive); err != nil {
		return err
	}
	s.Logger.Info("business approved", zap.String("businessId", businessID))
	return nil
}

func (s *DefaultAdminService) Suspend(ctx context.Context, businessID string) error {
	if err := s.Repo.UpdateStatus(businessID, models.StatusSuspended); err != nil {
		return err
	}
	s.Logger.Warn("business suspended", zap.String("businessId", businessID))
	return nil
}

// Reinstate returns a suspended listing to active.
func (s *DefaultAdminService) Reinstate(ctx context.Context, businessID string) error {
	b, err := s.Repo.GetByID(businessID)
	if err != nil {
		return err
	}
	if b.Status != models.StatusSuspended {
		return fmt.Errorf("business %s is not suspended (status %s)", businessID, b.Status)
	}
	return s.Repo.UpdateStatus(businessID, models.StatusActive)
}

func (s *DefaultAdminService) SetVerified(ctx context.Context, businessID string, verified bool) error {
	return s.Repo.SetFlag(businessID, "verified", verified)
}

func (s *DefaultAdminService) SetFeatured(ctx context.Context, businessID string, featured bool) error {
	return s.Repo.SetFlag(businessID, "featured", featured)
}
