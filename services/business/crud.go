package business

import (
	"context"
	"fmt"
	"time"

	"betulbuzz/database/repository"
	"betulbuzz/models"
	"betulbuzz/services/tasks"
	"betulbuzz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBusinessService implements BusinessService.
type DefaultBusinessService struct {
	Repo      repository.BusinessRepository
	Enqueuer  tasks.Enqueuer
	Logger    *zap.Logger
	StripeKey string
}

// Register creates a new pending listing for the owner.
func (s *DefaultBusinessService) Register(ctx context.Context, ownerID string, b *models.Business) (*models.Business, error) {
	if b.Name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if !validCategory(b.Category) {
		return nil, fmt.Errorf("unknown category %q", b.Category)
	}
	if !b.LocationGeo.Valid() {
		return nil, fmt.Errorf("business location is required")
	}

	now := time.Now()
	b.ID = uuid.New().String()
	b.OwnerID = ownerID
	b.Status = models.StatusPending
	// Flags and ratings are granted through moderation and reviews, never at registration.
	b.Verified = false
	b.Featured = false
	b.Premium = false
	b.Rating = 0
	b.ReviewCount = 0
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to register business: %w", err)
	}
	s.Logger.Info("business registered",
		zap.String("businessId", b.ID), zap.String("ownerId", ownerID))
	return b, nil
}

// Update applies owner edits to an existing listing. Ownership is enforced;
// moderation-owned fields are preserved from the stored document.
func (s *DefaultBusinessService) Update(ctx context.Context, ownerID string, b *models.Business) (*models.Business, error) {
	existing, err := s.Repo.GetByID(b.ID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, fmt.Errorf("business %s is not owned by %s", b.ID, ownerID)
	}
	if b.Category != "" && !validCategory(b.Category) {
		return nil, fmt.Errorf("unknown category %q", b.Category)
	}

	b.OwnerID = existing.OwnerID
	b.Status = existing.Status
	b.Verified = existing.Verified
	b.Featured = existing.Featured
	b.Premium = existing.Premium
	b.Rating = existing.Rating
	b.ReviewCount = existing.ReviewCount
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now()

	if err := s.Repo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}
	return b, nil
}

func (s *DefaultBusinessService) Delete(ctx context.Context, ownerID, businessID string) error {
	existing, err := s.Repo.GetByID(businessID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return fmt.Errorf("business %s is not owned by %s", businessID, ownerID)
	}
	return s.Repo.Delete(businessID)
}

func (s *DefaultBusinessService) GetOwned(ctx context.Context, ownerID string) ([]models.Business, error) {
	return s.Repo.GetByOwner(ownerID)
}

// AddReview stores the review and enqueues a rating recompute for the listing.
func (s *DefaultBusinessService) AddReview(ctx context.Context, userID string, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("review rating must be between 1 and 5")
	}
	if _, err := s.Repo.GetByID(review.BusinessID); err != nil {
		return fmt.Errorf("cannot review unknown business %s: %w", review.BusinessID, err)
	}

	review.ReviewID = uuid.New().String()
	review.UserID = userID
	review.CreatedAt = time.Now()

	if err := s.Repo.AddReview(review); err != nil {
		return err
	}

	if s.Enqueuer != nil {
		if err := s.Enqueuer.EnqueueRatingRecompute(ctx, review.BusinessID); err != nil {
			// The nightly sweep will catch up; the review itself is already stored.
			s.Logger.Warn("failed to enqueue rating recompute",
				zap.String("businessId", review.BusinessID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultBusinessService) GetReviews(ctx context.Context, businessID string) ([]models.Review, error) {
	return s.Repo.GetReviews(businessID)
}

func validCategory(category string) bool {
	for _, c := range utils.Categories {
		if c == category {
			return true
		}
	}
	return false
}
