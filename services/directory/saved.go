package directory

import (
	"context"
	"fmt"

	"betulbuzz/database/repository"
	"betulbuzz/models"
	"betulbuzz/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisSavedService keeps each user's saved listings in a Redis set. This is
// the single persistence mechanism for saves and favourites.
type RedisSavedService struct {
	Repo   repository.BusinessRepository
	Client *redis.Client
	Logger *zap.Logger
}

func savedKey(userID string) string {
	return utils.SavedSetPrefix + userID
}

func (s *RedisSavedService) Save(ctx context.Context, userID, businessID string) error {
	// Guard against saving IDs that don't resolve to a listing.
	if _, err := s.Repo.GetByID(businessID); err != nil {
		return fmt.Errorf("cannot save unknown business %s: %w", businessID, err)
	}
	if err := s.Client.SAdd(ctx, savedKey(userID), businessID).Err(); err != nil {
		return fmt.Errorf("failed to save business %s for user %s: %w", businessID, userID, err)
	}
	return nil
}

func (s *RedisSavedService) Unsave(ctx context.Context, userID, businessID string) error {
	if err := s.Client.SRem(ctx, savedKey(userID), businessID).Err(); err != nil {
		return fmt.Errorf("failed to unsave business %s for user %s: %w", businessID, userID, err)
	}
	return nil
}

func (s *RedisSavedService) IsSaved(ctx context.Context, userID, businessID string) (bool, error) {
	saved, err := s.Client.SIsMember(ctx, savedKey(userID), businessID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check saved state: %w", err)
	}
	return saved, nil
}

// List resolves the saved set back into business records. IDs whose listing
// has since been deleted are dropped from the set as they are encountered.
func (s *RedisSavedService) List(ctx context.Context, userID string) ([]models.Business, error) {
	ids, err := s.Client.SMembers(ctx, savedKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list saved businesses for user %s: %w", userID, err)
	}

	businesses := make([]models.Business, 0, len(ids))
	for _, id := range ids {
		b, err := s.Repo.GetByID(id)
		if err != nil {
			s.Logger.Debug("dropping stale saved listing", zap.String("businessId", id))
			s.Client.SRem(ctx, savedKey(userID), id)
			continue
		}
		businesses = append(businesses, *b)
	}
	return businesses, nil
}
