package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"betulbuzz/config"
	"betulbuzz/database/repository"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeRatingRecompute = "rating:recompute"

// RatingPayload identifies the listing whose aggregate rating needs refreshing.
type RatingPayload struct {
	BusinessID string `json:"businessId"`
}

// Enqueuer schedules background rating recomputes.
type Enqueuer interface {
	EnqueueRatingRecompute(ctx context.Context, businessID string) error
}

// AsynqEnqueuer implements Enqueuer over the shared Redis task queue.
type AsynqEnqueuer struct {
	client *asynq.Client
}

// NewAsynqEnqueuer builds an enqueuer on the configured Redis task queue DB.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskQueueDB,
		}),
	}
}

func (e *AsynqEnqueuer) EnqueueRatingRecompute(ctx context.Context, businessID string) error {
	payload, err := json.Marshal(RatingPayload{BusinessID: businessID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeRatingRecompute, payload)
	if _, err := e.client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue rating recompute: %w", err)
	}
	return nil
}

// HandleRatingRecompute re-averages a listing's reviews and writes the
// aggregate back onto the business document.
func HandleRatingRecompute(repo repository.BusinessRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p RatingPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid rating recompute payload", zap.Error(err))
			return err
		}

		reviews, err := repo.GetReviews(p.BusinessID)
		if err != nil {
			return err
		}

		var rating float64
		if len(reviews) > 0 {
			var sum float64
			for _, r := range reviews {
				sum += r.Rating
			}
			rating = sum / float64(len(reviews))
		}

		if err := repo.UpdateRating(p.BusinessID, rating, len(reviews)); err != nil {
			return err
		}
		logger.Info("rating recomputed",
			zap.String("businessId", p.BusinessID),
			zap.Float64("rating", rating),
			zap.Int("reviews", len(reviews)))
		return nil
	}
}
