package cron

import (
	"log"
	"time"

	"betulbuzz/config"
	"betulbuzz/database/repository"
	"betulbuzz/services/tasks"
	"betulbuzz/utils"

	"github.com/hibiken/asynq"
)

// InitRatingWorker runs the async worker in background.
func InitRatingWorker(repo repository.BusinessRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRatingRecompute, tasks.HandleRatingRecompute(repo, utils.GetLogger()))

	// Start async worker with retry logic.
	go func() {
		log.Println("[RatingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RatingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RatingWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}
