// File: betulbuzz/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"betulbuzz/config"
	"betulbuzz/cron"
	"betulbuzz/database"
	businessRepoPkg "betulbuzz/database/repository/business"
	"betulbuzz/handlers"
	"betulbuzz/middleware"
	"betulbuzz/routes"
	"betulbuzz/services/admin"
	"betulbuzz/services/business"
	"betulbuzz/services/directory"
	"betulbuzz/services/places"
	"betulbuzz/services/tasks"
	"betulbuzz/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSavedCache()
	stripe.Key = config.AppConfig.StripeKey

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bizRepo := businessRepoPkg.NewMongoBusinessRepo()
	if err := bizRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure indexes: %v", err)
	}

	// services.
	placesClient := places.NewGooglePlacesClient(logger)
	directoryService := &directory.DefaultDirectoryService{
		Repo:   bizRepo,
		Places: placesClient,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	savedService := &directory.RedisSavedService{
		Repo:   bizRepo,
		Client: utils.GetSavedCacheClient(),
		Logger: logger,
	}
	businessService := &business.DefaultBusinessService{
		Repo:     bizRepo,
		Enqueuer: tasks.NewAsynqEnqueuer(),
		Logger:   logger,
	}
	adminService := &admin.DefaultAdminService{
		Repo:   bizRepo,
		Logger: logger,
	}

	// Background rating recompute worker.
	cron.InitRatingWorker(bizRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Directory: handlers.NewDirectoryHandler(directoryService, logger),
		Business:  handlers.NewBusinessHandler(businessService, logger),
		Admin:     handlers.NewAdminHandler(adminService, logger),
		Saved:     handlers.NewSavedHandler(savedService, logger),
		Storage:   handlers.NewStorageHandler(cloudinaryStorageService, bizRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSavedCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
