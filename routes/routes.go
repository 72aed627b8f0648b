package routes

import (
	"net/http"
	"time"

	"betulbuzz/handlers"
	"betulbuzz/middleware"
	"betulbuzz/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDirectoryRoutes registers the public search/browse endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/directory")
	{
		api.POST("/search", hb.Directory.SearchHandler)
		api.GET("/nearby", hb.Directory.NearbyHandler)
		api.GET("/id/:id", hb.Directory.GetBusinessHandler)
		api.GET("/category/:category", hb.Directory.GetByCategoryHandler)
		api.GET("/id/:id/reviews", hb.Business.GetReviewsHandler)
	}
}

// RegisterBusinessRoutes registers the owner-facing listing endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		// All listing management requires an owner token.
		api.Use(middleware.JWTAuthMiddleware("owner"))
		api.POST("/register", hb.Business.RegisterBusinessHandler)
		api.GET("/mine", hb.Business.GetOwnedHandler)
		api.PATCH("/update/:id", hb.Business.UpdateBusinessHandler)
		api.DELETE("/delete/:id", hb.Business.DeleteBusinessHandler)
		api.POST("/premium/:id", hb.Business.StartPremiumUpgradeHandler)
		api.POST("/premium/:id/confirm", hb.Business.ConfirmPremiumUpgradeHandler)
		api.POST("/images/:id", hb.Storage.UploadImageHandler)
		api.DELETE("/images/:id", hb.Storage.DeleteImageHandler)
	}
}

// RegisterUserRoutes registers the end-user endpoints (reviews, saved listings).
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.Use(middleware.JWTAuthMiddleware(""))
		api.POST("/reviews/:id", hb.Business.AddReviewHandler)
		api.PUT("/saved/:id", hb.Saved.SaveHandler)
		api.DELETE("/saved/:id", hb.Saved.UnsaveHandler)
		api.GET("/saved", hb.Saved.ListSavedHandler)
		api.GET("/saved/:id", hb.Saved.IsSavedHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for moderation.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/businesses", hb.Admin.ListAllHandler)
		adminGroup.GET("/businesses/pending", hb.Admin.ListPendingHandler)
		adminGroup.PUT("/businesses/:id/approve", hb.Admin.ApproveHandler)
		adminGroup.PUT("/businesses/:id/suspend", hb.Admin.SuspendHandler)
		adminGroup.PUT("/businesses/:id/reinstate", hb.Admin.ReinstateHandler)
		adminGroup.PUT("/businesses/:id/verified", hb.Admin.SetVerifiedHandler)
		adminGroup.PUT("/businesses/:id/featured", hb.Admin.SetFeaturedHandler)
	}
}

// RegisterStorageRoutes registers the public image URL resolver.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/images/url", hb.Storage.GetImageURLHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDirectoryRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
