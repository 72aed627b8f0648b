package handlers

import (
	"net/http"

	"betulbuzz/middleware"
	"betulbuzz/models"
	"betulbuzz/services/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler exposes the owner-facing listing endpoints.
type BusinessHandler struct {
	Service business.BusinessService
	Logger  *zap.Logger
}

// NewBusinessHandler creates a new BusinessHandler instance.
func NewBusinessHandler(svc business.BusinessService, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{Service: svc, Logger: logger}
}

// RegisterBusinessHandler creates a new pending listing.
func (h *BusinessHandler) RegisterBusinessHandler(c *gin.Context) {
	var b models.Business
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), middleware.UserID(c), &b)
	if err != nil {
		h.Logger.Error("business registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBusinessHandler applies owner edits.
func (h *BusinessHandler) UpdateBusinessHandler(c *gin.Context) {
	var b models.Business
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	b.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), middleware.UserID(c), &b)
	if err != nil {
		h.Logger.Error("business update failed", zap.String("id", b.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBusinessHandler removes an owned listing.
func (h *BusinessHandler) DeleteBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.Logger.Error("business delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business deleted"})
}

// GetOwnedHandler lists the caller's businesses.
func (h *BusinessHandler) GetOwnedHandler(c *gin.Context) {
	businesses, err := h.Service.GetOwned(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get businesses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// AddReviewHandler stores a review for a listing.
func (h *BusinessHandler) AddReviewHandler(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	review.BusinessID = c.Param("id")

	if err := h.Service.AddReview(c.Request.Context(), middleware.UserID(c), &review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
}

// GetReviewsHandler lists reviews for a listing.
func (h *BusinessHandler) GetReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.GetReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// StartPremiumUpgradeHandler creates the Stripe payment for a premium upgrade.
func (h *BusinessHandler) StartPremiumUpgradeHandler(c *gin.Context) {
	id := c.Param("id")
	upgrade, err := h.Service.StartPremiumUpgrade(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.Logger.Error("premium upgrade failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, upgrade)
}

// ConfirmPremiumUpgradeHandler flips the premium flag after payment succeeds.
func (h *BusinessHandler) ConfirmPremiumUpgradeHandler(c *gin.Context) {
	var body struct {
		PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.Service.ConfirmPremiumUpgrade(c.Request.Context(), middleware.UserID(c), id, body.PaymentIntentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Premium upgrade confirmed"})
}
