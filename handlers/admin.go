package handlers

import (
	"net/http"

	"betulbuzz/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes moderation endpoints.
type AdminHandler struct {
	Service admin.AdminService
	Logger  *zap.Logger
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(svc admin.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Logger: logger}
}

func (h *AdminHandler) ListPendingHandler(c *gin.Context) {
	businesses, err := h.Service.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending businesses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

func (h *AdminHandler) ListAllHandler(c *gin.Context) {
	businesses, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list businesses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

func (h *AdminHandler) ApproveHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Approve(c.Request.Context(), id); err != nil {
		h.Logger.Error("approve failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business approved"})
}

func (h *AdminHandler) SuspendHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Suspend(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business suspended"})
}

func (h *AdminHandler) ReinstateHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Reinstate(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business reinstated"})
}

type flagRequest struct {
	Value bool `json:"value"`
}

func (h *AdminHandler) SetVerifiedHandler(c *gin.Context) {
	var body flagRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.SetVerified(c.Request.Context(), c.Param("id"), body.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verified flag updated"})
}

func (h *AdminHandler) SetFeaturedHandler(c *gin.Context) {
	var body flagRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.Service.SetFeatured(c.Request.Context(), c.Param("id"), body.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Featured flag updated"})
}
