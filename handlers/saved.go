package handlers

import (
	"net/http"

	"betulbuzz/middleware"
	"betulbuzz/services/directory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SavedHandler exposes the saved-listings endpoints.
type SavedHandler struct {
	Service directory.SavedService
	Logger  *zap.Logger
}

// NewSavedHandler creates a new SavedHandler instance.
func NewSavedHandler(svc directory.SavedService, logger *zap.Logger) *SavedHandler {
	return &SavedHandler{Service: svc, Logger: logger}
}

func (h *SavedHandler) SaveHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Save(c.Request.Context(), middleware.UserID(c), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business saved"})
}

func (h *SavedHandler) UnsaveHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Unsave(c.Request.Context(), middleware.UserID(c), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business unsaved"})
}

func (h *SavedHandler) ListSavedHandler(c *gin.Context) {
	businesses, err := h.Service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Logger.Error("failed to list saved businesses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list saved businesses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

func (h *SavedHandler) IsSavedHandler(c *gin.Context) {
	saved, err := h.Service.IsSaved(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check saved state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
