package handlers

import (
	"net/http"
	"strconv"

	"betulbuzz/models"
	"betulbuzz/services/directory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectoryHandler exposes the public search/browse endpoints.
type DirectoryHandler struct {
	Service directory.DirectoryService
	Logger  *zap.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler instance.
func NewDirectoryHandler(svc directory.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{Service: svc, Logger: logger}
}

// SearchHandler runs the filter/sort pipeline for the request body's filters.
func (h *DirectoryHandler) SearchHandler(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	results, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("directory search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// NearbyHandler returns listings around a lat/lng, nearest first.
func (h *DirectoryHandler) NearbyHandler(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid query parameters: lat, lng"})
		return
	}
	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "10"), 64)

	results, err := h.Service.Nearby(c.Request.Context(), models.ReferenceLocation{Lat: lat, Lng: lng}, radius)
	if err != nil {
		h.Logger.Error("nearby lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nearby lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// GetBusinessHandler returns a single listing.
func (h *DirectoryHandler) GetBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetByCategoryHandler lists active businesses in a category.
func (h *DirectoryHandler) GetByCategoryHandler(c *gin.Context) {
	category := c.Param("category")
	businesses, err := h.Service.GetByCategory(c.Request.Context(), category)
	if err != nil {
		h.Logger.Error("category lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Category lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": businesses, "count": len(businesses)})
}
