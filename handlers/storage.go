package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"betulbuzz/database/repository"
	"betulbuzz/middleware"
	"betulbuzz/services/storage"
	"betulbuzz/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles listing image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
	Repo       repository.BusinessRepository
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, repo repository.BusinessRepository) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Repo: repo}
}

// UploadImageHandler uploads a listing photo and records its public ID.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	businessID := c.Param("id")

	b, err := h.Repo.GetByID(businessID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Business not found", err.Error())
		return
	}
	if b.OwnerID != middleware.UserID(c) {
		utils.JSONError(c, http.StatusForbidden, "Not the owner of this business", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "businesses/"+businessID)
	if err != nil {
		getLogger(c).Error("image upload failed",
			zap.String("businessId", businessID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
		return
	}

	if err := h.Repo.AddImage(businessID, publicID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to record image", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicId": publicID})
}

// DeleteImageHandler removes a listing photo from storage and from the record.
func (h *StorageHandler) DeleteImageHandler(c *gin.Context) {
	businessID := c.Param("id")
	publicID := c.Query("publicId")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: publicId", "")
		return
	}

	b, err := h.Repo.GetByID(businessID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Business not found", err.Error())
		return
	}
	if b.OwnerID != middleware.UserID(c) {
		utils.JSONError(c, http.StatusForbidden, "Not the owner of this business", "")
		return
	}

	if err := h.StorageSvc.DeleteFile(c, publicID); err != nil {
		getLogger(c).Error("image delete failed",
			zap.String("businessId", businessID), zap.String("publicId", publicID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete file", err.Error())
		return
	}
	if err := h.Repo.RemoveImage(businessID, publicID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update listing", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

// GetImageURLHandler resolves a stored public ID into a download URL.
func (h *StorageHandler) GetImageURLHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: publicId", "")
		return
	}

	url, err := h.StorageSvc.GetDownloadURL(c, "image", publicID, 1*time.Hour)
	if err != nil {
		getLogger(c).Error("failed to resolve image URL",
			zap.String("publicId", publicID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve URL", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
