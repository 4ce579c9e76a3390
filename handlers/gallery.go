package handlers

import (
	"errors"
	"net/http"

	"amberhall/models"
	"amberhall/services/catalog"
	"amberhall/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GalleryHandler serves the venue media gallery.
type GalleryHandler struct {
	Svc    catalog.GalleryService
	Logger *zap.Logger
}

// NewGalleryHandler creates a new GalleryHandler instance.
func NewGalleryHandler(svc catalog.GalleryService, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{Svc: svc, Logger: logger}
}

// ListImages returns all gallery images, newest first. Public.
func (h *GalleryHandler) ListImages(c *gin.Context) {
	images, err := h.Svc.ListImages(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list gallery images", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch gallery", "")
		return
	}
	if images == nil {
		images = []models.GalleryImage{}
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

// UploadImage accepts a multipart image upload and stores it in the remote
// media store. Admin only.
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "An image file is required", "")
		return
	}

	image, err := h.Svc.UploadImage(
		c.Request.Context(),
		file,
		c.PostForm("caption"),
		c.PostForm("category"),
		c.GetString("adminEmail"),
	)
	if err != nil {
		h.Logger.Error("gallery upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload image", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded", "image": image})
}

// DeleteImage removes an image and its stored asset. Admin only.
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteImage(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Image not found", "")
			return
		}
		h.Logger.Error("gallery deletion failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete image", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted", "imageId": id})
}
