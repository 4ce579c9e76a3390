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

// PackageHandler serves the venue package catalog.
type PackageHandler struct {
	Svc    catalog.PackageService
	Logger *zap.Logger
}

// NewPackageHandler creates a new PackageHandler instance.
func NewPackageHandler(svc catalog.PackageService, logger *zap.Logger) *PackageHandler {
	return &PackageHandler{Svc: svc, Logger: logger}
}

// ListPackages returns all packages. Public.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.Svc.ListPackages(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list packages", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch packages", "")
		return
	}
	if packages == nil {
		packages = []models.Package{}
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// GetPackage returns a single package by id. Public.
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.Svc.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Package not found", "")
			return
		}
		h.Logger.Error("failed to fetch package", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch package", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": pkg})
}

// CreatePackage adds a new package. Admin only.
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Svc.CreatePackage(c.Request.Context(), pkg, c.GetString("adminEmail"))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidPackage):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, catalog.ErrDuplicateName):
			utils.JSONError(c, http.StatusConflict, "A package with this name already exists", "")
		default:
			h.Logger.Error("package creation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create package", "")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Package created", "package": created})
}

// UpdatePackage replaces a package's mutable fields. Admin only.
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	pkg.ID = c.Param("id")

	updated, err := h.Svc.UpdatePackage(c.Request.Context(), pkg)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Package not found", "")
		case errors.Is(err, catalog.ErrInvalidPackage):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, catalog.ErrDuplicateName):
			utils.JSONError(c, http.StatusConflict, "A package with this name already exists", "")
		default:
			h.Logger.Error("package update failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update package", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package updated", "package": updated})
}

// DeletePackage removes a package. Admin only.
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeletePackage(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Package not found", "")
			return
		}
		h.Logger.Error("package deletion failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete package", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted", "packageId": id})
}
