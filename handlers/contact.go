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

// ContactHandler serves the venue's contact details record.
type ContactHandler struct {
	Svc    catalog.ContactService
	Logger *zap.Logger
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(svc catalog.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

// GetContact returns the venue contact record. Public.
func (h *ContactHandler) GetContact(c *gin.Context) {
	contact, err := h.Svc.GetContact(c.Request.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Contact details not set", "")
			return
		}
		h.Logger.Error("failed to fetch contact details", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch contact details", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// UpdateContact upserts the venue contact record. Admin only.
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Svc.UpdateContact(c.Request.Context(), contact, c.GetString("adminEmail"))
	if err != nil {
		h.Logger.Error("contact update failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update contact details", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact details updated", "contact": updated})
}
