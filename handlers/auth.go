package handlers

import (
	"errors"
	"net/http"

	"amberhall/services/admin"
	"amberhall/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthHandler serves admin login and credential management.
type AdminAuthHandler struct {
	Svc    admin.AdminService
	Logger *zap.Logger
}

// NewAdminAuthHandler creates a new AdminAuthHandler instance.
func NewAdminAuthHandler(svc admin.AdminService, logger *zap.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{Svc: svc, Logger: logger}
}

// Login authenticates an admin and issues a JWT.
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required", "")
		return
	}

	token, account, err := h.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		h.Logger.Error("admin login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "admin": account})
}

// UpdateCredentials changes the authenticated admin's name, email, or
// password. Admin only.
func (h *AdminAuthHandler) UpdateCredentials(c *gin.Context) {
	adminID := c.GetString("adminID")
	if adminID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var input admin.CredentialsUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Svc.UpdateCredentials(c.Request.Context(), adminID, input)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Admin not found", "")
			return
		}
		h.Logger.Error("credentials update failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update credentials", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credentials updated", "admin": updated})
}
