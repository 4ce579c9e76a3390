package middleware

import (
	"net/http"
	"strings"

	adminRepo "amberhall/database/repository/admin"
	"amberhall/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates the backoffice surface. An absent or malformed
// Authorization header is a 403; a present but invalid/expired token is a
// 401. The verified admin identity is attached to the request context for
// downstream handlers (createdBy/updatedBy attribution).
func AdminAuthMiddleware(repo adminRepo.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, adminEmail, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// The token subject must still resolve to a live admin account.
		adm, err := repo.GetByID(adminID)
		if err != nil || adm == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("adminID", adminID)
		c.Set("adminEmail", adminEmail)
		c.Next()
	}
}
