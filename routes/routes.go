package routes

import (
	"net/http"
	"time"

	"amberhall/handlers"
	"amberhall/middleware"
	"amberhall/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the visitor-facing endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/bookings", hb.GetBookedDatesHandler)
		api.POST("/bookings", hb.SubmitBookingHandler)

		api.GET("/packages", hb.ListPackagesHandler)
		api.GET("/packages/:id", hb.GetPackageHandler)
		api.GET("/contact", hb.GetContactHandler)
		api.GET("/gallery", hb.ListGalleryHandler)
	}
}

// RegisterWebhookRoutes registers gateway callback endpoints. These are
// authenticated by signature, not by JWT.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/razorpay/webhook", hb.RazorpayWebhookHandler)
}

// RegisterAdminRoutes registers the admin console endpoints. Everything past
// login requires a valid admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLoginHandler)

		adminGroup.Use(middleware.AdminAuthMiddleware(hb.AdminRepo))
		adminGroup.PUT("/credentials", hb.UpdateCredentialsHandler)

		adminGroup.GET("/bookings", hb.ListBookingsHandler)
		adminGroup.POST("/bookings/:id/approve", hb.ApproveBookingHandler)
		adminGroup.POST("/bookings/:id/reject", hb.RejectBookingHandler)
		adminGroup.DELETE("/bookings/:id", hb.DeleteBookingHandler)

		adminGroup.POST("/packages", hb.CreatePackageHandler)
		adminGroup.PUT("/packages/:id", hb.UpdatePackageHandler)
		adminGroup.DELETE("/packages/:id", hb.DeletePackageHandler)

		adminGroup.PUT("/contact", hb.UpdateContactHandler)

		adminGroup.POST("/gallery", hb.UploadGalleryHandler)
		adminGroup.DELETE("/gallery/:id", hb.DeleteGalleryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// background dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": "ok", "dependencies": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Razorpay-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
