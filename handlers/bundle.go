package handlers

import (
	adminRepoPkg "amberhall/database/repository/admin"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AdminRepo adminRepoPkg.AdminRepository

	// Booking endpoints
	GetBookedDatesHandler gin.HandlerFunc
	SubmitBookingHandler  gin.HandlerFunc
	ListBookingsHandler   gin.HandlerFunc
	ApproveBookingHandler gin.HandlerFunc
	RejectBookingHandler  gin.HandlerFunc
	DeleteBookingHandler  gin.HandlerFunc

	// Payment webhook
	RazorpayWebhookHandler gin.HandlerFunc

	// Admin auth endpoints
	AdminLoginHandler        gin.HandlerFunc
	UpdateCredentialsHandler gin.HandlerFunc

	// Package endpoints
	ListPackagesHandler  gin.HandlerFunc
	GetPackageHandler    gin.HandlerFunc
	CreatePackageHandler gin.HandlerFunc
	UpdatePackageHandler gin.HandlerFunc
	DeletePackageHandler gin.HandlerFunc

	// Contact endpoints
	GetContactHandler    gin.HandlerFunc
	UpdateContactHandler gin.HandlerFunc

	// Gallery endpoints
	ListGalleryHandler   gin.HandlerFunc
	UploadGalleryHandler gin.HandlerFunc
	DeleteGalleryHandler gin.HandlerFunc
}
