package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amberhall/config"
	"amberhall/cron"
	"amberhall/database"
	adminRepoPkg "amberhall/database/repository/admin"
	bookingRepoPkg "amberhall/database/repository/booking"
	catalogRepoPkg "amberhall/database/repository/catalog"
	"amberhall/handlers"
	"amberhall/routes"
	adminSvc "amberhall/services/admin"
	"amberhall/services/booking"
	"amberhall/services/catalog"
	"amberhall/services/notification"
	"amberhall/services/payment"
	"amberhall/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to mongodb: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect mongodb: %v", err)
		}
	}()

	utils.InitBroadcast()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(mongoClient, config.AppConfig.DatabaseName)
	packageRepo := catalogRepoPkg.NewMongoPackageRepo(mongoClient, config.AppConfig.DatabaseName)
	contactRepo := catalogRepoPkg.NewMongoContactRepo(mongoClient, config.AppConfig.DatabaseName)
	galleryRepo := catalogRepoPkg.NewMongoGalleryRepo(mongoClient, config.AppConfig.DatabaseName)
	adminRepo := adminRepoPkg.NewMongoAdminRepo(mongoClient, config.AppConfig.DatabaseName)

	// services.
	gateway := payment.NewRazorpayGateway(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret)
	mailer := notification.NewResendMailer(config.AppConfig.ResendAPIKey, config.AppConfig.MailFrom, config.AppConfig.AdminEmail)
	broadcaster := notification.NewRedisBroadcaster(utils.GetBroadcastClient(), config.AppConfig.BroadcastChannel)

	bookingService := booking.NewDefaultBookingService(bookingRepo, gateway, mailer, broadcaster, logger)
	packageService := &catalog.DefaultPackageService{Repo: packageRepo}
	contactService := &catalog.DefaultContactService{Repo: contactRepo}
	galleryService := &catalog.DefaultGalleryService{Repo: galleryRepo, Storage: cloudinaryStorageService}
	adminService := &adminSvc.DefaultAdminService{Repo: adminRepo, Logger: logger}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := adminService.EnsureSeedAdmin(seedCtx, config.AppConfig.SeedAdminEmail, config.AppConfig.SeedAdminPassword); err != nil {
		logger.Sugar().Errorf("main: failed to seed admin account: %v", err)
	}
	seedCancel()

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	webhookHandler := handlers.NewWebhookHandler(bookingService, config.AppConfig.RazorpayWebhookSecret, logger)
	authHandler := handlers.NewAdminAuthHandler(adminService, logger)
	packageHandler := handlers.NewPackageHandler(packageService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)
	galleryHandler := handlers.NewGalleryHandler(galleryService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminRepo: adminRepo,

		// Booking endpoints.
		GetBookedDatesHandler: bookingHandler.GetBookedDates,
		SubmitBookingHandler:  bookingHandler.SubmitBooking,
		ListBookingsHandler:   bookingHandler.ListBookings,
		ApproveBookingHandler: bookingHandler.ApproveBooking,
		RejectBookingHandler:  bookingHandler.RejectBooking,
		DeleteBookingHandler:  bookingHandler.DeleteBooking,

		// Payment webhook.
		RazorpayWebhookHandler: webhookHandler.HandleRazorpayWebhook,

		// Admin auth endpoints.
		AdminLoginHandler:        authHandler.Login,
		UpdateCredentialsHandler: authHandler.UpdateCredentials,

		// Package endpoints.
		ListPackagesHandler:  packageHandler.ListPackages,
		GetPackageHandler:    packageHandler.GetPackage,
		CreatePackageHandler: packageHandler.CreatePackage,
		UpdatePackageHandler: packageHandler.UpdatePackage,
		DeletePackageHandler: packageHandler.DeletePackage,

		// Contact endpoints.
		GetContactHandler:    contactHandler.GetContact,
		UpdateContactHandler: contactHandler.UpdateContact,

		// Gallery endpoints.
		ListGalleryHandler:   galleryHandler.ListImages,
		UploadGalleryHandler: galleryHandler.UploadImage,
		DeleteGalleryHandler: galleryHandler.DeleteImage,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background dependency monitor and maintenance worker.
	utils.StartHealthMonitor(utils.GetBroadcastClient(), mongoClient)
	cron.InitMaintenanceWorker(bookingService, mailer)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
