// Package routes defines the API routing configuration.
// It wires repositories, services and handlers and groups endpoints by
// authentication requirements.
package routes

import (
	"renthub/internal/config"
	"renthub/internal/handlers"
	"renthub/internal/middleware"
	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/services/auth"
	"renthub/internal/services/booking"
	"renthub/internal/services/checkout"
	"renthub/internal/services/feeconfig"
	"renthub/internal/services/listing"
	"renthub/internal/services/notification"
	"renthub/internal/services/payment"
	"renthub/internal/services/referral"
	"renthub/internal/services/review"
	"renthub/internal/services/user"
	"renthub/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Services bundles the service layer so background jobs can share the same
// instances the HTTP surface uses.
type Services struct {
	Wallet   wallet.Service
	Referral referral.Service
	Booking  booking.Service
	Checkout checkout.Service
}

// SetupRoutes configures all application routes and returns the wired
// services.
func SetupRoutes(app *fiber.App, db *gorm.DB) *Services {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	listingRepo := repositories.NewListingRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	feeRepo := repositories.NewFeeRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	referralRepo := repositories.NewReferralRepository(db)

	// Services
	walletService := wallet.NewService(walletRepo, repositories.CacheService, wallet.NewPrometheusMetricsCollector())
	feeService := feeconfig.NewService(feeRepo, repositories.CacheService)
	userService := user.NewService(userRepo, walletService)
	authService := auth.NewService(userRepo)
	listingService := listing.NewService(listingRepo)
	notificationService := notification.NewService(
		userRepo,
		config.GetEnv("SENDGRID_API_KEY", ""),
		config.GetEnv("EMAIL_FROM", "no-reply@renthub.example"),
		config.GetEnv("EMAIL_FROM_NAME", "RentHub"),
	)
	referralService := referral.NewService(referralRepo, userRepo, walletService, notificationService)
	bookingService := booking.NewService(bookingRepo, walletService, referralService, notificationService)
	gateway := payment.NewStripeGateway(config.GetEnv("STRIPE_SECRET_KEY", ""))
	checkoutService := checkout.NewService(feeService, walletService, bookingService, listingService, gateway)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	listingHandler := handlers.NewListingHandler(listingService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	walletHandler := handlers.NewWalletHandler(walletService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	reviewHandler := handlers.NewReviewHandler(review.NewService(reviewRepo, bookingRepo))
	referralHandler := handlers.NewReferralHandler(referralService)
	adminHandler := handlers.NewAdminHandler(feeService, userService)
	webhookHandler := handlers.NewWebhookHandler(bookingService, config.GetEnv("STRIPE_WEBHOOK_SECRET", ""))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to RentHub API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", userHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)
	api.Get("/listings", listingHandler.List)
	api.Get("/listings/:id", listingHandler.Get)
	api.Get("/listings/:id/reviews", reviewHandler.ListByListing)

	// Processor callbacks authenticate via signature, not JWT.
	api.Post("/webhooks/stripe", webhookHandler.HandleStripe)

	// Protected endpoints
	authMiddleware := middleware.NewAuthMiddleware(userRepo)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", middleware.HasPermission(models.PermissionChangePassword), authHandler.ChangePassword)
	protected.Get("/me", userHandler.Me)
	protected.Post("/me/become-hubber", userHandler.BecomeHubber)

	protected.Post("/listings", middleware.HasPermission(models.PermissionListingWrite), listingHandler.Create)
	protected.Get("/my/listings", middleware.HasPermission(models.PermissionListingWrite), listingHandler.Mine)
	protected.Put("/listings/:id", middleware.HasPermission(models.PermissionListingWrite), listingHandler.Update)
	protected.Post("/listings/:id/publish", middleware.HasPermission(models.PermissionListingWrite), listingHandler.Publish)
	protected.Post("/listings/:id/unpublish", middleware.HasPermission(models.PermissionListingWrite), listingHandler.Unpublish)
	protected.Delete("/listings/:id", middleware.HasPermission(models.PermissionListingWrite), listingHandler.Delete)

	protected.Post("/checkout/quote", middleware.HasPermission(models.PermissionBookingWrite), checkoutHandler.Quote)
	protected.Post("/checkout/submit", middleware.HasPermission(models.PermissionBookingWrite), checkoutHandler.Submit)
	protected.Get("/checkout/bookings/:reference", middleware.HasPermission(models.PermissionBookingRead), checkoutHandler.AwaitBooking)

	protected.Get("/bookings/:reference", middleware.HasPermission(models.PermissionBookingRead), bookingHandler.GetByReference)
	protected.Get("/my/bookings", middleware.HasPermission(models.PermissionBookingRead), bookingHandler.MyBookings)
	protected.Get("/my/hosted-bookings", middleware.HasPermission(models.PermissionBookingRead), bookingHandler.HostedBookings)

	protected.Get("/wallet", middleware.HasPermission(models.PermissionWalletRead), walletHandler.GetWallet)
	protected.Get("/wallet/balances", middleware.HasPermission(models.PermissionWalletRead), walletHandler.GetBalances)
	protected.Get("/wallet/transactions", middleware.HasPermission(models.PermissionWalletRead), walletHandler.GetTransactions)

	protected.Post("/reviews", middleware.HasPermission(models.PermissionReviewWrite), reviewHandler.Create)
	protected.Get("/my/referrals", referralHandler.MyReferrals)

	// Admin endpoints
	admin := protected.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Get("/fees", adminHandler.GetFeeConfig)
	admin.Put("/fees", adminHandler.UpdateFeeConfig)
	admin.Put("/users/:id/fee-override", adminHandler.SetFeeOverride)
	admin.Delete("/users/:id/fee-override", adminHandler.RemoveFeeOverride)
	admin.Put("/users/:id/super-hubber", adminHandler.SetSuperHubber)
	admin.Get("/users", adminHandler.ListUsers)

	return &Services{
		Wallet:   walletService,
		Referral: referralService,
		Booking:  bookingService,
		Checkout: checkoutService,
	}
}
