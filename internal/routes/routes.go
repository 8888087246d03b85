// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"patron/internal/handlers"
	"patron/internal/middleware"
	"patron/internal/repositories"
	"patron/internal/services/payout"
	"patron/internal/services/subscription"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// The fee services are built once at startup, from immutable schedules,
// and shared by every request.
func SetupRoutes(app *fiber.App, db *gorm.DB, payoutService payout.Service, subscriptionCalc *subscription.Calculator) {
	// Initialize repositories
	payoutRepo := repositories.NewPayoutRequestRepository(db)
	creatorRepo := repositories.NewCreatorRepository(db, repositories.CacheService)

	// Initialize handlers
	payoutHandler := handlers.NewPayoutHandler(payoutService, payoutRepo, creatorRepo)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionCalc)

	app.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Patron API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	// Creator routes with authentication
	authenticated := api.Group("/", middleware.Auth)

	payouts := authenticated.Group("/payouts")
	payouts.Post("/quote", payoutHandler.QuotePayout)
	payouts.Post("/", payoutHandler.ConfirmPayout)
	payouts.Get("/", payoutHandler.ListPayouts)

	authenticated.Post("/subscriptions/price-preview", subscriptionHandler.PricePreview)

	// Reconciliation routes, admin only
	admin := authenticated.Group("/admin", middleware.AdminOnly)
	admin.Patch("/payouts/:id/status", payoutHandler.UpdatePayoutStatus)
}
