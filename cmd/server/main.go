// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"time"

	"patron/internal/config"
	"patron/internal/repositories"
	"patron/internal/routes"
	"patron/internal/services/payout"
	"patron/internal/services/subscription"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Fee schedules are loaded once and validated before anything else
	// starts: a malformed schedule is a deployment error, not a
	// per-request condition.
	payoutSchedule, err := config.LoadPayoutSchedule()
	if err != nil {
		log.Fatalf("Invalid payout fee schedule: %v", err)
	}
	payoutService, err := payout.NewService(payoutSchedule)
	if err != nil {
		log.Fatalf("Invalid payout fee schedule: %v", err)
	}

	subscriptionSchedule, err := config.LoadSubscriptionSchedule()
	if err != nil {
		log.Fatalf("Invalid subscription fee schedule: %v", err)
	}
	subscriptionCalc, err := subscription.NewCalculator(subscriptionSchedule)
	if err != nil {
		log.Fatalf("Invalid subscription fee schedule: %v", err)
	}

	// Initialize databases (PostgreSQL + Redis)
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Successfully connected to database")

	// Clear stale cache entries on startup
	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("Failed to flush cache: %v", err)
		}
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close redis connection: %v", err)
			}
		}
	}()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		DisableStartupMessage: config.IsProduction(),
	})

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Withdrawal endpoints are rate limited per client IP.
	app.Use("/api/payouts", limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// Routes
	routes.SetupRoutes(app, repositories.DB, payoutService, subscriptionCalc)

	// Start server
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
