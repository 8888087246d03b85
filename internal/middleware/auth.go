// Package middleware provides HTTP middleware components for the application.
// Authentication itself lives in an external service; the middleware here
// only validates the tokens that service issues and exposes the claims to
// handlers.
package middleware

import (
	"log"
	"strings"

	"patron/internal/config"
	"patron/internal/models"
	"patron/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth validates the Bearer token against the shared signing secret and
// stores the creator claims in the request context.
func Auth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.CreatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GetEnv("JWT_SECRET", "patron")), nil
	})
	if err != nil {
		log.Printf("token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}
	if !token.Valid {
		return utils.Unauthorized(c, "invalid token")
	}

	claims, ok := token.Claims.(*models.CreatorClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	c.Locals("claims", claims)
	c.Locals("creatorID", claims.CreatorID)

	return c.Next()
}

// AdminOnly gates the reconciliation endpoints: only tokens carrying the
// admin role may transition payout statuses.
func AdminOnly(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.CreatorClaims)
	if !ok {
		return utils.Unauthorized(c, "invalid claims")
	}

	if !claims.IsAdmin() {
		return utils.Forbidden(c, "insufficient permissions")
	}

	return c.Next()
}
