package utils

import (
	"strconv"
	"time"

	"patron/internal/config"
	"patron/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateCreatorToken signs a short-lived token carrying the given
// creator claims. Token issuance normally belongs to the external auth
// service; this mirrors its format for development tooling and tests.
func GenerateCreatorToken(creatorID uint, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := models.CreatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "patron-api",
			Subject:   strconv.FormatUint(uint64(creatorID), 10),
		},
		CreatorID: creatorID,
		Email:     email,
		Role:      role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("JWT_SECRET", "patron")))
}
