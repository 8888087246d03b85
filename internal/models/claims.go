package models

import "github.com/golang-jwt/jwt/v5"

// Roles carried in tokens issued by the external auth service.
const (
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

// CreatorClaims are the claims this service trusts from the external
// auth collaborator. Tokens are validated locally against the shared
// signing secret; user management itself lives outside this service.
type CreatorClaims struct {
	jwt.RegisteredClaims
	CreatorID uint   `json:"creator_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// IsAdmin reports whether the token belongs to a reconciliation
// operator rather than a creator.
func (c *CreatorClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
