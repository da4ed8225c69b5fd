package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and validating JWT tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT containing the user's email and
	// the configured expiry. Returns the token string or an error if
	// signing fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, malformed,
	// invalid signature).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded claims of an issued token.
type Claims struct {
	// Email is the address of the user the token was issued for.
	Email string `json:"email,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
