package mocks

import (
	"context"
	"errors"

	"github.com/aimun-naharr/food-donation-app-server/internal/service/auth"
)

// MockJWTService is a configurable auth.JWTService double.
type MockJWTService struct {
	Token       string
	Err         error
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken returns the configured token or error.
func (m *MockJWTService) GenerateToken(ctx context.Context, email string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken returns the configured claims or error.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}

// MockPasswordVerifier is an auth.PasswordVerifier double that succeeds
// or fails wholesale.
type MockPasswordVerifier struct {
	ShouldSucceed bool
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare reports a mismatch unless configured to succeed.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

// MockPasswordHasher is an auth.PasswordHasher double producing
// recognizable fake hashes.
type MockPasswordHasher struct {
	Err error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash returns a marker-prefixed pseudo hash, or the configured error.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}
