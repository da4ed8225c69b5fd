package store

import (
	"context"

	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry
	// a hashed password; plaintext is never persisted.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if no user with that email exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
