package store

import (
	"context"

	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
	"github.com/google/uuid"
)

// SupplyStore defines the interface for supply item persistence.
type SupplyStore interface {
	// Create saves a new supply item, including its pass-through extras.
	Create(ctx context.Context, supply *domain.Supply) error

	// List retrieves every supply item, newest first by creation time.
	List(ctx context.Context) ([]*domain.Supply, error)

	// GetByID retrieves a supply item by its unique ID.
	// Returns ErrSupplyNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supply, error)

	// Update applies a partial patch to an existing item: non-nil fields
	// overwrite, extras merge over the stored extras, everything else is
	// retained. Returns ErrSupplyNotFound if zero rows matched.
	Update(ctx context.Context, id uuid.UUID, patch *domain.SupplyPatch) error

	// Delete removes a supply item by its ID.
	// Returns ErrSupplyNotFound if zero rows matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
