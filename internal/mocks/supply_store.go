package mocks

import (
	"context"
	"sync"

	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
	"github.com/aimun-naharr/food-donation-app-server/internal/store"
	"github.com/google/uuid"
)

// MockSupplyStore is an in-memory store.SupplyStore. It preserves
// insertion order so List can return newest-first like the real store.
type MockSupplyStore struct {
	mu       sync.Mutex
	supplies map[uuid.UUID]*domain.Supply
	order    []uuid.UUID

	// Injectable errors; when set, the corresponding method returns the
	// error without touching state.
	CreateErr error
	ListErr   error
	GetErr    error
	UpdateErr error
	DeleteErr error
}

var _ store.SupplyStore = (*MockSupplyStore)(nil)

// NewMockSupplyStore creates an empty MockSupplyStore.
func NewMockSupplyStore() *MockSupplyStore {
	return &MockSupplyStore{supplies: make(map[uuid.UUID]*domain.Supply)}
}

// Create implements store.SupplyStore.Create.
func (m *MockSupplyStore) Create(ctx context.Context, supply *domain.Supply) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	saved := *supply
	m.supplies[supply.ID] = &saved
	m.order = append(m.order, supply.ID)
	return nil
}

// List implements store.SupplyStore.List, newest insertion first.
func (m *MockSupplyStore) List(ctx context.Context) ([]*domain.Supply, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	supplies := make([]*domain.Supply, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		copied := *m.supplies[m.order[i]]
		supplies = append(supplies, &copied)
	}
	return supplies, nil
}

// GetByID implements store.SupplyStore.GetByID.
func (m *MockSupplyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supply, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	supply, ok := m.supplies[id]
	if !ok {
		return nil, store.ErrSupplyNotFound
	}

	copied := *supply
	return &copied, nil
}

// Update implements store.SupplyStore.Update with the same merge
// semantics as the real store.
func (m *MockSupplyStore) Update(ctx context.Context, id uuid.UUID, patch *domain.SupplyPatch) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	supply, ok := m.supplies[id]
	if !ok {
		return store.ErrSupplyNotFound
	}

	if patch.Name != nil {
		supply.Name = *patch.Name
	}
	if patch.Description != nil {
		supply.Description = *patch.Description
	}
	if patch.Quantity != nil {
		supply.Quantity = *patch.Quantity
	}
	if patch.Category != nil {
		supply.Category = *patch.Category
	}
	if patch.Image != nil {
		supply.Image = *patch.Image
	}
	if len(patch.Extra) > 0 {
		if supply.Extra == nil {
			supply.Extra = make(map[string]any)
		}
		for k, v := range patch.Extra {
			supply.Extra[k] = v
		}
	}

	return nil
}

// Delete implements store.SupplyStore.Delete.
func (m *MockSupplyStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.supplies[id]; !ok {
		return store.ErrSupplyNotFound
	}

	delete(m.supplies, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
