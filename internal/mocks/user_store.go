// Package mocks provides hand-written test doubles for the store and
// service interfaces. They are deliberately simple: in-memory state plus
// injectable errors.
package mocks

import (
	"context"
	"sync"

	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
	"github.com/aimun-naharr/food-donation-app-server/internal/store"
)

// MockUserStore is an in-memory store.UserStore keyed by email.
type MockUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User

	// CreateErr and GetByEmailErr, when set, override the in-memory
	// behavior and are returned as-is.
	CreateErr     error
	GetByEmailErr error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[string]*domain.User)}
}

// NewMockUserStoreWithUser creates a MockUserStore pre-seeded with one
// user, as most login tests need.
func NewMockUserStoreWithUser(user *domain.User) *MockUserStore {
	s := NewMockUserStore()
	s.users[user.Email] = user
	return s
}

// Create implements store.UserStore.Create.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Email]; exists {
		return store.ErrEmailExists
	}

	saved := *user
	m.users[user.Email] = &saved
	return nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailErr != nil {
		return nil, m.GetByEmailErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}
