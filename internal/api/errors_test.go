package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
	"github.com/aimun-naharr/food-donation-app-server/internal/service/auth"
	"github.com/aimun-naharr/food-donation-app-server/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"supply not found", store.ErrSupplyNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"wrapped invalid id", fmt.Errorf("%w: abc", domain.ErrInvalidID), http.StatusBadRequest},
		{"missing supply name", domain.ErrEmptySupplyName, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"email exists", store.ErrEmailExists, "User already exists"},
		{"invalid credentials", auth.ErrInvalidCredentials, "Invalid email or password"},
		{"supply not found", store.ErrSupplyNotFound, "Item not found"},
		{"invalid id", domain.ErrInvalidID, "Invalid item ID"},
		{"missing image", domain.ErrEmptySupplyImage, "Item image is required"},
		{"unknown error", errors.New("pg: connection reset"), "Something went wrong"},
		{"nil", nil, "Something went wrong"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

// Raw error strings never reach the client, only the mapped message.
func TestSafeMessageNeverEchoesInternalError(t *testing.T) {
	t.Parallel()

	internal := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	msg := GetSafeErrorMessage(internal)
	assert.NotContains(t, msg, "10.0.0.5")
	assert.Equal(t, "Something went wrong", msg)
}
