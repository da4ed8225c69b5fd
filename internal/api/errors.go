package api

import (
	"errors"
	"net/http"

	"github.com/aimun-naharr/food-donation-app-server/internal/api/shared"
	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
	"github.com/aimun-naharr/food-donation-app-server/internal/service/auth"
	"github.com/aimun-naharr/food-donation-app-server/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrSupplyNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	// Bad request errors. The registration conflict answers 400 rather
	// than 409: existing clients key off that status.
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrEmptySupplyName),
		errors.Is(err, domain.ErrEmptySupplyImage),
		errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Raw error strings never reach clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Something went wrong"
	}

	switch {
	case errors.Is(err, store.ErrEmailExists):
		return "User already exists"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"

	case errors.Is(err, store.ErrSupplyNotFound):
		return "Item not found"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid item ID"

	case errors.Is(err, domain.ErrEmptySupplyName):
		return "Item name is required"

	case errors.Is(err, domain.ErrEmptySupplyImage):
		return "Item image is required"

	case errors.Is(err, domain.ErrInvalidQuantity):
		return "Item quantity must be a whole number"

	default:
		return "Something went wrong"
	}
}

// HandleAPIError maps the error to a status code and safe message and
// writes the terminating response. Every handler error path funnels
// through here, so no request can end without a response.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
