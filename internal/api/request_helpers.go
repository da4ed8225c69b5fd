package api

import (
	"fmt"
	"net/http"

	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathUUID extracts and parses a UUID from the URL path parameters.
// A missing or unparseable value yields domain.ErrInvalidID, which the
// error mapper turns into a 400 rather than the 404 an absent record
// produces. Parsing happens before any store lookup.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrInvalidID, paramName)
	}

	return id, nil
}
