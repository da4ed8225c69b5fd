package api

import (
	"errors"
	"net/http"

	"github.com/aimun-naharr/food-donation-app-server/internal/api/shared"
	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
	"github.com/aimun-naharr/food-donation-app-server/internal/store"
)

// SupplyHandler handles supply item API requests. Payloads are
// semi-structured: the named fields are typed, everything else passes
// through to the store untouched.
type SupplyHandler struct {
	supplyStore store.SupplyStore
}

// NewSupplyHandler creates a new SupplyHandler with the given dependencies.
func NewSupplyHandler(supplyStore store.SupplyStore) *SupplyHandler {
	return &SupplyHandler{
		supplyStore: supplyStore,
	}
}

// Create handles POST /api/v1/create-new.
// The body is an arbitrary JSON object; known fields are validated
// lightly and the rest are persisted verbatim.
func (h *SupplyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := shared.DecodeJSON(r, &fields); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	supply, err := domain.NewSupplyFromFields(fields)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.supplyStore.Create(r.Context(), supply); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Something went wrong", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, "Item created successfully", supply)
}

// List handles GET /api/v1/all-supplies, returning every item newest
// first. Failures answer 500; no path ends without a response.
func (h *SupplyHandler) List(w http.ResponseWriter, r *http.Request) {
	supplies, err := h.supplyStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Something went wrong", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "successful", supplies)
}

// GetByID handles GET /api/v1/items/{id}. A malformed ID is a 400; a
// well-formed ID with no matching item answers success with a null data
// payload, which is what clients of this route already expect.
func (h *SupplyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	supply, err := h.supplyStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrSupplyNotFound) {
			shared.RespondWithData(w, r, http.StatusOK, "successful", nil)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Something went wrong", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "successful", supply)
}

// Update handles PUT /api/v1/items/{id} with partial merge semantics:
// supplied fields overwrite, new extras are added, everything else is
// retained. Answers 404 when no item matched.
func (h *SupplyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var fields map[string]any
	if err := shared.DecodeJSON(r, &fields); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	patch, err := domain.ParseSupplyPatch(fields)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.supplyStore.Update(r.Context(), id, patch); err != nil {
		if errors.Is(err, store.ErrSupplyNotFound) {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Something went wrong", err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "successful")
}

// Delete handles DELETE /api/v1/items/{id}.
// Answers 404 when no item matched, so a repeated delete is visible.
func (h *SupplyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.supplyStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrSupplyNotFound) {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Something went wrong", err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "successful")
}
