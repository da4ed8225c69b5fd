package api

import (
	"net/http"
	"time"

	"github.com/aimun-naharr/food-donation-app-server/internal/api/shared"
)

// HealthResponse is the liveness payload served at the root path.
type HealthResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler serves the liveness route.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Message:   "Server is running smoothly",
		Timestamp: time.Now().UTC(),
	})
}
