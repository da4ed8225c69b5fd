package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	handler := NewHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.Check(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Server is running smoothly", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
}
