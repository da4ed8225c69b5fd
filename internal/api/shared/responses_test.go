package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithDataKeepsNullData(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/x", nil)
	recorder := httptest.NewRecorder()

	RespondWithData(recorder, req, http.StatusOK, "successful", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &doc))

	// "data" must be present and explicitly null, not omitted.
	raw, ok := doc["data"]
	require.True(t, ok)
	assert.Equal(t, "null", string(raw))
}

func TestRespondWithErrorEnvelope(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	recorder := httptest.NewRecorder()

	RespondWithError(recorder, req, http.StatusBadRequest, "User already exists")

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "User already exists", resp.Message)
	assert.Len(t, resp.TraceID, TraceIDLength*2)
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}
