// Package shared holds the response envelope, request decoding, and
// context helpers used by every API handler.
package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Response is the envelope every endpoint answers with: a success flag
// and a human-readable message, plus the trace ID when one is available.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// DataResponse extends Response with a data payload. The data key is
// always serialized, so a read that found nothing yields "data": null
// rather than omitting the key.
type DataResponse struct {
	Response
	Data any `json:"data"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes a success envelope without a data payload.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, Response{
		Success: true,
		Message: message,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithData writes a success envelope carrying a data payload.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, DataResponse{
		Response: Response{
			Success: true,
			Message: message,
			TraceID: GetTraceID(r.Context()),
		},
		Data: data,
	})
}

// RespondWithError writes a failure envelope with the given status code
// and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, Response{
		Success: false,
		Message: message,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes a failure envelope with a sanitized user
// message and logs the underlying error. Server errors (5xx) log at
// ERROR level, client errors at DEBUG. The raw error string never
// reaches the client.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, Response{
		Success: false,
		Message: userMessage,
		TraceID: traceID,
	})
}
