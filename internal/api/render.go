package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the uniform error shape crossing the boundary.
// Errors are string-rendered for display; callers cannot distinguish
// kinds programmatically, only show the message.
type errorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// renderError writes a string-rendered error with the given status code.
func renderError(w http.ResponseWriter, code int, message string) {
	renderJSON(w, code, errorResponse{
		Error:  message,
		Status: http.StatusText(code),
	})
}

// renderJSON writes v as a JSON response with the given status code.
// The status line is already on the wire by the time encoding can fail,
// so an encode error can only be logged, not turned into a response.
func renderJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
