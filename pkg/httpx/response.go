package httpx

import (
	"encoding/json"
	"net/http"
)

const (
	ErrorCodeNotFound    = "not_found"
	ErrorCodeNotReady    = "not_ready"
	ErrorCodeServerError = "server_error"
	ErrorCodeRateLimited = "rate_limit_exceeded"
)

// ErrorResponse is the JSON body written for every API error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse with the given status code.
func WriteError(w http.ResponseWriter, code int, errCode, description string) {
	WriteJSON(w, code, ErrorResponse{
		Error:            errCode,
		ErrorDescription: description,
	})
}

// WriteHTML writes an already rendered HTML document.
func WriteHTML(w http.ResponseWriter, code int, body []byte) {
	NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Preview pages are re-rendered on every data refresh so they must never be
// served stale.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
