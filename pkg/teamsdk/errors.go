package teamsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/teamdir/pkg/httpx"
)

// APIError is a non-2xx response from the preview API.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`

	// Code is the machine readable error code (e.g. "not_found")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsNotReady reports whether err is an APIError because the server has no
// team data loaded yet.
func IsNotReady(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable
}

// parseErrorResponse turns an error response into an *APIError. Bodies that
// are not the standard error shape still produce an error carrying the status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp httpx.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Health endpoints answer 503 with a HealthResponse rather than an error body.
	var health HealthResponse
	if err := json.Unmarshal(body, &health); err == nil && health.Status != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        httpx.ErrorCodeNotReady,
			Description: "status " + health.Status,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        httpx.ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
