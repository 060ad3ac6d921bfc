package coresdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned by the service.
const (
	ErrorCodeInvalidRequest   = "invalid_request"
	ErrorCodeInvalidToken     = "invalid_token"
	ErrorCodeAccessDenied     = "access_denied"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeConflict         = "conflict"
	ErrorCodeGone             = "gone"
	ErrorCodeRateLimited      = "rate_limited"
	ErrorCodeInvalidSignature = "invalid_signature"
	ErrorCodeServerError      = "server_error"
)

// APIError is a structured error response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Code, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Code, e.StatusCode)
}

// IsAccessDenied checks if the error is an access_denied API error.
func IsAccessDenied(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == ErrorCodeAccessDenied
}

// IsNotFound checks if the error is a not_found API error.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == ErrorCodeNotFound
}

// parseErrorResponse converts a non-2xx response body into an *APIError.
// Bodies that are not the standard error shape still produce a usable error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected response: %s", string(body)),
	}
}
