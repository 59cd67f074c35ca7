package worldsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/timeworld/pkg/httpx"
)

// API error codes shared between the server handlers and this SDK.
const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeInvalidToken        = "invalid_token"
	ErrorCodeUserNotFound        = "user_not_found"
	ErrorCodeNotFound            = "not_found"
	ErrorCodeInvalidTimezoneMode = "invalid_timezone_mode"
	ErrorCodeOAuthExchange       = "oauth_exchange_failed"
	ErrorCodeServerError         = "server_error"
)

// APIError is the service's error envelope. It implements the error
// interface and is used both by the server (to write HTTP responses) and by
// the SDK (to represent them).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned for malformed bodies or missing fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidToken is returned when the bearer token is absent, invalid
	// or no longer maps to a live session.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or expired token",
	}

	// ErrUserNotFound is returned by login for an unregistered phone. The
	// distinct code lets clients steer users to registration.
	ErrUserNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeUserNotFound,
		Description: "user not found",
	}

	// ErrNotFound is returned when a referenced resource does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrInvalidTimezoneMode is returned when a settings update names an
	// unknown timezone display mode.
	ErrInvalidTimezoneMode = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidTimezoneMode,
		Description: "timezone_mode must be one of 24, 12, both",
	}

	// ErrOAuthExchange is returned when the Yandex code exchange fails.
	ErrOAuthExchange = &APIError{
		StatusCode:  http.StatusBadGateway,
		Code:        ErrorCodeOAuthExchange,
		Description: "oauth provider exchange failed",
	}

	// ErrServerError is the catch-all for unexpected failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response body into a typed *APIError.
// Bodies that are not the standard envelope still yield an APIError carrying
// the status code so callers always get the same error shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var envelope struct {
		Code        string `json:"error"`
		Description string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Code != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        envelope.Code,
			Description: envelope.Description,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected response status %d", resp.StatusCode),
	}
}
