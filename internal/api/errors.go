package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the vendor API.
type APIError struct {
	StatusCode int
	Message    string // best-effort message extracted from the JSON body
	Body       string // raw response body
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError represents a failure below the HTTP layer: DNS, connection
// refused, TLS, timeout, or a malformed response. StatusCode-style handling
// treats it as status 0.
type TransportError struct {
	Err     error
	Timeout bool
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError extracts the APIError from an error chain, if present.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTimeout reports whether the error is a request timeout.
func IsTimeout(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr) && transportErr.Timeout
}

// IsValidationError reports whether the error is a client-side validation
// failure, raised before any network call.
func IsValidationError(err error) bool {
	structured := StructuredErrorFromError(err)
	return structured != nil && structured.Code == ErrValidation
}

// IsNotFoundError checks if the error indicates a missing resource.
func IsNotFoundError(err error) bool {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.StatusCode == 404
	}
	return false
}

// extractAPIMessage pulls a human-readable message out of an error response
// body. The vendor answers JSON on error paths too, with the message under
// "message", "detail", or "error"; non-JSON bodies fall back to the raw text.
func extractAPIMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "empty response body"
	}
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return trimmed
	}
	switch {
	case payload.Message != "":
		return payload.Message
	case payload.Detail != "":
		return payload.Detail
	case payload.Error != "":
		return payload.Error
	}
	return trimmed
}
