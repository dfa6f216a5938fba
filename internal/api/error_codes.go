package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents machine-readable error codes for scripted callers.
type ErrorCode string

const (
	// ErrBadRequest indicates a malformed request (HTTP 400).
	ErrBadRequest ErrorCode = "bad_request"
	// ErrUnauthorized indicates the API key is missing or invalid (HTTP 401).
	ErrUnauthorized ErrorCode = "unauthorized"
	// ErrForbidden indicates the account lacks permission (HTTP 403).
	ErrForbidden ErrorCode = "forbidden"
	// ErrNotFound indicates the requested resource does not exist (HTTP 404).
	ErrNotFound ErrorCode = "not_found"
	// ErrValidation indicates client-side input validation failed; the
	// request was never sent.
	ErrValidation ErrorCode = "validation_failed"
	// ErrRateLimited indicates too many requests (HTTP 429).
	ErrRateLimited ErrorCode = "rate_limited"
	// ErrServerError indicates a vendor-side error (HTTP 5xx).
	ErrServerError ErrorCode = "server_error"
	// ErrTimeout indicates the request timed out.
	ErrTimeout ErrorCode = "timeout"
	// ErrTransport indicates a network-level failure below HTTP.
	ErrTransport ErrorCode = "transport_failed"
	// ErrUnknown indicates an unclassified error.
	ErrUnknown ErrorCode = "unknown"
)

// Suggestion returns a human-readable hint for resolving this error.
func (c ErrorCode) Suggestion() string {
	switch c {
	case ErrUnauthorized:
		return "Run 'uploadpost auth login' or pass --api-key"
	case ErrForbidden:
		return "Check your Upload-Post plan and account permissions"
	case ErrNotFound:
		return "Verify the profile, request ID, or job ID exists"
	case ErrValidation:
		return "Check the input values"
	case ErrBadRequest:
		return "Check the request parameters"
	case ErrRateLimited:
		return "Wait a moment and retry"
	case ErrServerError:
		return "The vendor API had an error; try again later"
	case ErrTimeout:
		return "The request timed out; check connectivity or raise --timeout"
	case ErrTransport:
		return "Check network connectivity and the base URL"
	default:
		return ""
	}
}

// ErrorCodeFromStatus maps an HTTP status code to an ErrorCode.
func ErrorCodeFromStatus(statusCode int) ErrorCode {
	switch statusCode {
	case 400, 422:
		return ErrBadRequest
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 429:
		return ErrRateLimited
	default:
		if statusCode >= 500 && statusCode < 600 {
			return ErrServerError
		}
		return ErrUnknown
	}
}

// StructuredError provides machine-readable error information. It backs the
// CLI's JSON error output and exit-code mapping.
type StructuredError struct {
	Code          ErrorCode      `json:"code"`
	Message       string         `json:"message"`
	Suggestion    string         `json:"suggestion,omitempty"`
	Context       map[string]any `json:"context,omitempty"`
	AllowedValues []string       `json:"allowed_values,omitempty"`
}

func (e *StructuredError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewValidationError creates a StructuredError for an input outside its
// allowed value set, including the allowed list so callers can self-correct.
func NewValidationError(field string, got string, allowed []string) *StructuredError {
	return &StructuredError{
		Code:          ErrValidation,
		Message:       fmt.Sprintf("invalid %s %q: must be one of %s", field, got, strings.Join(allowed, ", ")),
		Suggestion:    fmt.Sprintf("Use one of: %s", strings.Join(allowed, ", ")),
		AllowedValues: allowed,
		Context:       map[string]any{"field": field, "got": got},
	}
}

// NewMissingFieldError creates a StructuredError for a required field that
// was not supplied.
func NewMissingFieldError(field string) *StructuredError {
	return &StructuredError{
		Code:       ErrValidation,
		Message:    fmt.Sprintf("%s is required", field),
		Suggestion: fmt.Sprintf("Supply a value for %s", field),
		Context:    map[string]any{"field": field},
	}
}

// NewUnsupportedPlatformError creates a StructuredError for a platform that
// exists but is not valid for the requested upload variant.
func NewUnsupportedPlatformError(platform, kind string, allowed []string) *StructuredError {
	return &StructuredError{
		Code:          ErrValidation,
		Message:       fmt.Sprintf("platform %q does not support %s uploads", platform, kind),
		Suggestion:    fmt.Sprintf("Use one of: %s", strings.Join(allowed, ", ")),
		AllowedValues: allowed,
		Context:       map[string]any{"platform": platform, "kind": kind},
	}
}

// NewFileNotFoundError creates a StructuredError for a local media path that
// does not exist or is not a regular file.
func NewFileNotFoundError(field, path string) *StructuredError {
	return &StructuredError{
		Code:       ErrValidation,
		Message:    fmt.Sprintf("%s file not found: %s", field, path),
		Suggestion: "Check the file path, or pass an http(s) URL instead",
		Context:    map[string]any{"field": field, "path": path},
	}
}

// StructuredErrorFromError converts any error to a StructuredError.
// It handles StructuredError, APIError, TransportError, and generic errors.
func StructuredErrorFromError(err error) *StructuredError {
	if err == nil {
		return nil
	}

	var se *StructuredError
	if errors.As(err, &se) {
		return se
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		code := ErrorCodeFromStatus(apiErr.StatusCode)
		return &StructuredError{
			Code:       code,
			Message:    apiErr.Message,
			Suggestion: code.Suggestion(),
			Context:    map[string]any{"status_code": apiErr.StatusCode},
		}
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		code := ErrTransport
		if transportErr.Timeout {
			code = ErrTimeout
		}
		return &StructuredError{
			Code:       code,
			Message:    transportErr.Error(),
			Suggestion: code.Suggestion(),
		}
	}

	return &StructuredError{
		Code:    ErrUnknown,
		Message: err.Error(),
	}
}
