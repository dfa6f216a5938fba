package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestExtractAPIMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message": "missing title"}`, "missing title"},
		{"detail field", `{"detail": "quota exceeded"}`, "quota exceeded"},
		{"error field", `{"error": "invalid api key"}`, "invalid api key"},
		{"message wins over error", `{"message": "a", "error": "b"}`, "a"},
		{"non-json", "Bad Gateway", "Bad Gateway"},
		{"empty", "", "empty response body"},
		{"json without known fields", `{"foo": "bar"}`, `{"foo": "bar"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractAPIMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("extractAPIMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestIsAPIError(t *testing.T) {
	apiErr := &APIError{StatusCode: 404, Message: "not found"}
	wrapped := fmt.Errorf("lookup failed: %w", apiErr)

	got, ok := IsAPIError(wrapped)
	if !ok || got.StatusCode != 404 {
		t.Errorf("IsAPIError = %v, %v", got, ok)
	}
	if _, ok := IsAPIError(errors.New("plain")); ok {
		t.Error("plain error should not be an APIError")
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(&TransportError{Err: errors.New("deadline"), Timeout: true}) {
		t.Error("timeout transport error should report timeout")
	}
	if IsTimeout(&TransportError{Err: errors.New("refused")}) {
		t.Error("non-timeout transport error should not report timeout")
	}
}

func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(&APIError{StatusCode: 404}) {
		t.Error("404 should be not-found")
	}
	if IsNotFoundError(&APIError{StatusCode: 500}) {
		t.Error("500 is not not-found")
	}
}

func TestStructuredErrorFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
	}{
		{"nil", nil, ""},
		{"passthrough", NewMissingFieldError("user"), ErrValidation},
		{"api 401", &APIError{StatusCode: 401, Message: "bad key"}, ErrUnauthorized},
		{"api 429", &APIError{StatusCode: 429}, ErrRateLimited},
		{"api 503", &APIError{StatusCode: 503}, ErrServerError},
		{"transport", &TransportError{Err: errors.New("refused")}, ErrTransport},
		{"transport timeout", &TransportError{Err: errors.New("deadline"), Timeout: true}, ErrTimeout},
		{"generic", errors.New("boom"), ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StructuredErrorFromError(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if got == nil || got.Code != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
		})
	}
}
