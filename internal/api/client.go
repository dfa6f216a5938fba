package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/upload-post/uploadpost-cli/internal/debug"
)

const (
	// DefaultBaseURL is the vendor API root.
	DefaultBaseURL = "https://api.upload-post.com/api"
	// DefaultTimeout bounds each request. Uploads stream potentially large
	// media, so the default is generous; the CLI exposes --timeout.
	DefaultTimeout = 5 * time.Minute
)

// Client is the Upload-Post API client. Every operation is one synchronous
// authenticated request: normalize arguments, build the payload, send it,
// translate the response.
//
// Requests are never retried. The vendor API is the system of record for
// idempotency, and a blind re-POST could publish the same content twice.
//
// A Client is safe for concurrent use; each call builds its own request
// state and the only shared fields are immutable after construction.
type Client struct {
	BaseURL   string
	APIKey    string
	HTTP      *http.Client
	UserAgent string
}

// Result is a decoded vendor response. The vendor API evolves independently
// of this client, so responses pass through without schema enforcement.
type Result map[string]any

// Compile-time interface implementation check.
var _ Requester = (*Client)(nil)

// New creates an Upload-Post API client. An empty baseURL selects the
// production endpoint.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		baseTransport = &http.Transport{}
	}
	transport := baseTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		APIKey:  apiKey,
		HTTP: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		},
	}
}

// apiPath joins an endpoint path onto the base URL.
func (c *Client) apiPath(path string) string {
	if path != "" && path[0] != '/' {
		path = "/" + path
	}
	return c.BaseURL + path
}

// get performs a GET request with optional query parameters.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	reqURL := c.apiPath(path)
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	return c.send(ctx, http.MethodGet, reqURL, nil, "", result)
}

// do performs a request with an optional JSON body.
func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
		contentType = "application/json"
	}
	return c.send(ctx, method, c.apiPath(path), reader, contentType, result)
}

// postForm sends an upload form. With file attachments the body is streamed
// as multipart/form-data; otherwise it is urlencoded. Files are opened at
// send time and closed on every exit path.
func (c *Client) postForm(ctx context.Context, path string, form *Form, result any) error {
	if !form.HasFiles() {
		body := strings.NewReader(form.encodeURLValues())
		return c.send(ctx, http.MethodPost, c.apiPath(path), body, "application/x-www-form-urlencoded", result)
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		err := form.writeMultipart(writer)
		if closeErr := writer.Close(); err == nil {
			err = closeErr
		}
		pw.CloseWithError(err)
	}()

	return c.send(ctx, http.MethodPost, c.apiPath(path), pr, writer.FormDataContentType(), result)
}

// send performs one HTTP exchange and translates the outcome: 2xx bodies
// decode into result, non-2xx become *APIError, and failures below HTTP
// become *TransportError.
func (c *Client) send(ctx context.Context, method, reqURL string, body io.Reader, contentType string, result any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Apikey "+c.APIKey)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Upload-Post-Source", "cli")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		// A StructuredError raised while streaming the multipart body
		// (missing file, read failure) surfaces through the pipe; keep it
		// as a validation error rather than wrapping it as transport.
		var se *StructuredError
		if errors.As(err, &se) {
			return se
		}
		if debug.IsEnabled(ctx) {
			slog.Debug("request failed", "method", method, "url", reqURL, "error", err)
		}
		return &TransportError{Err: err, Timeout: isTimeoutErr(err)}
	}

	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return &TransportError{Err: fmt.Errorf("read response: %w", err), Timeout: isTimeoutErr(err)}
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("request complete", "method", method, "url", reqURL, "status", resp.StatusCode, "duration", time.Since(start))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractAPIMessage(respBody),
			Body:       string(respBody),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unexpected API response format (JSON decode failed): %w", err)
		}
	}
	return nil
}

func isTimeoutErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return false
}
