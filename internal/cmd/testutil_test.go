package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// captureStdout executes a function and captures its stdout output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// captureStderr executes a function and captures its stderr output.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// routeHandler routes requests to registered method+path handlers and fails
// the test on anything unexpected.
type routeHandler struct {
	t      *testing.T
	routes map[string]http.HandlerFunc
}

func newRouteHandler(t *testing.T) *routeHandler {
	return &routeHandler{t: t, routes: make(map[string]http.HandlerFunc)}
}

func (h *routeHandler) On(method, path string, handler http.HandlerFunc) *routeHandler {
	h.routes[method+" "+path] = handler
	return h
}

func (h *routeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if handler, ok := h.routes[r.Method+" "+r.URL.Path]; ok {
		handler(w, r)
		return
	}
	h.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error": "no route"}`))
}

// writeTempMedia creates a throwaway media file for upload tests.
func writeTempMedia(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp media: %v", err)
	}
	return path
}

func jsonResponse(statusCode int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}
}

// setupTestEnv starts a mock vendor API and points the CLI at it through the
// environment. The private-address guard is relaxed so the loopback test
// server passes base URL validation.
func setupTestEnv(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("UPLOAD_POST_API_KEY", "test-key")
	t.Setenv("UPLOAD_POST_BASE_URL", server.URL)
	t.Setenv("UPLOAD_POST_ALLOW_PRIVATE", "1")
	t.Setenv("UPLOAD_POST_OUTPUT", "text")

	return server
}
