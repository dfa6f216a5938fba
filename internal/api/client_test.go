package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(baseURL, apiKey string) *Client {
	client := New(baseURL, apiKey)
	client.HTTP.Timeout = 5 * time.Second
	return client
}

func TestNewDefaults(t *testing.T) {
	client := New("", "key")
	if client.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL, DefaultBaseURL)
	}
	if client.HTTP.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.HTTP.Timeout, DefaultTimeout)
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	client := New("https://example.com/api/", "key")
	if client.BaseURL != "https://example.com/api" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", client.BaseURL)
	}
}

func TestAPIPath(t *testing.T) {
	client := New("https://example.com/api", "key")

	if got := client.apiPath("/upload"); got != "https://example.com/api/upload" {
		t.Errorf("apiPath(/upload) = %q", got)
	}
	if got := client.apiPath("upload"); got != "https://example.com/api/upload" {
		t.Errorf("apiPath(upload) = %q", got)
	}
}

func TestSendSetsHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "secret-key")
	client.UserAgent = "uploadpost-cli/test"

	var result Result
	if err := client.get(context.Background(), "/uploadposts/history", nil, &result); err != nil {
		t.Fatalf("get() error: %v", err)
	}

	if gotAuth != "Apikey secret-key" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Apikey secret-key")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotUA != "uploadpost-cli/test" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestSendAPIError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantMsg    string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error": "invalid api key"}`, "invalid api key"},
		{"message field", http.StatusBadRequest, `{"message": "missing title"}`, "missing title"},
		{"non-json body", http.StatusBadGateway, `upstream down`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL, "key")
			err := client.get(context.Background(), "/x", nil, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			apiErr, ok := err.(*APIError)
			if !ok {
				t.Fatalf("expected *APIError, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if tt.wantMsg != "" && apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestSendTransportError(t *testing.T) {
	// Port from a closed test server: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := newTestClient(serverURL, "key")
	err := client.get(context.Background(), "/x", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*TransportError); !ok {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
}

func TestSendDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "key")
	var result Result
	err := client.get(context.Background(), "/x", nil, &result)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "unexpected API response format") {
		t.Errorf("error = %v, want decode failure message", err)
	}
}

func TestPostFormWithoutFilesIsURLEncoded(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	form := &Form{}
	form.Add("user", "demo")
	form.Add("platform[]", "x")
	form.Add("platform[]", "bluesky")

	client := newTestClient(server.URL, "key")
	var result Result
	if err := client.postForm(context.Background(), "/upload_text", form, &result); err != nil {
		t.Fatalf("postForm() error: %v", err)
	}

	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if !strings.Contains(gotBody, "platform%5B%5D=x") || !strings.Contains(gotBody, "platform%5B%5D=bluesky") {
		t.Errorf("body = %q, want repeated platform[] fields", gotBody)
	}
}

func TestPostFormWithFilesIsMultipart(t *testing.T) {
	videoPath := writeTempFile(t, "clip.mp4", "fake video bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("user"); got != "demo" {
			t.Errorf("user = %q", got)
		}
		file, header, err := r.FormFile("video")
		if err != nil {
			t.Fatalf("FormFile(video): %v", err)
		}
		defer func() { _ = file.Close() }()
		if header.Filename != "clip.mp4" {
			t.Errorf("filename = %q, want clip.mp4", header.Filename)
		}
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	form := &Form{}
	form.Add("user", "demo")
	if err := form.AttachMedia("video", videoPath); err != nil {
		t.Fatalf("AttachMedia: %v", err)
	}

	client := newTestClient(server.URL, "key")
	var result Result
	if err := client.postForm(context.Background(), "/upload", form, &result); err != nil {
		t.Fatalf("postForm() error: %v", err)
	}
}
