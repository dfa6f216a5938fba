package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/upload-post/uploadpost-cli/internal/update"
)

func TestVersionCheck_UpdateAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name": "v99.0.0", "html_url": "https://github.com/upload-post/uploadpost-cli/releases/tag/v99.0.0"}`))
	}))
	defer server.Close()

	savedURL := update.GitHubReleasesURL
	update.GitHubReleasesURL = server.URL
	defer func() { update.GitHubReleasesURL = savedURL }()

	savedVersion := version
	version = "1.0.0"
	defer func() { version = savedVersion }()

	var stdout string
	stderr := captureStderr(t, func() {
		stdout = captureStdout(t, func() {
			if err := Execute(context.Background(), []string{"version", "--check"}); err != nil {
				t.Errorf("version --check: %v", err)
			}
		})
	})
	if !strings.Contains(stdout, "uploadpost-cli version 1.0.0") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "Update available: 1.0.0 -> 99.0.0") {
		t.Errorf("stderr = %q", stderr)
	}
	if !strings.Contains(stderr, "releases/tag/v99.0.0") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestVersionCheck_UpToDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name": "v1.0.0", "html_url": "https://example.com"}`))
	}))
	defer server.Close()

	savedURL := update.GitHubReleasesURL
	update.GitHubReleasesURL = server.URL
	defer func() { update.GitHubReleasesURL = savedURL }()

	savedVersion := version
	version = "1.0.0"
	defer func() { version = savedVersion }()

	stderr := captureStderr(t, func() {
		captureStdout(t, func() {
			if err := Execute(context.Background(), []string{"version", "--check"}); err != nil {
				t.Errorf("version --check: %v", err)
			}
		})
	})
	if !strings.Contains(stderr, "latest version") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestVersionCheck_DevBuildSkips(t *testing.T) {
	stderr := captureStderr(t, func() {
		captureStdout(t, func() {
			if err := Execute(context.Background(), []string{"version", "--check"}); err != nil {
				t.Errorf("version --check: %v", err)
			}
		})
	})
	if !strings.Contains(stderr, "skipped") {
		t.Errorf("stderr = %q", stderr)
	}
}
