package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withReleasesURL(t *testing.T, url string) {
	t.Helper()
	original := GitHubReleasesURL
	GitHubReleasesURL = url
	t.Cleanup(func() { GitHubReleasesURL = original })
}

func TestCheckForUpdateSkipsDevBuilds(t *testing.T) {
	withReleasesURL(t, "http://127.0.0.1:0") // would fail if contacted

	if got := CheckForUpdate(context.Background(), "dev"); got != nil {
		t.Errorf("dev build should skip the check, got %+v", got)
	}
	if got := CheckForUpdate(context.Background(), ""); got != nil {
		t.Errorf("empty version should skip the check, got %+v", got)
	}
}

func TestCheckForUpdate(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		latestTag     string
		wantAvailable bool
	}{
		{"newer available", "1.0.0", "v1.2.0", true},
		{"up to date", "1.2.0", "v1.2.0", false},
		{"ahead of release", "1.3.0", "v1.2.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"tag_name": "` + tt.latestTag + `", "html_url": "https://example.com/releases"}`))
			}))
			defer server.Close()
			withReleasesURL(t, server.URL)

			got := CheckForUpdate(context.Background(), tt.current)
			if got == nil {
				t.Fatal("expected a result")
			}
			if got.UpdateAvailable != tt.wantAvailable {
				t.Errorf("UpdateAvailable = %v, want %v", got.UpdateAvailable, tt.wantAvailable)
			}
			if got.LatestVersion != "1.2.0" {
				t.Errorf("LatestVersion = %q", got.LatestVersion)
			}
		})
	}
}

func TestCheckForUpdateNeverErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden) // rate limited
	}))
	defer server.Close()
	withReleasesURL(t, server.URL)

	if got := CheckForUpdate(context.Background(), "1.0.0"); got != nil {
		t.Errorf("failed check should return nil, got %+v", got)
	}
}

func TestNormalizeVersion(t *testing.T) {
	if got := normalizeVersion("1.2.3"); got != "v1.2.3" {
		t.Errorf("normalizeVersion = %q", got)
	}
	if got := normalizeVersion("v1.2.3"); got != "v1.2.3" {
		t.Errorf("normalizeVersion = %q", got)
	}
}
