package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnalyticsProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analytics/demo" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("platforms"); got != "tiktok,youtube" {
			t.Errorf("platforms = %q", got)
		}
		if got := q.Get("page_id"); got != "fb-1" {
			t.Errorf("page_id = %q", got)
		}
		_, _ = w.Write([]byte(`{"tiktok": {"followers": 10}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "key")
	result, err := client.Analytics().Profile(context.Background(), "demo", ProfileAnalyticsOptions{
		Platforms: []Platform{TikTok, YouTube},
		PageID:    "fb-1",
	})
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if _, ok := result["tiktok"]; !ok {
		t.Errorf("result = %v", result)
	}
}

func TestAnalyticsProfileEscapesPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/analytics/me%2Fyou" {
			t.Errorf("escaped path = %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "key")
	if _, err := client.Analytics().Profile(context.Background(), "me/you", ProfileAnalyticsOptions{}); err != nil {
		t.Fatalf("Profile: %v", err)
	}
}

func TestTotalImpressions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/uploadposts/total-impressions/demo" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("period"); got != "last_month" {
			t.Errorf("period = %q", got)
		}
		if got := q.Get("platform"); got != "tiktok,x" {
			t.Errorf("platform = %q", got)
		}
		if got := q.Get("breakdown"); got != "true" {
			t.Errorf("breakdown = %q", got)
		}
		if got := q.Get("metrics"); got != "impressions,likes" {
			t.Errorf("metrics = %q", got)
		}
		_, _ = w.Write([]byte(`{"total_impressions": 1234}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "key")
	result, err := client.Analytics().TotalImpressions(context.Background(), "demo", ImpressionsOptions{
		Period:    "last_month",
		Platforms: []Platform{TikTok, X},
		Breakdown: true,
		Metrics:   []string{"impressions", "likes"},
	})
	if err != nil {
		t.Fatalf("TotalImpressions: %v", err)
	}
	if result["total_impressions"] != float64(1234) {
		t.Errorf("result = %v", result)
	}
}

func TestTotalImpressionsOmitsUnsetParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		for _, key := range []string{"period", "start_date", "end_date", "date", "platform", "breakdown", "metrics"} {
			if q.Has(key) {
				t.Errorf("unset query param %q was sent", key)
			}
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "key")
	if _, err := client.Analytics().TotalImpressions(context.Background(), "demo", ImpressionsOptions{}); err != nil {
		t.Fatalf("TotalImpressions: %v", err)
	}
}

func TestAnalyticsPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/uploadposts/post-analytics/req_9" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"views": 99}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "key")
	if _, err := client.Analytics().Post(context.Background(), "req_9"); err != nil {
		t.Fatalf("Post: %v", err)
	}
}

func TestPlatformMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/uploadposts/platform-metrics" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"tiktok": ["views", "likes"]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "key")
	if _, err := client.Analytics().PlatformMetrics(context.Background()); err != nil {
		t.Fatalf("PlatformMetrics: %v", err)
	}
}
