package api

import (
	"errors"
	"testing"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{"tiktok", TikTok, false},
		{"TikTok", TikTok, false},
		{" youtube ", YouTube, false},
		{"twitter", X, false},
		{"x", X, false},
		{"myspace", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePlatform(%q) expected error", tt.input)
				}
				var se *StructuredError
				if !errors.As(err, &se) {
					t.Fatalf("expected *StructuredError, got %T", err)
				}
				if len(se.AllowedValues) == 0 {
					t.Error("expected AllowedValues in validation error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlatform(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePlatform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePlatformsRejectsFirstUnknown(t *testing.T) {
	_, err := ParsePlatforms([]string{"tiktok", "friendster", "x"})
	if err == nil {
		t.Fatal("expected error")
	}

	platforms, err := ParsePlatforms([]string{"tiktok", "Twitter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(platforms) != 2 || platforms[0] != TikTok || platforms[1] != X {
		t.Errorf("platforms = %v", platforms)
	}
}

func TestSupportedPlatformSets(t *testing.T) {
	if videoPlatforms[Reddit] {
		t.Error("video uploads must not target reddit")
	}
	if photoPlatforms[YouTube] {
		t.Error("photo uploads must not target youtube")
	}
	if textPlatforms[TikTok] || textPlatforms[Instagram] || textPlatforms[YouTube] || textPlatforms[Pinterest] {
		t.Error("text posts are limited to the six text platforms")
	}
	if len(documentPlatforms) != 1 || !documentPlatforms[LinkedIn] {
		t.Error("documents are linkedin only")
	}
}

func TestValidateTargets(t *testing.T) {
	tests := []struct {
		name      string
		kind      uploadKind
		user      string
		title     string
		platforms []Platform
		wantErr   bool
	}{
		{"ok", kindVideo, "demo", "Title", []Platform{TikTok, YouTube}, false},
		{"missing user", kindVideo, "", "Title", []Platform{TikTok}, true},
		{"blank user", kindVideo, "   ", "Title", []Platform{TikTok}, true},
		{"no platforms", kindVideo, "demo", "Title", nil, true},
		{"unsupported platform for kind", kindVideo, "demo", "Title", []Platform{Reddit}, true},
		{"title optional for tiktok only", kindVideo, "demo", "", []Platform{TikTok}, false},
		{"title required with second platform", kindVideo, "demo", "", []Platform{TikTok, YouTube}, true},
		{"photos reject youtube", kindPhotos, "demo", "Title", []Platform{YouTube}, true},
		{"text accepts bluesky", kindText, "demo", "Title", []Platform{Bluesky}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTargets(tt.kind, tt.user, tt.title, tt.platforms)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTiktokOnly(t *testing.T) {
	if tiktokOnly(nil) {
		t.Error("empty set is not tiktok-only")
	}
	if !tiktokOnly([]Platform{TikTok}) {
		t.Error("single tiktok should be tiktok-only")
	}
	if tiktokOnly([]Platform{TikTok, X}) {
		t.Error("mixed set is not tiktok-only")
	}
}
