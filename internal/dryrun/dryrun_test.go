package dryrun

import (
	"context"
	"strings"
	"testing"
)

func TestContext(t *testing.T) {
	ctx := context.Background()
	if IsEnabled(ctx) {
		t.Error("dry-run should default to disabled")
	}
	if !IsEnabled(WithDryRun(ctx, true)) {
		t.Error("dry-run flag lost")
	}
	if IsEnabled(WithDryRun(ctx, false)) {
		t.Error("explicit false should stay disabled")
	}
}

func TestPreviewWrite(t *testing.T) {
	preview := &Preview{
		Operation: "publish video",
		Endpoint:  "POST /api/upload",
		Fields:    [][2]string{{"user", "demo"}, {"platform[]", "tiktok"}},
		Files:     [][2]string{{"video", "/tmp/clip.mp4"}},
		Warnings:  []string{"title missing, allowed for tiktok-only uploads"},
	}

	var out strings.Builder
	preview.Write(&out)
	got := out.String()

	for _, want := range []string{
		"[DRY-RUN] Would publish video via POST /api/upload",
		"user: demo",
		"platform[]: tiktok",
		"video: @/tmp/clip.mp4",
		"Warnings:",
		"! title missing",
		"Nothing uploaded (dry-run mode)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("preview output missing %q:\n%s", want, got)
		}
	}
}

func TestPreviewWriteNoWarnings(t *testing.T) {
	preview := &Preview{Operation: "publish text post", Endpoint: "POST /api/upload_text"}

	var out strings.Builder
	preview.Write(&out)
	if strings.Contains(out.String(), "Warnings:") {
		t.Error("empty warnings should not render a warnings section")
	}
}
