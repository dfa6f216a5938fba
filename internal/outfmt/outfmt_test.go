package outfmt

import (
	"context"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"json", JSON, false},
		{"jsonl", JSONL, false},
		{"ndjson", JSONL, false},
		{"yaml", Text, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr != (err != nil) {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestModeContext(t *testing.T) {
	ctx := context.Background()
	if ModeFromContext(ctx) != Text {
		t.Error("default mode should be Text")
	}
	if IsJSON(ctx) {
		t.Error("default should not be JSON")
	}

	ctx = WithMode(ctx, JSON)
	if !IsJSON(ctx) || IsJSONL(ctx) {
		t.Error("JSON mode misreported")
	}

	ctx = WithMode(ctx, JSONL)
	if !IsJSON(ctx) || !IsJSONL(ctx) {
		t.Error("JSONL mode misreported")
	}
}

func TestCompactContext(t *testing.T) {
	ctx := context.Background()
	if IsCompact(ctx) {
		t.Error("default should not be compact")
	}
	if !IsCompact(WithCompact(ctx, true)) {
		t.Error("compact flag lost")
	}
}

func TestModeString(t *testing.T) {
	for mode, want := range map[Mode]string{Text: "text", JSON: "json", JSONL: "jsonl"} {
		if got := mode.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", mode, got, want)
		}
	}
}

func TestWriteJSONMaybeCompact(t *testing.T) {
	v := map[string]any{"success": true}

	var pretty strings.Builder
	if err := WriteJSONMaybeCompact(&pretty, v, false); err != nil {
		t.Fatalf("WriteJSONMaybeCompact: %v", err)
	}
	if !strings.Contains(pretty.String(), "\n  ") {
		t.Errorf("pretty output = %q, want indentation", pretty.String())
	}

	var compact strings.Builder
	if err := WriteJSONMaybeCompact(&compact, v, true); err != nil {
		t.Fatalf("WriteJSONMaybeCompact: %v", err)
	}
	if got := strings.TrimSpace(compact.String()); got != `{"success":true}` {
		t.Errorf("compact output = %q", got)
	}
}

func TestWriteJSONFiltered(t *testing.T) {
	v := map[string]any{"request_id": "req_1", "success": true}

	var out strings.Builder
	if err := WriteJSONFiltered(&out, v, ".request_id", true); err != nil {
		t.Fatalf("WriteJSONFiltered: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != `"req_1"` {
		t.Errorf("filtered output = %q", got)
	}

	if err := WriteJSONFiltered(&out, v, ".[broken", true); err == nil {
		t.Error("expected error for invalid query")
	}
}

func TestQueryContext(t *testing.T) {
	ctx := context.Background()
	if GetQuery(ctx) != "" {
		t.Error("default query should be empty")
	}
	if got := GetQuery(WithQuery(ctx, ".a")); got != ".a" {
		t.Errorf("GetQuery = %q", got)
	}
}

func TestApplyQuery(t *testing.T) {
	got, err := ApplyQuery(map[string]any{"a": 1}, ".a")
	if err != nil {
		t.Fatalf("ApplyQuery: %v", err)
	}
	if got != 1 {
		t.Errorf("got %v (%T)", got, got)
	}
}
