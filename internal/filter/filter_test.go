package filter

import (
	"reflect"
	"testing"
)

func TestNormalizeExpression(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`.status \!= "failed"`, `.status != "failed"`},
		{`.a`, `.a`},
		{``, ``},
	}
	for _, tt := range tests {
		if got := NormalizeExpression(tt.input); got != tt.want {
			t.Errorf("NormalizeExpression(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	data := map[string]any{
		"results": []any{
			map[string]any{"platform": "tiktok", "success": true},
			map[string]any{"platform": "x", "success": false},
		},
	}

	t.Run("empty expression passes through", func(t *testing.T) {
		got, err := Apply(data, "")
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if !reflect.DeepEqual(got, data) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("single result unwrapped", func(t *testing.T) {
		got, err := Apply(data, `.results | length`)
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if got != 2 {
			t.Errorf("got %v (%T), want 2", got, got)
		}
	})

	t.Run("multiple results as slice", func(t *testing.T) {
		got, err := Apply(data, `.results[].platform`)
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		want := []any{"tiktok", "x"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("parse error", func(t *testing.T) {
		if _, err := Apply(data, `.[broken`); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("runtime error", func(t *testing.T) {
		if _, err := Apply(data, `.results.nope`); err == nil {
			t.Error("expected runtime error indexing array with string")
		}
	})
}

func TestApplyFromJSON(t *testing.T) {
	got, err := ApplyFromJSON([]byte(`{"success": true, "request_id": "req_1"}`), ".request_id")
	if err != nil {
		t.Fatalf("ApplyFromJSON: %v", err)
	}
	if got != "req_1" {
		t.Errorf("got %v", got)
	}

	if _, err := ApplyFromJSON([]byte(`not json`), "."); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestApplyToJSON(t *testing.T) {
	input := []byte(`{"a": 1, "b": 2}`)

	passthrough, err := ApplyToJSON(input, "")
	if err != nil {
		t.Fatalf("ApplyToJSON: %v", err)
	}
	if string(passthrough) != string(input) {
		t.Errorf("empty expression should pass bytes through unchanged")
	}

	got, err := ApplyToJSON(input, ".a")
	if err != nil {
		t.Fatalf("ApplyToJSON: %v", err)
	}
	if string(got) != "1" {
		t.Errorf("got %s", got)
	}
}
