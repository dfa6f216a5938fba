package api

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestFormSetSkipsEmpty(t *testing.T) {
	form := &Form{}
	form.Set("title", "hello")
	form.Set("description", "")

	if _, ok := form.Get("title"); !ok {
		t.Error("title should be present")
	}
	if form.Has("description") {
		t.Error("empty description should be omitted")
	}
}

func TestFormSetBoolLiterals(t *testing.T) {
	yes, no := true, false
	form := &Form{}
	form.SetBool("async_upload", &yes)
	form.SetBool("add_to_queue", &no)
	form.SetBool("unset", nil)

	if got, _ := form.Get("async_upload"); got != "true" {
		t.Errorf("async_upload = %q, want literal true", got)
	}
	if got, _ := form.Get("add_to_queue"); got != "false" {
		t.Errorf("add_to_queue = %q, want literal false", got)
	}
	if form.Has("unset") {
		t.Error("nil bool should be omitted")
	}
}

func TestFormSetCSV(t *testing.T) {
	form := &Form{}
	form.SetCSV("collaborators", []string{"alice", "bob"})
	form.SetCSV("empty", nil)

	if got, _ := form.Get("collaborators"); got != "alice,bob" {
		t.Errorf("collaborators = %q", got)
	}
	if form.Has("empty") {
		t.Error("empty list should be omitted")
	}
}

func TestFormSetList(t *testing.T) {
	form := &Form{}
	form.SetList("tags[]", []string{"go", "cli"})

	got := form.GetAll("tags[]")
	if len(got) != 2 || got[0] != "go" || got[1] != "cli" {
		t.Errorf("tags[] = %v", got)
	}
}

func TestAttachMediaRemoteURL(t *testing.T) {
	form := &Form{}
	if err := form.AttachMedia("video", "https://cdn.example.com/clip.mp4"); err != nil {
		t.Fatalf("AttachMedia: %v", err)
	}

	if form.HasFiles() {
		t.Error("remote URL should not become a file part")
	}
	if got, _ := form.Get("video"); got != "https://cdn.example.com/clip.mp4" {
		t.Errorf("video = %q, want URL passed through as a plain field", got)
	}
}

func TestAttachMediaLocalFile(t *testing.T) {
	path := writeTempFile(t, "photo.jpg", "jpeg bytes")

	form := &Form{}
	if err := form.AttachMedia("photos[]", path); err != nil {
		t.Fatalf("AttachMedia: %v", err)
	}

	if !form.HasFiles() {
		t.Fatal("local path should become a file part")
	}
	files := form.Files()
	if files[0].FieldName != "photos[]" || files[0].Path != path {
		t.Errorf("file part = %+v", files[0])
	}
}

func TestAttachMediaMissingFile(t *testing.T) {
	form := &Form{}
	err := form.AttachMedia("video", "/nonexistent/clip.mp4")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var se *StructuredError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StructuredError, got %T", err)
	}
	if se.Code != ErrValidation {
		t.Errorf("Code = %q, want %q", se.Code, ErrValidation)
	}
}

func TestAttachMediaRejectsDirectory(t *testing.T) {
	form := &Form{}
	if err := form.AttachMedia("video", t.TempDir()); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestWriteMultipart(t *testing.T) {
	path := writeTempFile(t, "doc.pdf", "%PDF-1.5 fake")

	form := &Form{}
	form.Add("user", "demo")
	form.Add("platform[]", "linkedin")
	if err := form.AttachMedia("document", path); err != nil {
		t.Fatalf("AttachMedia: %v", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := form.writeMultipart(writer); err != nil {
		t.Fatalf("writeMultipart: %v", err)
	}
	_ = writer.Close()

	body := buf.String()
	for _, want := range []string{`name="user"`, `name="platform[]"`, `name="document"`, `filename="doc.pdf"`, "%PDF-1.5 fake"} {
		if !strings.Contains(body, want) {
			t.Errorf("multipart body missing %q", want)
		}
	}
}

func TestEncodeURLValuesKeepsRepeats(t *testing.T) {
	form := &Form{}
	form.Add("platform[]", "x")
	form.Add("platform[]", "threads")
	form.Add("title", "hi there")

	encoded := form.encodeURLValues()
	if strings.Count(encoded, "platform%5B%5D=") != 2 {
		t.Errorf("encoded = %q, want two platform[] entries", encoded)
	}
	if !strings.Contains(encoded, "title=hi+there") {
		t.Errorf("encoded = %q, want urlencoded title", encoded)
	}
}
