package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Field is one wire form field. Order is preserved and repeated names are
// allowed; the vendor uses bracketed names (platform[], photos[], tags[])
// for repeated fields.
type Field struct {
	Name  string
	Value string
}

// FilePart is a pending multipart attachment. The file is opened only at
// send time so that a form can be built, inspected, and previewed without
// holding descriptors.
type FilePart struct {
	FieldName string
	Path      string
}

// Form is the flattened wire payload for one upload request: ordered form
// fields plus file attachments. When it carries files the request is encoded
// as multipart/form-data, otherwise as application/x-www-form-urlencoded.
type Form struct {
	fields []Field
	files  []FilePart
}

// Add appends a field unconditionally.
func (f *Form) Add(name, value string) {
	f.fields = append(f.fields, Field{Name: name, Value: value})
}

// Set appends a field if the value is non-empty. Optional fields are omitted
// from the wire entirely, never sent as empty strings.
func (f *Form) Set(name, value string) {
	if value != "" {
		f.Add(name, value)
	}
}

// SetBool appends the literal string "true" or "false". The wire format has
// no native boolean. A nil pointer means the option was not supplied.
func (f *Form) SetBool(name string, v *bool) {
	if v != nil {
		f.Add(name, strconv.FormatBool(*v))
	}
}

// SetInt appends an integer field. A nil pointer means unset; zero is a
// legal value (e.g. photo_cover_index).
func (f *Form) SetInt(name string, v *int) {
	if v != nil {
		f.Add(name, strconv.Itoa(*v))
	}
}

// SetList appends one field per value. The name should already carry the
// vendor's [] suffix. An empty list adds nothing.
func (f *Form) SetList(name string, values []string) {
	for _, v := range values {
		f.Set(name, v)
	}
}

// SetCSV joins values with commas into a single field, the convention for
// fields like collaborators and allowedCountries.
func (f *Form) SetCSV(name string, values []string) {
	if len(values) > 0 {
		f.Add(name, strings.Join(values, ","))
	}
}

// AttachMedia binds a media source to a field. An http(s) URL is passed
// through as a plain form field; anything else is treated as a local path,
// which must exist and be a regular file. Exactly one representation is used
// per media field.
func (f *Form) AttachMedia(field, source string) error {
	if strings.TrimSpace(source) == "" {
		return NewMissingFieldError(field)
	}
	if isRemoteURL(source) {
		f.Add(field, source)
		return nil
	}
	info, err := os.Stat(source)
	if err != nil {
		return NewFileNotFoundError(field, source)
	}
	if info.IsDir() {
		return NewFileNotFoundError(field, source)
	}
	f.files = append(f.files, FilePart{FieldName: field, Path: source})
	return nil
}

func isRemoteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fields returns the ordered field list.
func (f *Form) Fields() []Field {
	return f.fields
}

// Files returns the pending file attachments.
func (f *Form) Files() []FilePart {
	return f.files
}

// HasFiles reports whether the request must be encoded as multipart.
func (f *Form) HasFiles() bool {
	return len(f.files) > 0
}

// Get returns the first value for a field name.
func (f *Form) Get(name string) (string, bool) {
	for _, field := range f.fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// GetAll returns every value recorded for a field name, in order.
func (f *Form) GetAll(name string) []string {
	var values []string
	for _, field := range f.fields {
		if field.Name == name {
			values = append(values, field.Value)
		}
	}
	return values
}

// Has reports whether the field appears at least once, either as a plain
// field or as a file attachment.
func (f *Form) Has(name string) bool {
	if _, ok := f.Get(name); ok {
		return true
	}
	for _, part := range f.files {
		if part.FieldName == name {
			return true
		}
	}
	return false
}

// encodeURLValues renders the form as a urlencoded body, preserving repeated
// fields. Used when no files are attached.
func (f *Form) encodeURLValues() string {
	values := url.Values{}
	for _, field := range f.fields {
		values.Add(field.Name, field.Value)
	}
	return values.Encode()
}

// writeMultipart streams fields and files through a multipart writer.
// Every opened file is closed before returning, on success and on error.
func (f *Form) writeMultipart(w *multipart.Writer) error {
	for _, field := range f.fields {
		if err := w.WriteField(field.Name, field.Value); err != nil {
			return fmt.Errorf("write field %s: %w", field.Name, err)
		}
	}
	for _, part := range f.files {
		if err := copyFilePart(w, part); err != nil {
			return err
		}
	}
	return nil
}

func copyFilePart(w *multipart.Writer, part FilePart) error {
	file, err := os.Open(part.Path)
	if err != nil {
		return NewFileNotFoundError(part.FieldName, part.Path)
	}
	defer func() { _ = file.Close() }()

	dst, err := w.CreateFormFile(part.FieldName, filepath.Base(part.Path))
	if err != nil {
		return fmt.Errorf("create form file %s: %w", part.FieldName, err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		return fmt.Errorf("copy %s: %w", part.Path, err)
	}
	return nil
}
