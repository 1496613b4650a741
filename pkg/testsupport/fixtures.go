package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// UserRecord returns the record most renderer tests bind to: a "user" with one
// column per storage kind the inference table cares about.
func UserRecord() *model.Record {
	return model.NewRecord("user",
		model.Column{Name: "name", Kind: model.KindString},
		model.Column{Name: "email", Kind: model.KindString},
		model.Column{Name: "password", Kind: model.KindString},
		model.Column{Name: "old_password_hint", Kind: model.KindString},
		model.Column{Name: "bio", Kind: model.KindText},
		model.Column{Name: "born_on", Kind: model.KindDate},
		model.Column{Name: "age", Kind: model.KindInteger},
		model.Column{Name: "balance", Kind: model.KindDecimal},
		model.Column{Name: "score", Kind: model.KindFloat},
		model.Column{Name: "time_zone", Kind: model.KindString},
		model.Column{Name: "favorite_color", Kind: model.KindInteger},
		model.Column{Name: "active", Kind: model.KindBoolean},
	)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
