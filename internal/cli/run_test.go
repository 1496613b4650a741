package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/pkg/pgschema"
)

const userModels = `
models:
  user:
    columns:
      - name: name
        kind: string
      - name: email
        kind: string
      - name: bio
        kind: text
      - name: age
        kind: integer
    values:
      email: ada@example.com
`

func writeModels(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "models.yaml"), []byte(userModels), 0o644); err != nil {
		t.Fatalf("write models: %v", err)
	}
	return dir
}

func TestRun_ModelsDirectory(t *testing.T) {
	var out bytes.Buffer
	app := &App{Stdout: &out}

	err := app.Run(context.Background(), Config{
		Models:  writeModels(t),
		Model:   "user",
		Field:   "email",
		Variant: "rails",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "<div class=\"email\"><label for=\"user_email\">Email</label>\n" +
		"<input type=\"email\" id=\"user_email\" name=\"user[email]\" value=\"ada@example.com\" /></div>\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ErrorsFileAndVariant(t *testing.T) {
	dir := writeModels(t)
	errorsPath := filepath.Join(dir, "errors.json")
	if err := os.WriteFile(errorsPath, []byte(`{"errors":{"name":["can't be blank"]}}`), 0o644); err != nil {
		t.Fatalf("write errors: %v", err)
	}

	var rails, base bytes.Buffer
	cfg := Config{Models: dir, Model: "user", Field: "name", Errors: errorsPath, Variant: "rails"}
	if err := (&App{Stdout: &rails}).Run(context.Background(), cfg); err != nil {
		t.Fatalf("run rails: %v", err)
	}
	cfg.Variant = "foundation"
	if err := (&App{Stdout: &base}).Run(context.Background(), cfg); err != nil {
		t.Fatalf("run base: %v", err)
	}

	if !strings.Contains(rails.String(), `<div class="name error">`) ||
		!strings.Contains(rails.String(), `<span class="error">can&#39;t be blank</span>`) {
		t.Fatalf("unexpected rails output %q", rails.String())
	}
	if !strings.Contains(base.String(), `<div class="name">`) ||
		!strings.Contains(base.String(), `<div class="error">can&#39;t be blank</div>`) {
		t.Fatalf("unexpected base output %q", base.String())
	}
}

func TestRun_WritesOutputFile(t *testing.T) {
	dir := writeModels(t)
	target := filepath.Join(dir, "field.html")

	var out bytes.Buffer
	err := (&App{Stdout: &out}).Run(context.Background(), Config{
		Models: dir, Model: "user", Field: "bio", Output: target, Variant: "rails",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `<textarea id="user_bio" name="user[bio]">`) {
		t.Fatalf("unexpected file contents %q", data)
	}
	if !strings.Contains(out.String(), target) {
		t.Fatalf("expected confirmation naming %s, got %q", target, out.String())
	}
}

func TestRun_UnknownModel(t *testing.T) {
	err := (&App{Stdout: &bytes.Buffer{}}).Run(context.Background(), Config{
		Models: writeModels(t), Model: "account", Field: "name", Variant: "rails",
	})
	if err == nil || !strings.Contains(err.Error(), `model "account" not found`) {
		t.Fatalf("expected unknown model error, got %v", err)
	}
}

type stubDriver struct {
	selects []int
	inputs  []string
	asked   []string
}

func (d *stubDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.inputs) == 0 {
		return cfg.Default, nil
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *stubDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, errors.New("unexpected confirm")
}

func (d *stubDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.selects) == 0 {
		return 0, prompt.ErrAborted
	}
	next := d.selects[0]
	d.selects = d.selects[1:]
	return next, nil
}

func TestRun_InteractiveSelect(t *testing.T) {
	driver := &stubDriver{
		// field "age", control "select"
		selects: []int{3, 6},
		inputs:  []string{"Age group", "Young=1,Old=2"},
	}
	var out bytes.Buffer
	err := (&App{Stdout: &out, Prompt: driver}).Run(context.Background(), Config{
		Models: writeModels(t), Model: "user", Interactive: true, Variant: "rails",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if diff := cmp.Diff([]string{"Field", "Control", "Label", "Choices (Label=value, ...)"}, driver.asked); diff != "" {
		t.Fatalf("prompt sequence mismatch (-want +got):\n%s", diff)
	}
	want := "<select id=\"user_age\" name=\"user[age]\">\n" +
		"<option value=\"1\">Young</option>\n" +
		"<option value=\"2\">Old</option>\n" +
		"</select>"
	if !strings.Contains(out.String(), want) || !strings.Contains(out.String(), ">Age group</label>") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRun_InteractiveAbort(t *testing.T) {
	err := (&App{Stdout: &bytes.Buffer{}, Prompt: &stubDriver{}}).Run(context.Background(), Config{
		Models: writeModels(t), Model: "user", Interactive: true, Variant: "rails",
	})
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected abort, got %v", err)
	}
}

type columnRows struct {
	rows [][2]string
	pos  int
}

func (r *columnRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *columnRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	*dest[0].(*string) = row[0]
	*dest[1].(*string) = row[1]
	return nil
}

func (r *columnRows) Err() error   { return nil }
func (r *columnRows) Close() error { return nil }

type columnQuerier struct {
	query string
}

func (q *columnQuerier) Query(_ context.Context, query string) (pgschema.Rows, error) {
	q.query = query
	return &columnRows{rows: [][2]string{{"id", "bigint"}, {"notes", "text"}}}, nil
}

func TestRun_DatabaseTable(t *testing.T) {
	querier := &columnQuerier{}
	closed := false
	app := &App{
		Stdout: &bytes.Buffer{},
		OpenQuerier: func(_ context.Context, dsn string) (pgschema.Querier, func(), error) {
			if dsn != "postgres://localhost/app" {
				t.Fatalf("unexpected dsn %q", dsn)
			}
			return querier, func() { closed = true }, nil
		},
	}

	err := app.Run(context.Background(), Config{
		DSN: "postgres://localhost/app", Table: "accounts", Schema: "crm", Field: "notes", Variant: "rails",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !closed {
		t.Fatalf("expected connection to be closed")
	}
	if !strings.Contains(querier.query, `'crm'`) || !strings.Contains(querier.query, `'accounts'`) {
		t.Fatalf("unexpected query %s", querier.query)
	}
	if got := app.Stdout.(*bytes.Buffer).String(); !strings.Contains(got, `<textarea id="account_notes" name="account[notes]">`) {
		t.Fatalf("unexpected output %q", got)
	}
}
