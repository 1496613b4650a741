package formbuilder_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestRenderField(t *testing.T) {
	html, err := formbuilder.RenderField(testsupport.UserRecord(), "bio", formbuilder.FieldOptions{Label: "About you"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := html.String()
	if !strings.Contains(got, `<label for="user_bio">About you</label>`) || !strings.Contains(got, `<textarea id="user_bio"`) {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestLoadModels(t *testing.T) {
	dir := t.TempDir()
	doc := "{\"models\":{\"post\":{\"columns\":[{\"name\":\"title\",\"kind\":\"string\"}]}}}"
	if err := os.WriteFile(filepath.Join(dir, "post.json"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store, err := formbuilder.LoadModels(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	record, ok := store.Record("post")
	if !ok {
		t.Fatalf("expected post model, have %v", store.Names())
	}

	builder, err := formbuilder.NewBuilder(record)
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	html, err := builder.RenderField("title", formbuilder.FieldOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html.String(), `name="post[title]"`) {
		t.Fatalf("unexpected output %q", html)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"label.tpl", "input.tpl", "textarea.tpl", "select.tpl"} {
		if _, err := fs.Stat(formbuilder.EmbeddedTemplates(), "primitives/"+name); err != nil {
			t.Fatalf("expected embedded %s: %v", name, err)
		}
	}
}
