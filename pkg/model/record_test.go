package model_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func TestRecord_ColumnFor(t *testing.T) {
	record := model.NewRecord("user",
		model.Column{Name: "email", Kind: model.KindString},
		model.Column{Name: "bio", Kind: model.KindText},
		model.Column{Name: "nickname"},
	)

	column, err := record.ColumnFor("bio")
	if err != nil {
		t.Fatalf("column for bio: %v", err)
	}
	if column.Kind != model.KindText {
		t.Fatalf("expected text kind, got %q", column.Kind)
	}

	nickname, err := record.ColumnFor("nickname")
	if err != nil {
		t.Fatalf("column for nickname: %v", err)
	}
	if nickname.Kind != model.KindString {
		t.Fatalf("expected missing kind to default to string, got %q", nickname.Kind)
	}

	if _, err := record.ColumnFor("missing"); !errors.Is(err, model.ErrUnknownAttribute) {
		t.Fatalf("expected ErrUnknownAttribute, got %v", err)
	}
}

func TestRecord_ValuesAndPayload(t *testing.T) {
	record := model.NewRecord("user",
		model.Column{Name: "email"},
		model.Column{Name: "name"},
	).Set("email", "ada@example.com")

	value, ok := record.Value("email")
	if !ok || value != "ada@example.com" {
		t.Fatalf("unexpected value %v (ok=%v)", value, ok)
	}
	if _, ok := record.Value("name"); ok {
		t.Fatalf("expected unset value to be absent")
	}

	record.ApplyErrorPayload(map[string][]string{
		"user[name]": {"can't be blank"},
		"base":       {"Something went wrong"},
	})
	if diff := cmp.Diff([]string{"can't be blank"}, record.Errors().Get("name")); diff != "" {
		t.Fatalf("name errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Something went wrong"}, record.Errors().Form()); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStorageKind(t *testing.T) {
	cases := map[string]model.StorageKind{
		"":          model.KindString,
		" TEXT ":    model.KindText,
		"int":       model.KindInteger,
		"numeric":   model.KindDecimal,
		"double":    model.KindFloat,
		"date-time": model.KindDateTime,
		"citext":    model.StorageKind("citext"),
	}
	for raw, want := range cases {
		if got := model.ParseStorageKind(raw); got != want {
			t.Fatalf("ParseStorageKind(%q) = %q, want %q", raw, got, want)
		}
	}
	if !model.KindFloat.IsNumeric() || model.KindText.IsNumeric() {
		t.Fatalf("unexpected numeric classification")
	}
}

func TestLoadFS_YAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"models/user.yaml": &fstest.MapFile{Data: []byte(`
models:
  user:
    columns:
      - name: email
        kind: string
      - name: bio
        kind: text
      - name: age
        kind: integer
    values:
      email: ada@example.com
`)},
		"models/account.json": &fstest.MapFile{Data: []byte(`{
  "models": {
    "account": {
      "columns": [
        {"name": "time_zone", "kind": "string"},
        {"name": "balance", "kind": "decimal"}
      ]
    }
  }
}`)},
		"models/README.md": &fstest.MapFile{Data: []byte("ignored")},
	}

	store, err := model.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"account", "user"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	user, ok := store.Record("user")
	if !ok {
		t.Fatalf("expected user record")
	}
	wantColumns := []model.Column{
		{Name: "email", Kind: model.KindString},
		{Name: "bio", Kind: model.KindText},
		{Name: "age", Kind: model.KindInteger},
	}
	if diff := cmp.Diff(wantColumns, user.Columns()); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	if value, _ := user.Value("email"); value != "ada@example.com" {
		t.Fatalf("expected default value, got %v", value)
	}

	again, _ := store.Record("user")
	again.Set("email", "other@example.com")
	if value, _ := user.Value("email"); value != "ada@example.com" {
		t.Fatalf("expected records to be independent")
	}
}

func TestLoadFS_RejectsDuplicatesAndUndeclaredValues(t *testing.T) {
	dup := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("models:\n  user:\n    columns:\n      - name: email\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("models:\n  user:\n    columns:\n      - name: email\n")},
	}
	if _, err := model.LoadFS(dup); err == nil {
		t.Fatalf("expected duplicate model error")
	}

	undeclared := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("models:\n  user:\n    columns:\n      - name: email\n    values:\n      name: Ada\n")},
	}
	if _, err := model.LoadFS(undeclared); err == nil {
		t.Fatalf("expected undeclared value error")
	}

	store, err := model.LoadFS(nil)
	if err != nil || len(store.Names()) != 0 {
		t.Fatalf("expected empty store for nil fs, got %v (err=%v)", store.Names(), err)
	}
}
