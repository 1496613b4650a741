package formbuilder

import (
	"io/fs"
	"os"

	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/primitives"
)

// Builder aliases form.Builder for callers importing the root package only.
type Builder = form.Builder

// FieldOptions tunes a single RenderField call.
type FieldOptions = form.FieldOptions

// Choice is one select option.
type Choice = form.Choice

// Record is the in-memory model binding.
type Record = model.Record

// Control types accepted by FieldOptions.Type.
const (
	Text     = form.ControlText
	Date     = form.ControlDate
	Email    = form.ControlEmail
	Number   = form.ControlNumber
	Password = form.ControlPassword
	Select   = form.ControlSelect
	Textarea = form.ControlTextarea
	TimeZone = form.ControlTimeZone
)

// NewBuilder exposes the builder constructor from the top-level module.
func NewBuilder(binding model.Binding, options ...form.Option) (*Builder, error) {
	return form.New(binding, options...)
}

// RenderField builds a one-off builder over binding and renders field. Use
// NewBuilder when rendering several fields of the same object.
func RenderField(binding model.Binding, field string, opts FieldOptions, options ...form.Option) (markup.HTML, error) {
	builder, err := form.New(binding, options...)
	if err != nil {
		return "", err
	}
	return builder.RenderField(field, opts)
}

// LoadModels reads every JSON/YAML model definition under dir.
func LoadModels(dir string) (*model.Store, error) {
	return model.LoadFS(os.DirFS(dir))
}

// EmbeddedTemplates exposes the built-in primitive templates so callers can
// copy or extend them.
func EmbeddedTemplates() fs.FS {
	return primitives.TemplatesFS()
}
