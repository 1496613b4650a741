package template

import (
	"io"
)

// TemplateRenderer is the github.com/goliatone/go-template engine contract.
// Field primitives render through it; any engine satisfying it can stand in
// for the default one.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
