// Package gotemplate builds github.com/goliatone/go-template engines with the
// filters the field primitives rely on.
package gotemplate

import (
	"html"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbuilder/pkg/render/template"
)

// Engine is the go-template engine. It satisfies template.TemplateRenderer.
type Engine = gotemplatepkg.Engine

var _ template.TemplateRenderer = (*Engine)(nil)

// pongo2 keeps filters in a process-wide map that go-template writes while
// loading, so engine construction is serialised.
var buildMu sync.Mutex

// New builds a go-template engine with the "attrs" filter registered. A
// template source (WithFS or WithBaseDir) is required.
func New(opts ...gotemplatepkg.Option) (*Engine, error) {
	options := make([]gotemplatepkg.Option, 0, len(opts)+1)
	options = append(options, gotemplatepkg.WithTemplateFunc(map[string]any{
		"attrs": filterAttrs,
	}))
	options = append(options, opts...)

	buildMu.Lock()
	defer buildMu.Unlock()
	return gotemplatepkg.NewRenderer(options...)
}

// filterAttrs renders a list of {"name", "value"} maps as ` name="value"`
// pairs. Names and values are escaped here, so the result is marked safe.
func filterAttrs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	items, ok := in.Interface().([]any)
	if !ok {
		return pongo2.AsSafeValue(""), nil
	}

	var builder strings.Builder
	for _, item := range items {
		attr, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := attr["name"].(string)
		if strings.TrimSpace(name) == "" {
			continue
		}
		value, _ := attr["value"].(string)
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(name))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteByte('"')
	}
	return pongo2.AsSafeValue(builder.String()), nil
}
