package primitives

import (
	"bytes"
	"fmt"
	"strings"
)

// Built-in primitive names.
const (
	NameLabel    = "label"
	NameText     = "text"
	NameEmail    = "email"
	NamePassword = "password"
	NameDate     = "date"
	NameNumber   = "number"
	NameTextarea = "textarea"
	NameSelect   = "select"
	NameTimeZone = "time_zone"
)

const templatePrefix = "primitives/"

// PartialKey returns the template override key of a built-in primitive, as
// used by WithPartials.
func PartialKey(name string) string {
	return "formbuilder." + name
}

// DefaultPartials maps the partial key of every template-backed primitive to
// its built-in template.
func DefaultPartials() map[string]string {
	partials := map[string]string{
		PartialKey(NameLabel):    templatePrefix + "label.tpl",
		PartialKey(NameTextarea): templatePrefix + "textarea.tpl",
		PartialKey(NameSelect):   templatePrefix + "select.tpl",
	}
	for _, inputType := range inputTypes {
		partials[PartialKey(inputType)] = templatePrefix + "input.tpl"
	}
	return partials
}

var inputTypes = []string{NameText, NameEmail, NamePassword, NameDate, NameNumber}

// NewDefaultRegistry returns a registry with every built-in primitive.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.MustRegister(NameLabel, Descriptor{
		Renderer: templateRenderer(PartialKey(NameLabel), templatePrefix+"label.tpl", nil),
	})
	for _, inputType := range inputTypes {
		registry.MustRegister(inputType, Descriptor{
			Renderer: templateRenderer(PartialKey(inputType), templatePrefix+"input.tpl", map[string]any{
				"input_type": inputType,
			}),
		})
	}
	registry.MustRegister(NameTextarea, Descriptor{
		Renderer: templateRenderer(PartialKey(NameTextarea), templatePrefix+"textarea.tpl", nil),
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer: selectRenderer,
	})
	registry.MustRegister(NameTimeZone, Descriptor{
		Renderer: timeZoneRenderer,
	})

	return registry
}

var selectRenderer = templateRenderer(PartialKey(NameSelect), templatePrefix+"select.tpl", nil)

func templateRenderer(partialKey, templateName string, extra map[string]any) Renderer {
	return func(buf *bytes.Buffer, control Control, data Data) error {
		if data.Template == nil {
			return fmt.Errorf("primitives: template renderer not configured for %q", templateName)
		}

		resolved := templateName
		if candidate := strings.TrimSpace(data.Partials[partialKey]); candidate != "" {
			resolved = candidate
		}

		payload := map[string]any{"control": control}
		for key, value := range extra {
			payload[key] = value
		}

		rendered, err := data.Template.RenderTemplate(resolved, payload)
		if err != nil {
			return fmt.Errorf("primitives: render template %q: %w", resolved, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

// timeZoneRenderer lists the priority zones first, then a disabled
// separator, then every zone, and renders the result as a select.
func timeZoneRenderer(buf *bytes.Buffer, control Control, data Data) error {
	options, err := data.TimeZones.SelectOptions(control.PriorityZones)
	if err != nil {
		return fmt.Errorf("primitives: time zone options: %w", err)
	}

	control.Choices = make([]Choice, 0, len(options))
	for _, opt := range options {
		control.Choices = append(control.Choices, Choice{
			Label:    opt.Label,
			Value:    opt.Value,
			Disabled: opt.Disabled,
			Selected: control.HasValue && !opt.Disabled && opt.Value == control.Value,
		})
	}
	control.PriorityZones = nil
	return selectRenderer(buf, control, data)
}
