package form

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"sync"
	"time"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/primitives"
)

// PriorityZonesKey is the Field entry holding the zones listed first by the
// time-zone control.
const PriorityZonesKey = "priority_zones"

// Builder renders fields of one bound model. It is safe for concurrent use.
type Builder struct {
	binding    model.Binding
	conv       Conventions
	primitives Primitives
	translator Translator
	locale     string
	logger     *zap.Logger

	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string

	errorsOnce sync.Once
	errors     *model.Errors
}

// New binds a builder to binding. Without WithPrimitives it renders through
// primitives.Default.
func New(binding model.Binding, opts ...Option) (*Builder, error) {
	if binding == nil {
		return nil, errors.New("form: binding is required")
	}

	b := &Builder{
		binding: binding,
		conv:    DefaultConventions(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	var partials map[string]string
	if b.themeSelector != nil {
		var err error
		if partials, err = b.applyTheme(); err != nil {
			return nil, err
		}
	}
	b.conv = b.conv.normalized()

	if b.primitives == nil {
		provider, err := primitives.Default()
		if err != nil {
			return nil, fmt.Errorf("form: default primitives: %w", err)
		}
		b.primitives = provider
	}
	if len(partials) > 0 {
		if provider, ok := b.primitives.(*primitives.Provider); ok {
			b.primitives = provider.WithOptions(primitives.WithPartials(partials))
		} else {
			b.logger.Debug("theme templates ignored by custom primitives", zap.Int("templates", len(partials)))
		}
	}

	return b, nil
}

func (b *Builder) applyTheme() (map[string]string, error) {
	selection, err := b.themeSelector.Select(b.themeName, b.themeVariant)
	if err != nil {
		return nil, fmt.Errorf("form: select theme %q: %w", b.themeName, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("form: theme %q has no manifest", b.themeName)
	}
	if selection.Variant != "" {
		if _, ok := selection.Manifest.Variants[selection.Variant]; !ok {
			return nil, fmt.Errorf("form: theme %q has no variant %q", selection.Theme, selection.Variant)
		}
	}

	// Only partials the theme actually overrides reach the provider.
	fallbacks := primitives.DefaultPartials()
	partials := selection.Partials(fallbacks)
	maps.DeleteFunc(partials, func(key, tpl string) bool {
		return tpl == fallbacks[key]
	})

	b.conv = b.conv.ApplyTokens(selection.Tokens())
	b.logger.Debug("theme applied",
		zap.String("theme", selection.Theme),
		zap.String("variant", selection.Variant),
		zap.Int("templates", len(partials)),
	)
	return partials, nil
}

// Conventions returns the conventions in effect.
func (b *Builder) Conventions() Conventions {
	return b.conv
}

// RenderField renders field as label, control and error block inside one
// container div. Errors from the binding or the primitives are returned
// unchanged and nothing is rendered.
func (b *Builder) RenderField(field string, opts FieldOptions) (markup.HTML, error) {
	if opts.Values != nil && opts.Type != ControlSelect {
		return "", fmt.Errorf("%w: values are only meaningful with type select (field %q, type %q)",
			ErrInvalidOptions, field, opts.Type)
	}

	ctl := opts.Type
	if ctl == ControlUnspecified {
		inferred, err := b.inferType(field)
		if err != nil {
			return "", err
		}
		ctl = inferred
	}
	name := primitiveFor(ctl, b.conv)
	b.logger.Debug("render field",
		zap.String("field", field),
		zap.String("control", ctl.String()),
		zap.String("primitive", name),
	)

	label, err := b.renderLabel(field, opts)
	if err != nil {
		return "", err
	}
	control, err := b.primitives.Render(name, b.control(field, ctl, opts))
	if err != nil {
		return "", err
	}

	messages := b.fieldErrors().Get(field)
	var errorBlock markup.HTML
	if len(messages) > 0 {
		errorBlock = markup.ContentTag(b.conv.ErrorTag,
			markup.Attributes{{Name: "class", Value: b.conv.ErrorClass}},
			markup.SafeJoin(messages, markup.Tag("br", nil)),
		)
	}

	classes := []string{field}
	if b.conv.ErrorClassOnContainer && len(messages) > 0 {
		classes = append(classes, b.conv.ErrorClass)
	}
	return markup.ContentTag("div",
		markup.Attributes{{Name: "class", Value: markup.ClassList(classes...)}},
		markup.JoinHTML([]markup.HTML{label, control, errorBlock}, "\n"),
	), nil
}

func (b *Builder) inferType(field string) (ControlType, error) {
	if ctl, ok := controlFromName(field); ok {
		return ctl, nil
	}
	column, err := b.binding.ColumnFor(field)
	if err != nil {
		return ControlUnspecified, err
	}
	return InferType(field, column.Kind, b.conv), nil
}

func (b *Builder) fieldErrors() *model.Errors {
	b.errorsOnce.Do(func() {
		b.errors = b.binding.Errors()
	})
	return b.errors
}

func (b *Builder) renderLabel(field string, opts FieldOptions) (markup.HTML, error) {
	control := primitives.NewControl(b.binding.ObjectName(), field, nil)
	if strings.TrimSpace(opts.LabelHTML) != "" {
		control.TextHTML = markup.Sanitize(opts.LabelHTML)
	}
	if control.TextHTML.Empty() {
		control.TextHTML = ""
		if opts.Label != "" {
			control.Text = opts.Label
		} else {
			control.Text = b.caption(field)
		}
	}
	return b.primitives.Render(primitives.NameLabel, control)
}

// control builds the primitive request. opts.Field is copied, never
// modified.
func (b *Builder) control(field string, ctl ControlType, opts FieldOptions) primitives.Control {
	bag := maps.Clone(opts.Field)
	var priority []string
	if ctl == ControlTimeZone {
		priority = priorityZones(bag[PriorityZonesKey])
		delete(bag, PriorityZonesKey)
	}

	control := primitives.NewControl(b.binding.ObjectName(), field, markup.AttributesFromMap(bag))
	control.PriorityZones = priority

	current, hasCurrent := "", false
	if raw, ok := b.binding.Value(field); ok {
		current, hasCurrent = formatValue(raw, ctl)
	}
	if hasCurrent && ctl != ControlPassword {
		control = control.WithValue(current)
	}

	if ctl == ControlSelect {
		control.Choices = make([]primitives.Choice, 0, len(opts.Values))
		for _, choice := range opts.Values {
			value, _ := formatValue(choice.Value, ControlSelect)
			control.Choices = append(control.Choices, primitives.Choice{
				Label:    choice.Label,
				Value:    value,
				Selected: control.HasValue && value == control.Value,
			})
		}
	}
	return control
}

func controlFromName(field string) (ControlType, bool) {
	switch {
	case field == "email":
		return ControlEmail, true
	case field == "time_zone":
		return ControlTimeZone, true
	case passwordToken.MatchString(field):
		return ControlPassword, true
	default:
		return ControlUnspecified, false
	}
}

func formatValue(raw any, ctl ControlType) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		if ctl == ControlDate {
			return v.Format(time.DateOnly), true
		}
		return v.Format(time.RFC3339), true
	case *time.Time:
		if v == nil {
			return "", false
		}
		return formatValue(*v, ctl)
	default:
		return markup.Stringify(v)
	}
}

func priorityZones(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	default:
		return nil
	}
}
