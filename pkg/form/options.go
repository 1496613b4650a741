package form

import (
	"errors"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/primitives"
)

// ErrInvalidOptions marks a FieldOptions combination that cannot be
// rendered, such as Values without Type ControlSelect.
var ErrInvalidOptions = errors.New("form: invalid field options")

// Choice is one (label, value) pair of a select.
type Choice struct {
	Label string
	Value any
}

// FieldOptions tunes a single RenderField call.
type FieldOptions struct {
	// Label overrides the caption text.
	Label string
	// LabelHTML overrides the caption with markup. It is sanitised and takes
	// precedence over Label.
	LabelHTML string
	Type      ControlType
	// Values lists select choices in order. Only valid with ControlSelect;
	// a non-nil empty slice counts as supplied.
	Values []Choice
	// Field is forwarded to the control as attributes. "priority_zones" is
	// consumed by the time-zone control.
	Field map[string]any
}

// Primitives renders a named control. *primitives.Provider satisfies it.
type Primitives interface {
	Render(name string, control primitives.Control) (markup.HTML, error)
}

// Translator resolves label captions.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

type Option func(*Builder)

func WithConventions(conv Conventions) Option {
	return func(b *Builder) {
		b.conv = conv
	}
}

func WithPrimitives(p Primitives) Option {
	return func(b *Builder) {
		if p != nil {
			b.primitives = p
		}
	}
}

// WithTranslator looks captions up under "helpers.label.<object>.<field>"
// then "attributes.<object>.<field>" before humanizing the field name.
func WithTranslator(t Translator, locale string) Option {
	return func(b *Builder) {
		b.translator = t
		b.locale = locale
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTheme resolves conventions and template overrides from a go-theme
// selection when the builder is created. Theme tokens are applied on top of
// WithConventions.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return func(b *Builder) {
		b.themeSelector = selector
		b.themeName = name
		b.themeVariant = variant
	}
}

// WithThemeProvider builds a go-theme selector over provider and applies the
// default theme and variant through it, the same way WithTheme does.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(b *Builder) {
		b.themeSelector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   defaultTheme,
			DefaultVariant: defaultVariant,
		}
		b.themeName = defaultTheme
		b.themeVariant = defaultVariant
	}
}
