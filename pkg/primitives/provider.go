package primitives

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbuilder/components/timezones"
	"github.com/goliatone/go-formbuilder/pkg/markup"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

// ErrUnknownPrimitive is returned when no renderer is registered under the
// requested name.
var ErrUnknownPrimitive = errors.New("primitives: unknown primitive")

// Provider renders primitives by name. It is safe for concurrent use.
type Provider struct {
	registry  *Registry
	engine    rendertemplate.TemplateRenderer
	timeZones *timezones.Component
	partials  map[string]string
}

type Option func(*Provider)

// WithRegistry replaces the default registry.
func WithRegistry(registry *Registry) Option {
	return func(p *Provider) {
		if registry != nil {
			p.registry = registry
		}
	}
}

// WithTemplateRenderer replaces the go-template engine over the embedded
// templates.
func WithTemplateRenderer(engine rendertemplate.TemplateRenderer) Option {
	return func(p *Provider) {
		if engine != nil {
			p.engine = engine
		}
	}
}

func WithTimeZones(component *timezones.Component) Option {
	return func(p *Provider) {
		if component != nil {
			p.timeZones = component
		}
	}
}

// WithPartials sets template overrides keyed by partial name, for example
// {"formbuilder.select": "theme/select.tpl"}.
func WithPartials(partials map[string]string) Option {
	return func(p *Provider) {
		if len(partials) == 0 {
			return
		}
		if p.partials == nil {
			p.partials = make(map[string]string, len(partials))
		}
		maps.Copy(p.partials, partials)
	}
}

// NewProvider builds a provider. Without WithTemplateRenderer it compiles the
// embedded templates with a go-template engine.
func NewProvider(opts ...Option) (*Provider, error) {
	p := &Provider{}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.registry == nil {
		p.registry = NewDefaultRegistry()
	}
	if p.timeZones == nil {
		p.timeZones = timezones.New()
	}
	if p.engine == nil {
		engine, err := gotemplate.New(
			gotemplatepkg.WithFS(TemplatesFS()),
			gotemplatepkg.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("primitives: template engine: %w", err)
		}
		p.engine = engine
	}
	return p, nil
}

var (
	defaultOnce     sync.Once
	defaultProvider *Provider
	defaultErr      error
)

// Default returns a process-wide provider over the built-in registry and
// templates.
func Default() (*Provider, error) {
	defaultOnce.Do(func() {
		defaultProvider, defaultErr = NewProvider()
	})
	return defaultProvider, defaultErr
}

// WithOptions returns a copy of p with opts applied on top. The registry and
// engine are shared.
func (p *Provider) WithOptions(opts ...Option) *Provider {
	clone := &Provider{
		registry:  p.registry,
		engine:    p.engine,
		timeZones: p.timeZones,
		partials:  maps.Clone(p.partials),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(clone)
		}
	}
	return clone
}

// Registry exposes the provider's registry.
func (p *Provider) Registry() *Registry {
	return p.registry
}

// Render renders the primitive registered under name for control.
func (p *Provider) Render(name string, control Control) (markup.HTML, error) {
	descriptor, ok := p.registry.Descriptor(name)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownPrimitive, name)
	}

	var buf bytes.Buffer
	err := descriptor.Renderer(&buf, control, Data{
		Template:  p.engine,
		Partials:  p.partials,
		TimeZones: p.timeZones,
	})
	if err != nil {
		return "", err
	}
	return markup.HTML(strings.TrimSpace(buf.String())), nil
}
