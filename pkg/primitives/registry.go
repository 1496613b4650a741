package primitives

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/components/timezones"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
)

// Renderer writes the markup for control into buf.
type Renderer func(buf *bytes.Buffer, control Control, data Data) error

// Data carries the collaborators a renderer may need.
type Data struct {
	Template rendertemplate.TemplateRenderer
	// Partials maps a partial key (for example "formbuilder.select") to the
	// template that should replace the built-in one.
	Partials  map[string]string
	TimeZones *timezones.Component
}

// Descriptor binds a renderer to its registered name.
type Descriptor struct {
	Name     string
	Renderer Renderer
}

// Registry tracks primitive renderers by name. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	primitives map[string]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{primitives: make(map[string]Descriptor)}
}

// Clone returns an independent copy so callers can override entries without
// touching the shared defaults.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, descriptor := range r.primitives {
		cloned.primitives[name] = descriptor
	}
	return cloned
}

// Register associates a renderer with name, replacing any existing entry.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("primitives: primitive name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("primitives: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.primitives[name] = descriptor
	return nil
}

func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.primitives[normalize(name)]
	return descriptor, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.primitives))
	for name := range r.primitives {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
