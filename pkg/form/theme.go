package form

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// ThemeName is the manifest name returned by ThemeManifest.
const ThemeName = "foundation"

// ThemeManifest describes the built-in flavours as a go-theme manifest. The
// base tokens match BaseConventions and the "rails" variant matches
// RailsConventions.
func ThemeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    ThemeName,
		Version: "1.0.0",
		Tokens:  BaseConventions().tokens(),
		Variants: map[string]theme.Variant{
			"base":  {Tokens: BaseConventions().tokens()},
			"rails": {Tokens: RailsConventions().tokens()},
		},
	}
}

// NewThemeRegistry returns a go-theme registry holding ThemeManifest and any
// extra manifests.
func NewThemeRegistry(manifests ...*theme.Manifest) (*theme.MemoryRegistry, error) {
	registry := theme.NewRegistry()
	for _, manifest := range append([]*theme.Manifest{ThemeManifest()}, manifests...) {
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("form: register theme: %w", err)
		}
	}
	return registry, nil
}
