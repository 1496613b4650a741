// Package template defines the engine-agnostic template contract used by the
// field primitives. The gotemplate subpackage provides the default pongo2
// backed implementation with HTML autoescaping enabled.
package template
