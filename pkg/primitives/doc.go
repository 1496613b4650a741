// Package primitives renders the individual form controls (label, text-like
// inputs, textarea, select, time-zone select) for a single bound field.
//
// Controls are described by a Control value and rendered by named Renderers
// kept in a Registry. The default registry renders through embedded pongo2
// templates; themes can point any template-backed primitive at a different
// template through partial overrides.
package primitives
