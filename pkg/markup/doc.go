// Package markup produces escaped HTML fragments: tagged containers, void
// tags, safe joins and attribute lists. Every dynamic string is escaped here
// exactly once; fragments of type HTML are never escaped again.
package markup
