// Package model describes the bound object a form is rendered for: its
// attribute storage kinds, current values and validation messages.
//
// Record is the in-memory Binding used by the CLI and tests. Column metadata
// can also come from OpenAPI documents (pkg/openapi), Postgres tables
// (pkg/pgschema) or JSON/YAML model definition files loaded with LoadFS.
package model
