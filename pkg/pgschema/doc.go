// Package pgschema reads column metadata from a PostgreSQL
// information_schema so tables can be bound to form builders. Queries are
// built with goqu and executed through a small Querier interface with pgx
// and sqlx implementations.
package pgschema
