package model

import (
	"fmt"
	"strings"
	"sync"
)

// Record is an in-memory Binding: a named object with declared columns,
// current values and an error collection.
type Record struct {
	name    string
	columns []Column
	index   map[string]int

	mu     sync.RWMutex
	values map[string]any
	errors *Errors
}

var _ Binding = (*Record)(nil)

// NewRecord builds a record. Later columns with the same name replace
// earlier ones.
func NewRecord(name string, columns ...Column) *Record {
	record := &Record{
		name:   strings.TrimSpace(name),
		index:  make(map[string]int, len(columns)),
		values: make(map[string]any),
		errors: NewErrors(),
	}
	for _, column := range columns {
		column.Name = strings.TrimSpace(column.Name)
		if column.Name == "" {
			continue
		}
		if column.Kind == "" {
			column.Kind = KindString
		}
		if idx, ok := record.index[column.Name]; ok {
			record.columns[idx] = column
			continue
		}
		record.index[column.Name] = len(record.columns)
		record.columns = append(record.columns, column)
	}
	return record
}

// ObjectName implements Binding.
func (r *Record) ObjectName() string { return r.name }

// ColumnFor implements Binding.
func (r *Record) ColumnFor(field string) (Column, error) {
	idx, ok := r.index[strings.TrimSpace(field)]
	if !ok {
		return Column{}, fmt.Errorf("%w %q for %q", ErrUnknownAttribute, field, r.name)
	}
	return r.columns[idx], nil
}

// Columns returns the declared columns in declaration order.
func (r *Record) Columns() []Column {
	return append([]Column(nil), r.columns...)
}

// FieldNames returns the declared column names in declaration order.
func (r *Record) FieldNames() []string {
	names := make([]string, 0, len(r.columns))
	for _, column := range r.columns {
		names = append(names, column.Name)
	}
	return names
}

// Set stores the current value of field and returns the record for chaining.
func (r *Record) Set(field string, value any) *Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[strings.TrimSpace(field)] = value
	return r
}

// Value implements Binding.
func (r *Record) Value(field string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[strings.TrimSpace(field)]
	return value, ok
}

// Errors implements Binding.
func (r *Record) Errors() *Errors { return r.errors }

// ApplyErrorPayload maps a server payload onto the record's errors, treating
// the object name as an extra wrapper segment (user[email], user.email).
func (r *Record) ApplyErrorPayload(payload map[string][]string) ErrorMapping {
	mapping := MapErrorPayload(r.FieldNames(), payload, r.name)
	mapping.Apply(r.errors)
	return mapping
}
