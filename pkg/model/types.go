package model

import (
	"errors"
	"strings"
)

// ErrUnknownAttribute is returned when a binding has no column for a field.
var ErrUnknownAttribute = errors.New("model: unknown attribute")

// StorageKind is the declared storage type of an attribute.
type StorageKind string

const (
	KindString   StorageKind = "string"
	KindText     StorageKind = "text"
	KindInteger  StorageKind = "integer"
	KindDecimal  StorageKind = "decimal"
	KindFloat    StorageKind = "float"
	KindDate     StorageKind = "date"
	KindDateTime StorageKind = "datetime"
	KindTime     StorageKind = "time"
	KindBoolean  StorageKind = "boolean"
	KindBinary   StorageKind = "binary"
	KindJSON     StorageKind = "json"
	KindUUID     StorageKind = "uuid"
)

// ParseStorageKind normalises a kind read from configuration. Unknown kinds
// are kept as-is so callers can pass custom kinds through.
func ParseStorageKind(raw string) StorageKind {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case "", "str", "varchar":
		return KindString
	case "int", "bigint":
		return KindInteger
	case "double":
		return KindFloat
	case "numeric":
		return KindDecimal
	case "bool":
		return KindBoolean
	case "timestamp", "date-time", "date_time":
		return KindDateTime
	default:
		return StorageKind(normalized)
	}
}

// IsNumeric reports whether the kind holds numbers.
func (k StorageKind) IsNumeric() bool {
	switch k {
	case KindInteger, KindDecimal, KindFloat:
		return true
	default:
		return false
	}
}

// Column is the storage metadata of one attribute.
type Column struct {
	Name string
	Kind StorageKind
}

// Binding is the object a form builder is bound to.
type Binding interface {
	// ObjectName prefixes control ids and names (user -> user_email, user[email]).
	ObjectName() string
	// ColumnFor returns storage metadata, or an error wrapping
	// ErrUnknownAttribute.
	ColumnFor(field string) (Column, error)
	// Value returns the current attribute value, if any.
	Value(field string) (any, bool)
	// Errors exposes the validation messages keyed by field.
	Errors() *Errors
}
