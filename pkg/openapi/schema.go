package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ErrSchemaNotFound is returned when the document has no component schema
// with the requested name.
var ErrSchemaNotFound = errors.New("openapi: component schema not found")

const (
	// KindExtension overrides the inferred storage kind of a property.
	KindExtension = "x-formbuilder-kind"
	// CurrentValueExtension seeds the record value of a property.
	CurrentValueExtension = "x-current-value"

	// Strings longer than this are stored as text.
	textThreshold = 255
)

// ParseDocument loads and validates an OpenAPI 3 document.
func ParseDocument(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}
	return doc, nil
}

// Schema returns the named component schema.
func Schema(doc *openapi3.T, component string) (*openapi3.Schema, error) {
	if doc == nil || doc.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, component)
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, component)
	}
	return ref.Value, nil
}

// Columns lists the schema properties, sorted by name, with their storage
// kinds.
func Columns(schema *openapi3.Schema) []model.Column {
	if schema == nil {
		return nil
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := make([]model.Column, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		columns = append(columns, model.Column{Name: name, Kind: KindFor(ref.Value)})
	}
	return columns
}

// KindFor maps a property schema onto a storage kind.
func KindFor(schema *openapi3.Schema) model.StorageKind {
	if schema == nil {
		return model.KindString
	}
	if raw, ok := schema.Extensions[KindExtension].(string); ok && strings.TrimSpace(raw) != "" {
		return model.ParseStorageKind(raw)
	}

	switch firstType(schema.Type) {
	case openapi3.TypeInteger:
		return model.KindInteger
	case openapi3.TypeNumber:
		if schema.Format == "float" || schema.Format == "double" {
			return model.KindFloat
		}
		return model.KindDecimal
	case openapi3.TypeBoolean:
		return model.KindBoolean
	case openapi3.TypeObject, openapi3.TypeArray:
		return model.KindJSON
	}

	switch schema.Format {
	case "date":
		return model.KindDate
	case "date-time":
		return model.KindDateTime
	case "time":
		return model.KindTime
	case "uuid":
		return model.KindUUID
	case "binary", "byte":
		return model.KindBinary
	}
	if schema.MaxLength != nil && *schema.MaxLength > textThreshold {
		return model.KindText
	}
	return model.KindString
}

// ColumnsFromDocument parses data and returns the columns of component.
func ColumnsFromDocument(ctx context.Context, data []byte, component string) ([]model.Column, error) {
	doc, err := ParseDocument(ctx, data)
	if err != nil {
		return nil, err
	}
	schema, err := Schema(doc, component)
	if err != nil {
		return nil, err
	}
	return Columns(schema), nil
}

// RecordFromDocument parses data and builds a record for component. The
// object name is the snake_case component name; x-current-value and default
// values seed the record.
func RecordFromDocument(ctx context.Context, data []byte, component string) (*model.Record, error) {
	doc, err := ParseDocument(ctx, data)
	if err != nil {
		return nil, err
	}
	schema, err := Schema(doc, component)
	if err != nil {
		return nil, err
	}

	record := model.NewRecord(ObjectName(component), Columns(schema)...)
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		if value, ok := ref.Value.Extensions[CurrentValueExtension]; ok && value != nil {
			record.Set(name, value)
			continue
		}
		if ref.Value.Default != nil {
			record.Set(name, ref.Value.Default)
		}
	}
	return record, nil
}

// ObjectName converts a component name such as "UserProfile" to
// "user_profile".
func ObjectName(component string) string {
	var b strings.Builder
	runes := []rune(strings.TrimSpace(component))
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ' || r == '.':
			b.WriteByte('_')
		case unicode.IsUpper(r):
			if i > 0 && runes[i-1] != '_' && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, t := range types.Slice() {
		if t != "null" {
			return t
		}
	}
	return ""
}
