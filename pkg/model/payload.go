package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var payloadJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorMapping splits a server error payload into field-level and form-level
// messages keyed by attribute name.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// Apply records the mapped messages on target. Fields are applied in name
// order so repeated renders are stable.
func (m ErrorMapping) Apply(target *Errors) {
	if target == nil {
		return
	}
	names := make([]string, 0, len(m.Fields))
	for name := range m.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		target.Add(name, m.Fields[name]...)
	}
	if len(m.Form) > 0 {
		target.AddForm(m.Form...)
	}
}

// MapErrorPayload normalises payload keys (JSON pointers, dotted or bracketed
// paths, optionally wrapped in body/data/the object name) onto the known
// attribute names. Keys that match no attribute become form-level messages so
// nothing is lost.
func MapErrorPayload(fields []string, payload map[string][]string, wrappers ...string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	known := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if name := strings.TrimSpace(field); name != "" {
			known[name] = struct{}{}
		}
	}
	wrapperSet := defaultWrappers()
	for _, wrapper := range wrappers {
		if w := strings.ToLower(strings.TrimSpace(wrapper)); w != "" {
			wrapperSet[w] = struct{}{}
		}
	}

	rawPaths := make([]string, 0, len(payload))
	for rawPath := range payload {
		rawPaths = append(rawPaths, rawPath)
	}
	sort.Strings(rawPaths)

	for _, rawPath := range rawPaths {
		messages := normalizeMessages(payload[rawPath])
		if len(messages) == 0 {
			continue
		}
		mapped, formLevel := mapErrorPath(rawPath, known, wrapperSet)
		if formLevel {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		mapping.Fields[mapped] = append(mapping.Fields[mapped], messages...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// DecodeErrorPayload decodes a JSON object of field → message(s). Values may
// be a string or a list of strings, and the object may be wrapped in an
// "errors" key.
func DecodeErrorPayload(data []byte) (map[string][]string, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var raw map[string]any
	if err := payloadJSON.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("model: decode error payload: %w", err)
	}
	if nested, ok := raw["errors"].(map[string]any); ok && len(raw) == 1 {
		raw = nested
	}

	out := make(map[string][]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = []string{v}
		case []any:
			for _, item := range v {
				text, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("model: decode error payload: key %q holds a non-string message", key)
				}
				out[key] = append(out[key], text)
			}
		case nil:
			continue
		default:
			return nil, fmt.Errorf("model: decode error payload: key %q has unsupported type %T", key, value)
		}
	}
	return out, nil
}

func defaultWrappers() map[string]struct{} {
	return map[string]struct{}{
		"body":       {},
		"request":    {},
		"payload":    {},
		"data":       {},
		"attributes": {},
	}
}

func mapErrorPath(raw string, known map[string]struct{}, wrappers map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", true
	}

	segments := parsePathSegments(trimmed)
	if len(segments) == 0 {
		return "", true
	}

	for _, variant := range [][]string{
		segments,
		dropWrapperSegments(segments, wrappers),
		stripNumericSegments(dropWrapperSegments(segments, wrappers)),
	} {
		if match := longestMatchingPath(variant, known); match != "" {
			return match, false
		}
	}
	return "", true
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimPrefix(clean, "#")
		clean = strings.TrimPrefix(clean, "/")
		clean = strings.TrimPrefix(clean, ".")
		clean = strings.TrimPrefix(clean, "$")
	}

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func dropWrapperSegments(segments []string, wrappers map[string]struct{}) []string {
	out := segments
	for len(out) > 1 {
		if _, ok := wrappers[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func longestMatchingPath(segments []string, known map[string]struct{}) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := known[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
