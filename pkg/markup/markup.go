package markup

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
)

// HTML marks a fragment that is already escaped and safe to embed as-is.
// Only the helpers in this package and autoescaping template engines should
// produce values of this type from dynamic input.
type HTML string

// String returns the raw markup.
func (h HTML) String() string { return string(h) }

// Empty reports whether the fragment carries no markup.
func (h HTML) Empty() bool { return strings.TrimSpace(string(h)) == "" }

// Escape converts untrusted text into safe markup.
func Escape(text string) HTML {
	return HTML(html.EscapeString(text))
}

// Attr is a single attribute pair. Value is escaped when rendered.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attributes keeps attribute order stable so rendering is deterministic.
type Attributes []Attr

// Get returns the value of the first attribute called name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Without returns a copy that omits the named attributes.
func (a Attributes) Without(names ...string) Attributes {
	if len(a) == 0 {
		return nil
	}
	out := make(Attributes, 0, len(a))
	for _, attr := range a {
		skip := false
		for _, name := range names {
			if attr.Name == name {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, attr)
		}
	}
	return out
}

// AttributesFromMap converts an open options bag into attributes. Keys are
// sorted. Boolean true renders as name="name", false and nil are dropped.
func AttributesFromMap(values map[string]any) Attributes {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(Attributes, 0, len(keys))
	for _, key := range keys {
		value, ok := Stringify(values[key])
		if !ok {
			continue
		}
		if b, isBool := values[key].(bool); isBool && b {
			value = key
		}
		out = append(out, Attr{Name: key, Value: value})
	}
	return out
}

// Stringify renders a scalar option value. The second result is false for
// values that should not produce an attribute at all.
func Stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case HTML:
		return string(v), true
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// ClassList joins class tokens, dropping blanks and duplicates.
func ClassList(tokens ...string) string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		for _, part := range strings.Fields(token) {
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}

// ContentTag renders <name attrs>children</name>.
func ContentTag(name string, attrs Attributes, children ...HTML) HTML {
	var builder strings.Builder
	writeOpenTag(&builder, name, attrs)
	builder.WriteByte('>')
	for _, child := range children {
		builder.WriteString(string(child))
	}
	builder.WriteString("</")
	builder.WriteString(name)
	builder.WriteByte('>')
	return HTML(builder.String())
}

// Tag renders a void element such as <br />.
func Tag(name string, attrs Attributes) HTML {
	var builder strings.Builder
	writeOpenTag(&builder, name, attrs)
	builder.WriteString(" />")
	return HTML(builder.String())
}

// SafeJoin escapes every part and joins them with a trusted separator.
func SafeJoin(parts []string, sep HTML) HTML {
	escaped := make([]string, len(parts))
	for i, part := range parts {
		escaped[i] = html.EscapeString(part)
	}
	return HTML(strings.Join(escaped, string(sep)))
}

// JoinHTML joins trusted fragments, skipping empty ones.
func JoinHTML(parts []HTML, sep string) HTML {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		kept = append(kept, string(part))
	}
	return HTML(strings.Join(kept, sep))
}

func writeOpenTag(builder *strings.Builder, name string, attrs Attributes) {
	builder.WriteByte('<')
	builder.WriteString(name)
	for _, attr := range attrs {
		if strings.TrimSpace(attr.Name) == "" {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(attr.Name))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attr.Value))
		builder.WriteByte('"')
	}
}
