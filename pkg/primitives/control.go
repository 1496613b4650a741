package primitives

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/markup"
)

// Choice is one <option> of a select.
type Choice struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Control describes one control request. Attributes never carry id, name,
// type or value; those live in their own members.
type Control struct {
	ObjectName string            `json:"object"`
	Field      string            `json:"field"`
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       string            `json:"type,omitempty"`
	Value      string            `json:"value"`
	HasValue   bool              `json:"has_value"`
	Attributes markup.Attributes `json:"attributes"`
	Choices    []Choice          `json:"choices,omitempty"`

	// Text and TextHTML are the label caption. TextHTML is emitted verbatim
	// and must already be sanitised.
	Text     string      `json:"text,omitempty"`
	TextHTML markup.HTML `json:"text_html,omitempty"`

	PriorityZones []string `json:"priority_zones,omitempty"`
}

// NewControl builds the control for field on objectName. id, name and value
// entries in attrs override the derived ones and are moved out of the
// attribute list, as is type, which wins over the primitive's own type.
func NewControl(objectName, field string, attrs markup.Attributes) Control {
	control := Control{
		ObjectName: objectName,
		Field:      field,
		ID:         ControlID(objectName, field),
		Name:       ControlName(objectName, field),
	}
	if id, ok := attrs.Get("id"); ok {
		control.ID = id
	}
	if name, ok := attrs.Get("name"); ok {
		control.Name = name
	}
	if typ, ok := attrs.Get("type"); ok {
		control.Type = typ
	}
	if value, ok := attrs.Get("value"); ok {
		control.Value = value
		control.HasValue = true
	}
	control.Attributes = attrs.Without("id", "name", "type", "value")
	return control
}

// WithValue returns a copy carrying value, unless the attributes already
// forced one.
func (c Control) WithValue(value string) Control {
	if c.HasValue {
		return c
	}
	c.Value = value
	c.HasValue = true
	return c
}

var unsafeIDChars = regexp.MustCompile(`\]\[|[^-a-zA-Z0-9:.]`)

// ControlID returns the DOM id for field, "user_email" for ("user", "email").
func ControlID(objectName, field string) string {
	field = strings.TrimSuffix(field, "?")
	if objectName == "" {
		return field
	}
	object := strings.TrimSuffix(unsafeIDChars.ReplaceAllString(objectName, "_"), "_")
	return object + "_" + field
}

// ControlName returns the input name, "user[email]" for ("user", "email").
func ControlName(objectName, field string) string {
	if objectName == "" {
		return field
	}
	return objectName + "[" + field + "]"
}
