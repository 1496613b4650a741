package form

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ControlType is the closed set of controls a field can render as. The zero
// value means "infer from the field".
type ControlType int

const (
	ControlUnspecified ControlType = iota
	ControlText
	ControlDate
	ControlEmail
	ControlNumber
	ControlPassword
	ControlSelect
	ControlTextarea
	ControlTimeZone
)

var controlNames = map[ControlType]string{
	ControlUnspecified: "",
	ControlText:        "text",
	ControlDate:        "date",
	ControlEmail:       "email",
	ControlNumber:      "number",
	ControlPassword:    "password",
	ControlSelect:      "select",
	ControlTextarea:    "textarea",
	ControlTimeZone:    "time_zone",
}

func (c ControlType) String() string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return "text"
}

// ParseControlType maps a control or storage-kind name onto a control.
// Names that select no dedicated control resolve to ControlText.
func ParseControlType(name string) ControlType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "date":
		return ControlDate
	case "email":
		return ControlEmail
	case "number", "numeric":
		return ControlNumber
	case "password":
		return ControlPassword
	case "select":
		return ControlSelect
	case "textarea":
		return ControlTextarea
	case "time_zone":
		return ControlTimeZone
	default:
		return ControlText
	}
}

var passwordToken = regexp.MustCompile(`(\b|_)password(\b|_)`)

// InferType picks the control for field from its name, then from the
// storage kind of its column.
func InferType(field string, kind model.StorageKind, conv Conventions) ControlType {
	if ctl, ok := controlFromName(field); ok {
		return ctl
	}

	switch {
	case kind == model.KindText:
		return ControlTextarea
	case kind.IsNumeric() && conv.NumericControls:
		return ControlNumber
	default:
		return ParseControlType(string(kind))
	}
}

// primitiveFor resolves the primitive that renders ctl under conv.
func primitiveFor(ctl ControlType, conv Conventions) string {
	if ctl == ControlUnspecified || (ctl == ControlNumber && !conv.NumericControls) {
		return ControlText.String()
	}
	return ctl.String()
}
