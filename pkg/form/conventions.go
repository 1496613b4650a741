package form

import (
	"strconv"
	"strings"
)

// Conventions holds every output difference between the supported flavours.
type Conventions struct {
	// NumericControls enables number inference for integer, decimal and
	// float columns and the number control itself.
	NumericControls bool
	// ErrorClassOnContainer adds ErrorClass to the container when the field
	// has messages.
	ErrorClassOnContainer bool
	// ErrorTag wraps the message block, "div" or "span".
	ErrorTag   string
	ErrorClass string
}

// BaseConventions is the "foundation" flavour.
func BaseConventions() Conventions {
	return Conventions{
		ErrorTag:   "div",
		ErrorClass: "error",
	}
}

// RailsConventions is the extended "rails" flavour.
func RailsConventions() Conventions {
	return Conventions{
		NumericControls:       true,
		ErrorClassOnContainer: true,
		ErrorTag:              "span",
		ErrorClass:            "error",
	}
}

// DefaultConventions returns RailsConventions.
func DefaultConventions() Conventions {
	return RailsConventions()
}

// ConventionsByName resolves "base"/"foundation" and "rails"/"extended".
func ConventionsByName(name string) (Conventions, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "base", "foundation":
		return BaseConventions(), true
	case "rails", "extended":
		return RailsConventions(), true
	default:
		return Conventions{}, false
	}
}

func (c Conventions) normalized() Conventions {
	switch strings.ToLower(strings.TrimSpace(c.ErrorTag)) {
	case "span":
		c.ErrorTag = "span"
	default:
		c.ErrorTag = "div"
	}
	if strings.TrimSpace(c.ErrorClass) == "" {
		c.ErrorClass = "error"
	}
	return c
}

// Theme token names read by ApplyTokens.
const (
	TokenNumeric          = "formbuilder.numeric"
	TokenErrorTag         = "formbuilder.error_tag"
	TokenErrorClass       = "formbuilder.error_class"
	TokenErrorOnContainer = "formbuilder.error_on_container"
)

// ApplyTokens overlays theme tokens on c. Unknown or malformed tokens leave
// the member unchanged.
func (c Conventions) ApplyTokens(tokens map[string]string) Conventions {
	if v, ok := parseBoolToken(tokens, TokenNumeric); ok {
		c.NumericControls = v
	}
	if v, ok := parseBoolToken(tokens, TokenErrorOnContainer); ok {
		c.ErrorClassOnContainer = v
	}
	if v := strings.TrimSpace(tokens[TokenErrorTag]); v == "div" || v == "span" {
		c.ErrorTag = v
	}
	if v := strings.TrimSpace(tokens[TokenErrorClass]); v != "" {
		c.ErrorClass = v
	}
	return c
}

func (c Conventions) tokens() map[string]string {
	c = c.normalized()
	return map[string]string{
		TokenNumeric:          strconv.FormatBool(c.NumericControls),
		TokenErrorOnContainer: strconv.FormatBool(c.ErrorClassOnContainer),
		TokenErrorTag:         c.ErrorTag,
		TokenErrorClass:       c.ErrorClass,
	}
}

func parseBoolToken(tokens map[string]string, key string) (bool, bool) {
	raw, ok := tokens[key]
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return v, true
}
