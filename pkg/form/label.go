package form

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Humanize turns an attribute name into a caption: "first_name" becomes
// "First name" and a trailing "_id" is dropped.
func Humanize(field string) string {
	s := strings.TrimSpace(field)
	s = strings.TrimSuffix(s, "_id")
	s = strings.TrimLeft(s, "_")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func (b *Builder) caption(field string) string {
	if b.translator != nil {
		object := b.binding.ObjectName()
		for _, key := range []string{
			"helpers.label." + object + "." + field,
			"attributes." + object + "." + field,
		} {
			text, err := b.translator.Translate(b.locale, key)
			if err == nil && strings.TrimSpace(text) != "" {
				return text
			}
		}
		b.logger.Debug("label translation missing", zap.String("field", field))
	}
	return Humanize(field)
}
