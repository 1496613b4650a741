package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

// Sanitize strips everything but a small set of inline formatting elements
// from caller supplied markup, for captions that need emphasis or an <abbr>.
func Sanitize(raw string) HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return HTML(strings.TrimSpace(inlineSanitizer().Sanitize(trimmed)))
}

func inlineSanitizer() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("abbr", "b", "em", "i", "small", "span", "strong", "sup", "sub")
		policy.AllowAttrs("title").OnElements("abbr", "span")
		policy.AllowAttrs("class").OnElements("span", "small")
		inlinePolicy = policy
	})
	return inlinePolicy
}
