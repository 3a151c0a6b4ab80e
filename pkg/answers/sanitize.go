package answers

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips any markup from user-supplied text. bluemonday escapes
// the surviving text, so entities are unescaped afterwards to keep plain
// characters like & intact in the generated document.
func SanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := sanitizer().Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func sanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
