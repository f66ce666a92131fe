package util

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	scriptTagRegex    = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=\s*('[^']*'|"[^"]*")`)
)

// SanitizeString trims whitespace and removes control characters from s.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// SanitizeHTMLAllowBasic allows basic markup but strips script tags and
// inline event handlers. Intentionally conservative.
func SanitizeHTMLAllowBasic(raw string) string {
	if raw == "" {
		return ""
	}
	raw = scriptTagRegex.ReplaceAllString(raw, "")
	return eventHandlerRegex.ReplaceAllString(raw, "")
}
