package formatting

import (
	"strings"
	"unicode/utf8"
)

// Excerpt collapses whitespace in s and truncates it to at most n runes,
// appending an ellipsis when anything was cut.
func Excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
