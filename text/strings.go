// Package text holds small string helpers shared by the renderer.
package text

import (
	"strings"
	"unicode"
)

// Normalize is the text-normalization hook applied to every free-text
// fragment before escaping. It unifies line endings and strips characters
// that have no place in rendered output. It never touches spacing, which
// preformatted content relies on.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if strings.ContainsRune(s, 0) {
		s = strings.ReplaceAll(s, "\x00", "")
	}
	return s
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return ""
	} else if len(s) == 1 {
		return strings.ToUpper(s)
	}

	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// RemoveRedundantWhitespace collapses runs of whitespace to single spaces
// and trims the ends.
func RemoveRedundantWhitespace(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}
