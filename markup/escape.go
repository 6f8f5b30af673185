// Package markup provides escaping, attribute normalization and tag
// assembly for the HTML produced by the renderer.
package markup

import "strings"

var textEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`'`, "&#39;", // "&#39;" is shorter than "&apos;" and apos was not in HTML until HTML5.
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&#34;", // "&#34;" is shorter than "&quot;".
)

// EscapeText escapes the five characters that are significant in HTML text
// and attribute values. It is applied to every free-text fragment and every
// attribute value before interpolation, without exception.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
