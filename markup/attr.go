package markup

import (
	"strings"

	"github.com/treemark/treemark/doc"
)

var namedColors = map[string]bool{
	"black":       true,
	"silver":      true,
	"gray":        true,
	"grey":        true,
	"white":       true,
	"maroon":      true,
	"red":         true,
	"purple":      true,
	"fuchsia":     true,
	"green":       true,
	"lime":        true,
	"olive":       true,
	"yellow":      true,
	"navy":        true,
	"blue":        true,
	"teal":        true,
	"aqua":        true,
	"orange":      true,
	"transparent": true,
	"inherit":     true,
}

// NormalizeAttribute prepares an attribute value for output. Colour, style
// and class keys receive semantic normalization before escaping; all other
// keys pass through escaping only. It returns false when the attribute
// must be dropped: a nil (absent) value, or a colour that is neither a
// valid hex value nor a recognised name.
func NormalizeAttribute(key string, value any) (string, bool) {
	if value == nil {
		return "", false
	}
	s := doc.ValueString(value)

	switch key {
	case "color", "background-color", "border-color":
		c, ok := normalizeColor(s)
		if !ok {
			return "", false
		}
		s = c
	case "style":
		s = normalizeStyle(s)
	case "class":
		s = normalizeClass(s)
	}

	return EscapeText(s), true
}

// normalizeColor lower-cases a colour value and validates it: hex colours
// must be 4 or 7 characters, anything else must be on the named allow-list.
func normalizeColor(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return "", false
		}
		for _, r := range s[1:] {
			if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
				return "", false
			}
		}
		return s, true
	}
	if namedColors[s] {
		return s, true
	}
	return "", false
}

// normalizeStyle tidies inline CSS declarations: property names are
// lower-cased, hex colour values are lower-cased, and declarations are
// rejoined in their original order.
func normalizeStyle(s string) string {
	decls := strings.Split(s, ";")
	out := make([]string, 0, len(decls))
	for _, d := range decls {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		prop, val, found := strings.Cut(d, ":")
		if !found {
			out = append(out, d)
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if strings.HasPrefix(val, "#") {
			val = strings.ToLower(val)
		}
		out = append(out, prop+": "+val)
	}
	return strings.Join(out, "; ")
}

// normalizeClass lower-cases CSS class tokens and converts underscores to
// hyphens.
func normalizeClass(s string) string {
	tokens := strings.Fields(s)
	for i, t := range tokens {
		tokens[i] = strings.ReplaceAll(strings.ToLower(t), "_", "-")
	}
	return strings.Join(tokens, " ")
}
