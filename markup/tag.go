package markup

import "strings"

// AssembleTag builds an HTML tag around content. Attributes are written in
// the order they appear in the list, never sorted, so repeated renders of
// the same document are byte-identical. Absent attribute values are
// dropped. When no attribute survives normalization the opening tag
// contains no stray space.
func AssembleTag(tag string, content string, attrs []Attribute, selfClosing bool) string {
	buf := new(strings.Builder)
	buf.WriteString("<")
	buf.WriteString(tag)

	for _, a := range attrs {
		v, ok := NormalizeAttribute(a.Key, a.Value)
		if !ok {
			continue
		}
		buf.WriteString(" ")
		buf.WriteString(a.Key)
		buf.WriteString("=\"")
		buf.WriteString(v)
		buf.WriteString("\"")
	}

	if selfClosing {
		buf.WriteString(" />")
		return buf.String()
	}

	buf.WriteString(">")
	buf.WriteString(content)
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">")
	return buf.String()
}

// Attribute is a key/value pair destined for a tag. A nil value marks an
// absent attribute.
type Attribute struct {
	Key   string
	Value any
}

var nestingPriorities = map[string]int{
	"a":      1,
	"strong": 2,
	"b":      2,
	"em":     3,
	"i":      3,
	"u":      4,
	"s":      5,
	"code":   6,
	"sub":    7,
	"sup":    7,
	"span":   8,
}

// NestingPriority returns the ordinal used to decide wrap order when a
// single piece of text carries several simultaneous decorations. Lower
// values wrap outermost. Unrecognized tags sort last.
func NestingPriority(tag string) int {
	if p, ok := nestingPriorities[tag]; ok {
		return p
	}
	return 100
}
