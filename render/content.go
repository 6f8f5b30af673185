package render

import (
	"github.com/treemark/treemark/doc"
	"github.com/treemark/treemark/markup"
	"github.com/treemark/treemark/text"
)

// flatten normalizes arbitrary node content into a single HTML string.
// Content is one of nil, string, *doc.Node or an ordered mixed sequence;
// anything else is stringified. The depth counter is threaded through
// every recursive call and checked on entry, which is the only guard
// against stack exhaustion on pathologically deep or cyclic content.
func (r *Renderer) flatten(content any, depth int) string {
	if depth > MaxDepth {
		return DepthSentinel
	}

	switch c := content.(type) {
	case nil:
		return ""
	case string:
		return markup.EscapeText(text.Normalize(c))
	case *doc.Node:
		return r.renderNode(c, depth+1)
	case []any:
		out := ""
		for _, item := range c {
			out += r.flatten(item, depth+1)
		}
		return out
	case []*doc.Node:
		out := ""
		for _, n := range c {
			out += r.renderNode(n, depth+1)
		}
		return out
	default:
		return markup.EscapeText(text.Normalize(doc.ValueString(c)))
	}
}

// plainContent flattens content to unescaped text, dropping all markup.
// Used for table of contents entries and id derivation.
func plainContent(content any, depth int) string {
	if depth > MaxDepth {
		return ""
	}

	switch c := content.(type) {
	case nil:
		return ""
	case string:
		return text.Normalize(c)
	case *doc.Node:
		out := plainContent(c.Content, depth+1)
		for _, child := range c.Children {
			out += plainContent(child.Content, depth+1)
		}
		return out
	case []any:
		out := ""
		for _, item := range c {
			out += plainContent(item, depth+1)
		}
		return out
	default:
		return text.Normalize(doc.ValueString(c))
	}
}
