package render

import (
	"fmt"
	"strings"

	"github.com/treemark/treemark/doc"
	"github.com/treemark/treemark/text"
)

// markdownFormatter is the whole-document Markdown backend. Kinds with no
// markdown form fall back to the HTML handlers; markdown tolerates inline
// HTML so nothing is dropped.
type markdownFormatter struct{}

func (markdownFormatter) FormatDocument(r *Renderer, nodes []*doc.Node) (string, error) {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = r.renderNodeMarkdown(n, 0)
	}
	return strings.Join(parts, "\n"), nil
}

func (r *Renderer) renderNodeMarkdown(n *doc.Node, depth int) string {
	if n == nil {
		return ""
	}
	if depth > MaxDepth {
		return DepthSentinel
	}

	switch n.Kind {
	case "paragraph", "p":
		return r.mdInner(n, depth)
	case "strong", "b", "bold":
		return "**" + r.mdInner(n, depth) + "**"
	case "emphasis", "em", "i", "italic":
		return "*" + r.mdInner(n, depth) + "*"
	case "preformatted", "pre":
		if s, ok := n.Content.(string); ok {
			return "```\n" + s + "\n```"
		}
		return r.renderNode(n, depth)
	case "code":
		if s, ok := n.Content.(string); ok && !strings.Contains(s, "\n") {
			return "`" + s + "`"
		}
		return r.renderNode(n, depth)
	case "image", "img":
		name := imageName(plainContent(n.Content, depth))
		return fmt.Sprintf("![%s](images/%s)", n.Attrs.String("alt"), name)
	case "error":
		msg := r.mdInner(n, depth)
		if line, ok := n.Attrs.Get("line"); ok && line != nil {
			return fmt.Sprintf("[ERROR (Line %s): %s]", doc.ValueString(line), msg)
		}
		return fmt.Sprintf("[ERROR: %s]", msg)
	case "toc_placeholder", "toc":
		return TOCMarker
	case "heading", "h1", "h2", "h3", "h4", "h5", "h6":
		level := headingLevel(n)
		headingText := plainContent(n.Content, depth)
		id := r.ids.assign(n, headingText)
		return fmt.Sprintf("%s %s {#%s}", strings.Repeat("#", level), r.mdInner(n, depth), id)
	case "unordered_list", "ul":
		return r.mdList(n, depth, false)
	case "ordered_list", "ol":
		return r.mdList(n, depth, true)
	case "list_item", "li":
		return r.mdInner(n, depth)
	case "blockquote":
		return mdQuote(r.mdInner(n, depth))
	case "horizontal_rule", "hr":
		return "----"
	case "line_break", "br":
		return "<br>"
	case "link", "a":
		return fmt.Sprintf("[%s](%s)", r.mdInner(n, depth), n.Attrs.String("href"))
	case "markdown":
		if s, ok := n.Content.(string); ok {
			return text.Normalize(s)
		}
		return r.mdInner(n, depth)
	case "styled":
		return r.mdStyled(n, depth)
	default:
		// div, details, tables and unknown kinds keep their HTML form.
		return r.renderNode(n, depth)
	}
}

// mdInner flattens content for markdown output. Text passes through
// normalization only; markdown output is not HTML-escaped.
func (r *Renderer) mdInner(n *doc.Node, depth int) string {
	out := r.mdContent(n.Content, depth)
	for _, child := range n.Children {
		out += r.renderNodeMarkdown(child, depth+1)
	}
	return out
}

func (r *Renderer) mdContent(content any, depth int) string {
	if depth > MaxDepth {
		return DepthSentinel
	}
	switch c := content.(type) {
	case nil:
		return ""
	case string:
		return text.Normalize(c)
	case *doc.Node:
		return r.renderNodeMarkdown(c, depth+1)
	case []any:
		out := ""
		for _, item := range c {
			out += r.mdContent(item, depth+1)
		}
		return out
	case []*doc.Node:
		out := ""
		for _, item := range c {
			out += r.renderNodeMarkdown(item, depth+1)
		}
		return out
	default:
		return text.Normalize(doc.ValueString(c))
	}
}

func (r *Renderer) mdList(n *doc.Node, depth int, ordered bool) string {
	items := n.Children
	if items == nil {
		if nested, ok := n.Content.([]*doc.Node); ok {
			items = nested
		}
	}

	buf := new(strings.Builder)
	for i, item := range items {
		if i > 0 {
			buf.WriteString("\n")
		}
		if ordered {
			fmt.Fprintf(buf, " %d. %s", i+1, r.renderNodeMarkdown(item, depth+1))
		} else {
			fmt.Fprintf(buf, " - %s", r.renderNodeMarkdown(item, depth+1))
		}
	}
	return buf.String()
}

func (r *Renderer) mdStyled(n *doc.Node, depth int) string {
	out := r.mdContent(n.Content, depth)
	if truthy(n.Attrs, "code") {
		out = "`" + out + "`"
	}
	if truthy(n.Attrs, "italic") {
		out = "*" + out + "*"
	}
	if truthy(n.Attrs, "bold") {
		out = "**" + out + "**"
	}
	return out
}

func mdQuote(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n")
}
