package render

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/yuin/goldmark"
	"golang.org/x/exp/slices"

	"github.com/treemark/treemark/doc"
	"github.com/treemark/treemark/logging"
	"github.com/treemark/treemark/markup"
)

// handler renders one node kind to HTML.
type handler func(r *Renderer, n *doc.Node, depth int) string

// renderNode is the per-node dispatch boundary. Unknown kinds never escape
// it: they fall through to the generic tag handler so content is never
// silently dropped.
func (r *Renderer) renderNode(n *doc.Node, depth int) string {
	if n == nil {
		return ""
	}
	if depth > MaxDepth {
		return DepthSentinel
	}
	return kindHandler(n.Kind)(r, n, depth)
}

// kindHandler maps a node kind to its handler. This is the baseline
// dispatch; the optimized pipeline caches the result per kind.
func kindHandler(kind string) handler {
	switch kind {
	case "paragraph", "p":
		return renderWrap("p")
	case "strong", "b", "bold":
		return renderWrap("strong")
	case "emphasis", "em", "i", "italic":
		return renderWrap("em")
	case "preformatted", "pre":
		return renderPre("pre")
	case "code":
		return renderPre("code")
	case "image", "img":
		return renderImage
	case "error":
		return renderError
	case "toc_placeholder", "toc":
		return renderTOCPlaceholder
	case "heading", "h1", "h2", "h3", "h4", "h5", "h6":
		return renderHeading
	case "unordered_list", "ul":
		return renderWrap("ul")
	case "ordered_list", "ol":
		return renderWrap("ol")
	case "list_item", "li":
		return renderWrap("li")
	case "div":
		return renderWrap("div")
	case "blockquote":
		return renderWrap("blockquote")
	case "details":
		return renderDetails
	case "horizontal_rule", "hr":
		return renderVoid("hr")
	case "line_break", "br":
		return renderVoid("br")
	case "link", "a":
		return renderWrap("a")
	case "table":
		return renderWrap("table")
	case "table_row", "tr":
		return renderWrap("tr")
	case "table_cell", "td":
		return renderTableCell
	case "styled":
		return renderStyled
	case "markdown":
		return renderMarkdownContent
	default:
		return renderUnknown
	}
}

// inner renders a node's content followed by its children, concatenated
// with no separator.
func (r *Renderer) inner(n *doc.Node, depth int) string {
	out := r.flatten(n.Content, depth)
	for _, child := range n.Children {
		out += r.renderNode(child, depth+1)
	}
	return out
}

func attributes(attrs doc.Attrs) []markup.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]markup.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = markup.Attribute{Key: a.Key, Value: a.Value}
	}
	return out
}

func renderWrap(tag string) handler {
	return func(r *Renderer, n *doc.Node, depth int) string {
		return markup.AssembleTag(tag, r.inner(n, depth), attributes(n.Attrs), false)
	}
}

func renderVoid(tag string) handler {
	return func(r *Renderer, n *doc.Node, depth int) string {
		return markup.AssembleTag(tag, "", attributes(n.Attrs), true)
	}
}

// renderPre handles preformatted and code nodes. A bare string content is
// escaped directly, bypassing text normalization so whitespace survives
// exactly; structured content recurses normally.
func renderPre(tag string) handler {
	return func(r *Renderer, n *doc.Node, depth int) string {
		var inner string
		if s, ok := n.Content.(string); ok {
			inner = markup.EscapeText(s)
			for _, child := range n.Children {
				inner += r.renderNode(child, depth+1)
			}
		} else {
			inner = r.inner(n, depth)
		}
		return markup.AssembleTag(tag, inner, attributes(n.Attrs), false)
	}
}

func renderImage(r *Renderer, n *doc.Node, depth int) string {
	name := imageName(plainContent(n.Content, depth))
	attrs := append([]markup.Attribute{{Key: "src", Value: "images/" + name}}, attributes(n.Attrs)...)
	return markup.AssembleTag("img", "", attrs, true)
}

// imageName reduces an image reference to a bare file name. Directory
// components and dot-dot segments are discarded: escaping alone is not
// sufficient to keep a hostile filename inside the images directory.
func imageName(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\\", "/"))
	s = path.Base(s)
	if s == "." || s == ".." || s == "/" {
		return ""
	}
	return s
}

func renderError(r *Renderer, n *doc.Node, depth int) string {
	msg := r.flatten(n.Content, depth)
	var label string
	if line, ok := n.Attrs.Get("line"); ok && line != nil {
		label = fmt.Sprintf("[ERROR (Line %s): %s]", doc.ValueString(line), msg)
	} else {
		label = fmt.Sprintf("[ERROR: %s]", msg)
	}
	attrs := []markup.Attribute{
		{Key: "class", Value: "render-error"},
		{Key: "style", Value: "color: #c00; font-weight: bold"},
	}
	return markup.AssembleTag("span", label, attrs, false)
}

func renderTOCPlaceholder(r *Renderer, n *doc.Node, depth int) string {
	return TOCMarker
}

func renderHeading(r *Renderer, n *doc.Node, depth int) string {
	level := headingLevel(n)
	inner := r.inner(n, depth)
	r.ids.assign(n, plainContent(n.Content, depth))
	tag := fmt.Sprintf("h%d", level)
	return markup.AssembleTag(tag, inner, attributes(n.Attrs.Without("level")), false)
}

// headingLevel derives the heading level from an hN kind or a level
// attribute, clamped to 1..6.
func headingLevel(n *doc.Node) int {
	level := 1
	if len(n.Kind) == 2 && n.Kind[0] == 'h' && n.Kind[1] >= '1' && n.Kind[1] <= '9' {
		level = int(n.Kind[1] - '0')
	} else if l := n.Attrs.Int("level"); l != 0 {
		level = l
	}
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return level
}

// renderDetails extracts the summary attribute into a nested summary
// element; the attribute itself is excluded from the details tag.
func renderDetails(r *Renderer, n *doc.Node, depth int) string {
	summary := n.Attrs.String("summary")
	if summary == "" {
		summary = "Details"
	}
	inner := markup.AssembleTag("summary", markup.EscapeText(summary), nil, false) + r.inner(n, depth)
	return markup.AssembleTag("details", inner, attributes(n.Attrs.Without("summary")), false)
}

func renderTableCell(r *Renderer, n *doc.Node, depth int) string {
	tag := "td"
	if truthy(n.Attrs, "header") {
		tag = "th"
	}
	return markup.AssembleTag(tag, r.inner(n, depth), attributes(n.Attrs.Without("header")), false)
}

// styleDecorations lists the boolean attributes a styled node may carry
// and the tag each one contributes.
var styleDecorations = []struct {
	attr string
	tag  string
}{
	{"bold", "strong"},
	{"italic", "em"},
	{"underline", "u"},
	{"strike", "s"},
	{"code", "code"},
	{"superscript", "sup"},
	{"subscript", "sub"},
}

// renderStyled wraps content in one tag per active decoration, ordered by
// nesting priority so that simultaneous decorations always nest the same
// way.
func renderStyled(r *Renderer, n *doc.Node, depth int) string {
	inner := r.flatten(n.Content, depth)

	var tags []string
	for _, d := range styleDecorations {
		if truthy(n.Attrs, d.attr) {
			tags = append(tags, d.tag)
		}
	}
	slices.SortStableFunc(tags, func(a, b string) bool {
		return markup.NestingPriority(a) < markup.NestingPriority(b)
	})

	for i := len(tags) - 1; i >= 0; i-- {
		inner = markup.AssembleTag(tags[i], inner, nil, false)
	}
	return inner
}

func truthy(attrs doc.Attrs, key string) bool {
	v, ok := attrs.Get(key)
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != "" && t != "false" && t != "0"
	case int:
		return t != 0
	}
	return true
}

// renderMarkdownContent converts a raw markdown string to HTML. On
// conversion failure the content degrades to an escaped paragraph rather
// than aborting the document.
func renderMarkdownContent(r *Renderer, n *doc.Node, depth int) string {
	s, ok := n.Content.(string)
	if !ok {
		return r.inner(n, depth)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(s), &buf); err != nil {
		logging.Warn("convert markdown content", "error", err)
		return markup.AssembleTag("p", markup.EscapeText(s), nil, false)
	}
	return strings.TrimRight(buf.String(), "\n")
}

var knownKinds = []string{
	"paragraph", "strong", "emphasis", "preformatted", "code", "image",
	"error", "toc_placeholder", "heading", "unordered_list", "ordered_list",
	"list_item", "div", "blockquote", "details", "horizontal_rule",
	"line_break", "link", "table", "table_row", "table_cell", "styled",
	"markdown",
}

// renderUnknown is the generic fallback: any unrecognized kind becomes a
// tag of the same name so its content is never silently dropped.
func renderUnknown(r *Renderer, n *doc.Node, depth int) string {
	logging.Debug("unknown node kind", "kind", n.Kind, "closest", closestKind(n.Kind))
	return markup.AssembleTag(tagName(n.Kind), r.inner(n, depth), attributes(n.Attrs), false)
}

// closestKind names the known kind most similar to an unknown one, to make
// typos in parser output easy to spot in debug logs.
func closestKind(kind string) string {
	jw := metrics.NewJaroWinkler()
	best := ""
	bestScore := 0.0
	for _, k := range knownKinds {
		if score := strutil.Similarity(kind, k, jw); score > bestScore {
			best = k
			bestScore = score
		}
	}
	return best
}

// tagName restricts a kind to characters safe in a tag name.
func tagName(kind string) string {
	out := make([]byte, 0, len(kind))
	for i := 0; i < len(kind); i++ {
		c := kind[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
			out = append(out, c)
		case c == '_':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "span"
	}
	return string(out)
}
