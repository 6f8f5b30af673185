package render

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/treemark/treemark/doc"
	"github.com/treemark/treemark/markup"
)

// IDStyle selects how ids are derived for headings that lack one.
type IDStyle int

const (
	// IDStyleCounter derives heading-<n> from a monotonically increasing
	// counter. The default.
	IDStyleCounter IDStyle = iota

	// IDStyleSlug derives the id from the heading text, with a numeric
	// suffix on collision.
	IDStyleSlug
)

// idAssigner is the single source of heading ids. Both the body render and
// the heading collection walk go through it, and a generated id is written
// back onto the node, so the two walks cannot disagree on the id a heading
// ends up with.
type idAssigner struct {
	style   IDStyle
	counter int
	seen    map[string]int
}

// assign returns the id for a heading node. A pre-existing id attribute is
// reused verbatim and never overwritten; otherwise an id is derived and
// persisted onto the node. This write-back is the renderer's one
// sanctioned mutation of the tree.
func (a *idAssigner) assign(n *doc.Node, headingText string) string {
	if v, ok := n.Attrs.Get("id"); ok && v != nil {
		return doc.ValueString(v)
	}

	var id string
	if a.style == IDStyleSlug && strings.TrimSpace(headingText) != "" {
		id = slug.Make(headingText)
		if a.seen == nil {
			a.seen = make(map[string]int)
		}
		a.seen[id]++
		if c := a.seen[id]; c > 1 {
			id = fmt.Sprintf("%s-%d", id, c)
		}
	} else {
		a.counter++
		id = fmt.Sprintf("heading-%d", a.counter)
	}

	n.Attrs.Set("id", id)
	return id
}

func (a *idAssigner) reset() {
	a.counter = 0
	a.seen = nil
}

// Heading is one table-of-contents entry.
type Heading struct {
	Level int
	Text  string
	ID    string
}

// CollectHeadings walks the tree and returns a table-of-contents entry for
// every heading, without producing markup. Ids are assigned through the
// same assigner the body render uses, so TOC links always resolve to ids
// present in the rendered body regardless of which pass runs first.
func (r *Renderer) CollectHeadings(nodes []*doc.Node) []Heading {
	var out []Heading
	for _, n := range nodes {
		r.collectNode(n, 0, &out)
	}
	return out
}

func (r *Renderer) collectNode(n *doc.Node, depth int, out *[]Heading) {
	if n == nil || depth > MaxDepth {
		return
	}

	if isHeadingKind(n.Kind) {
		text := plainContent(n.Content, depth)
		id := r.ids.assign(n, text)
		*out = append(*out, Heading{Level: headingLevel(n), Text: text, ID: id})
	}

	r.collectContent(n.Content, depth+1, out)
	for _, child := range n.Children {
		r.collectNode(child, depth+1, out)
	}
}

func (r *Renderer) collectContent(content any, depth int, out *[]Heading) {
	if depth > MaxDepth {
		return
	}
	switch c := content.(type) {
	case *doc.Node:
		r.collectNode(c, depth, out)
	case []any:
		for _, item := range c {
			r.collectContent(item, depth+1, out)
		}
	case []*doc.Node:
		for _, n := range c {
			r.collectNode(n, depth, out)
		}
	}
}

func isHeadingKind(kind string) bool {
	switch kind {
	case "heading", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// TOCHTML renders collected headings as a nested list.
func TOCHTML(entries []Heading) string {
	if len(entries) == 0 {
		return ""
	}

	buf := new(strings.Builder)
	buf.WriteString("<nav class=\"toc\">\n")

	level := 0
	for _, e := range entries {
		for level < e.Level {
			buf.WriteString("<ul>\n")
			level++
		}
		for level > e.Level {
			buf.WriteString("</ul>\n")
			level--
		}
		fmt.Fprintf(buf, "<li><a href=\"#%s\">%s</a></li>\n", markup.EscapeText(e.ID), markup.EscapeText(e.Text))
	}
	for level > 0 {
		buf.WriteString("</ul>\n")
		level--
	}

	buf.WriteString("</nav>")
	return buf.String()
}

// TOCMarkdown renders collected headings as an indented markdown list.
func TOCMarkdown(entries []Heading) string {
	if len(entries) == 0 {
		return ""
	}

	minLevel := entries[0].Level
	for _, e := range entries {
		if e.Level < minLevel {
			minLevel = e.Level
		}
	}

	buf := new(strings.Builder)
	for i, e := range entries {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(strings.Repeat("  ", e.Level-minLevel))
		fmt.Fprintf(buf, "- [%s](#%s)", e.Text, e.ID)
	}
	return buf.String()
}
