package render

import (
	"fmt"
	"strings"

	"github.com/treemark/treemark/doc"
)

// Options configures a Renderer.
type Options struct {
	// IDStyle selects how generated heading ids are derived.
	IDStyle IDStyle
}

// Renderer converts document trees to HTML or Markdown. It is stateless
// per call apart from the heading id assigner and the per-kind handler
// cache, both of which ResetCounters restores; renders of independent
// documents through one instance must be separated by a reset, and
// concurrent use of a single instance needs external synchronization.
type Renderer struct {
	ids        idAssigner
	handlers   map[string]handler
	formatters map[Format]DocumentFormatter

	diagnostics      []doc.Diagnostic
	embedDiagnostics bool
	footnotes        doc.FootnoteSource
}

// New returns a renderer with the default format backends registered.
func New(opts Options) *Renderer {
	r := &Renderer{
		ids: idAssigner{style: opts.IDStyle},
	}
	r.formatters = map[Format]DocumentFormatter{
		FormatHTML:     htmlFormatter{},
		FormatMarkdown: markdownFormatter{},
	}
	return r
}

// SetFormatter replaces the whole-document backend for a format.
func (r *Renderer) SetFormatter(f Format, df DocumentFormatter) {
	r.formatters[f] = df
}

// SetGracefulErrors supplies parser diagnostics to display. When embed is
// true the HTML output gains a summary panel and inline per-line markers.
func (r *Renderer) SetGracefulErrors(diagnostics []doc.Diagnostic, embed bool) {
	r.diagnostics = diagnostics
	r.embedDiagnostics = embed
}

// SetFootnoteData supplies the source used to resolve [FOOTNOTE_REF_n]
// placeholders and generate the trailing footnotes block.
func (r *Renderer) SetFootnoteData(src doc.FootnoteSource) {
	r.footnotes = src
}

// ResetCounters restores the renderer's per-document state: the heading
// counter and the handler cache. Call it between independent documents.
func (r *Renderer) ResetCounters() {
	r.ids.reset()
	r.handlers = nil
}

// Render converts nodes to a single document string in the requested
// format by delegating to the registered whole-document backend, then
// applies footnote substitution and diagnostic embedding.
func (r *Renderer) Render(nodes []*doc.Node, format Format) (string, error) {
	df, ok := r.formatters[format]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	body, err := df.FormatDocument(r, nodes)
	if err != nil {
		return "", fmt.Errorf("format document: %w", err)
	}

	return r.postprocess(body, format), nil
}

// RenderNodes is the per-node strategy: each node rendered to HTML
// independently. Joining the results with newlines yields the same body
// the whole-document HTML backend produces.
func (r *Renderer) RenderNodes(nodes []*doc.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = r.renderNode(n, 0)
	}
	return out
}

// RenderOptimized is the alternate HTML pipeline: per-kind handler lookups
// are cached and output accumulates in one append-only builder. It is
// behaviorally equivalent to Render with FormatHTML.
func (r *Renderer) RenderOptimized(nodes []*doc.Node) (string, error) {
	buf := new(strings.Builder)
	for i, n := range nodes {
		if i > 0 {
			buf.WriteString("\n")
		}
		if n == nil {
			continue
		}
		buf.WriteString(r.cachedHandler(n.Kind)(r, n, 0))
	}
	return r.postprocess(buf.String(), FormatHTML), nil
}

func (r *Renderer) cachedHandler(kind string) handler {
	if h, ok := r.handlers[kind]; ok {
		return h
	}
	h := kindHandler(kind)
	if r.handlers == nil {
		r.handlers = make(map[string]handler)
	}
	r.handlers[kind] = h
	return h
}

// postprocess applies footnote substitution and, for HTML output,
// diagnostic embedding. Failures in either step are logged and degrade to
// the unprocessed body; they never abort the render.
func (r *Renderer) postprocess(body string, format Format) string {
	body = r.substituteFootnotes(body)
	if format == FormatHTML && r.embedDiagnostics {
		body = r.embedDiagnosticMarkers(body)
	}
	return body
}

type htmlFormatter struct{}

func (htmlFormatter) FormatDocument(r *Renderer, nodes []*doc.Node) (string, error) {
	return strings.Join(r.RenderNodes(nodes), "\n"), nil
}
