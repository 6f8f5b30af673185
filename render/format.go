// Package render converts a document tree into HTML or Markdown text.
package render

import (
	"errors"
	"fmt"

	"github.com/treemark/treemark/doc"
)

// Format selects the output markup.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ErrUnsupportedFormat is returned when a render is requested in a format
// outside the supported set. The call produces no partial output.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat converts a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// MaxDepth is the recursion ceiling for content processing. It is a fixed
// constant, never configurable from document content.
const MaxDepth = 100

// DepthSentinel is returned in place of rendered content when recursion
// exceeds MaxDepth.
const DepthSentinel = "[ERROR: Maximum recursion depth reached]"

// TOCMarker is the fixed comment emitted for toc_placeholder nodes. It is
// resolved by a later pass, see the page package.
const TOCMarker = "<!-- TOC_PLACEHOLDER -->"

// DocumentFormatter is a whole-document format backend. Implementations
// are expected to build on the renderer's per-node capabilities so that
// delegating a node list to the formatter and rendering the nodes one by
// one produce equivalent output.
type DocumentFormatter interface {
	FormatDocument(r *Renderer, nodes []*doc.Node) (string, error)
}
