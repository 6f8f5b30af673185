// Package page wraps a rendered document body in a fixed standalone
// skeleton and resolves table-of-contents placeholders.
package page

import (
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"

	"github.com/treemark/treemark/markup"
	"github.com/treemark/treemark/render"
)

// Assembler builds standalone output documents.
type Assembler struct {
	// Title is the document title. Defaults to "Document".
	Title string

	// Minify minifies assembled HTML output.
	Minify bool
}

const htmlSkeleton = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

// BuildHTML substitutes the body and title into the HTML skeleton and
// replaces any TOC placeholder with a list built from the collected
// headings.
func (a *Assembler) BuildHTML(body string, toc []render.Heading) (string, error) {
	body = strings.ReplaceAll(body, render.TOCMarker, render.TOCHTML(toc))
	out := fmt.Sprintf(htmlSkeleton, markup.EscapeText(a.title()), body)

	if a.Minify {
		m := minify.New()
		m.AddFunc("text/html", mhtml.Minify)
		min, err := m.String("text/html", out)
		if err != nil {
			return "", fmt.Errorf("minify page: %w", err)
		}
		out = min
	}

	return out, nil
}

// BuildMarkdown prefixes the body with a title heading and resolves any
// TOC placeholder to a markdown list.
func (a *Assembler) BuildMarkdown(body string, toc []render.Heading) (string, error) {
	body = strings.ReplaceAll(body, render.TOCMarker, render.TOCMarkdown(toc))
	return "# " + a.title() + "\n\n" + body + "\n", nil
}

func (a *Assembler) title() string {
	if a.Title == "" {
		return "Document"
	}
	return a.Title
}
