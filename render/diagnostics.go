package render

import (
	"fmt"
	"strings"

	"github.com/treemark/treemark/doc"
	"github.com/treemark/treemark/markup"
	"github.com/treemark/treemark/text"
)

const (
	iconError   = "&#10008;" // heavy cross
	iconWarning = "&#9888;"  // warning sign
)

// embedDiagnosticMarkers prepends a summary panel and inserts an inline
// marker after the output line each diagnostic refers to. Correlation is
// by rendered output line index, clamped to the body, so an out-of-range
// line number degrades to a marker after the last line instead of being
// lost.
func (r *Renderer) embedDiagnosticMarkers(body string) string {
	if len(r.diagnostics) == 0 {
		return body
	}

	lines := strings.Split(body, "\n")

	markers := make(map[int][]string)
	for _, d := range r.diagnostics {
		line := d.Line
		if line < 1 {
			line = 1
		}
		if line > len(lines) {
			line = len(lines)
		}
		markers[line] = append(markers[line], diagnosticMarker(d))
	}

	buf := new(strings.Builder)
	buf.WriteString(r.diagnosticPanel())
	for i, line := range lines {
		buf.WriteString("\n")
		buf.WriteString(line)
		for _, m := range markers[i+1] {
			buf.WriteString("\n")
			buf.WriteString(m)
		}
	}
	return buf.String()
}

// diagnosticMarker builds the inline marker shown directly below the
// affected output line.
func diagnosticMarker(d doc.Diagnostic) string {
	icon := iconWarning
	class := "diagnostic-warning"
	if d.IsError() {
		icon = iconError
		class = "diagnostic-error"
	}

	inner := icon + " " + markup.AssembleTag("strong", markup.EscapeText(d.Message), nil, false)
	if d.Suggestion != "" {
		inner += " " + markup.AssembleTag("em", markup.EscapeText(d.Suggestion), nil, false)
	}

	attrs := []markup.Attribute{{Key: "class", Value: "diagnostic-marker " + class}}
	return markup.AssembleTag("div", inner, attrs, false)
}

// diagnosticPanel builds the collapsible summary of all diagnostics that
// heads the document.
func (r *Renderer) diagnosticPanel() string {
	var errs, warns int
	for _, d := range r.diagnostics {
		if d.IsError() {
			errs++
		} else {
			warns++
		}
	}

	buf := new(strings.Builder)
	buf.WriteString("<div class=\"diagnostic-summary\">\n<details>\n")
	fmt.Fprintf(buf, "<summary>%d errors, %d warnings</summary>\n<ul>\n", errs, warns)

	for _, d := range r.diagnostics {
		class := "diagnostic-warning"
		if d.IsError() {
			class = "diagnostic-error"
		}
		if d.HTMLClass != "" {
			class += " " + d.HTMLClass
		}

		title := d.Title
		if title == "" {
			title = text.UpperFirst(string(d.Severity))
		}

		fmt.Fprintf(buf, "<li class=\"%s\">", markup.EscapeText(class))
		fmt.Fprintf(buf, "<strong>%s</strong> (%s)", markup.EscapeText(title), markup.EscapeText(string(d.Severity)))
		if d.Line > 0 {
			fmt.Fprintf(buf, " line %d", d.Line)
		}
		if d.Message != "" {
			buf.WriteString(": ")
			buf.WriteString(markup.EscapeText(d.Message))
		}
		if d.HTMLContent != "" {
			// Pre-escaped by its producer, embedded as-is.
			buf.WriteString(" ")
			buf.WriteString(d.HTMLContent)
		}
		buf.WriteString("</li>\n")
	}

	buf.WriteString("</ul>\n</details>\n</div>")
	return buf.String()
}
