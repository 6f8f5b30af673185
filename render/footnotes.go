package render

import (
	"regexp"

	"github.com/treemark/treemark/logging"
)

var footnoteRefPattern = regexp.MustCompile(`\[FOOTNOTE_REF_(\d+)\]`)

// substituteFootnotes replaces [FOOTNOTE_REF_n] placeholders in rendered
// text with anchor-linked superscripts and appends the trailing footnotes
// block when the source reports any. A generation failure is logged and
// the body falls back to its unsubstituted form.
func (r *Renderer) substituteFootnotes(body string) string {
	if r.footnotes == nil {
		return body
	}

	replaced := footnoteRefPattern.ReplaceAllString(body,
		`<sup class="footnote-ref" id="fnref-$1"><a href="#fn-$1">[$1]</a></sup>`)

	notes := r.footnotes.Footnotes()
	if len(notes) == 0 {
		return replaced
	}

	block, err := r.footnotes.FootnotesHTML(notes)
	if err != nil {
		logging.Warn("generate footnotes", "error", err)
		return body
	}
	if block == "" {
		return replaced
	}
	return replaced + "\n" + block
}
