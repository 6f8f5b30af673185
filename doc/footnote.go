package doc

import (
	"fmt"
	"strings"
)

// Footnote is a single numbered footnote. Content is rendered markup
// produced by the same pipeline as the document body.
type Footnote struct {
	Number  int
	Content string
}

// FootnoteSource supplies the footnotes referenced by [FOOTNOTE_REF_n]
// placeholders in rendered text and generates the trailing footnotes block.
type FootnoteSource interface {
	Footnotes() []Footnote
	FootnotesHTML(footnotes []Footnote) (string, error)
}

// FootnoteSet is the default FootnoteSource, an ordered in-memory list.
type FootnoteSet struct {
	notes []Footnote
}

var _ FootnoteSource = (*FootnoteSet)(nil)

// Add appends a footnote with the next number and returns that number.
func (s *FootnoteSet) Add(content string) int {
	n := len(s.notes) + 1
	s.notes = append(s.notes, Footnote{Number: n, Content: content})
	return n
}

// Footnotes returns the footnotes in order of addition.
func (s *FootnoteSet) Footnotes() []Footnote {
	return s.notes
}

// FootnotesHTML builds the trailing footnotes block. Each entry carries an
// anchor matching the links substituted into the body and a backlink to the
// first reference.
func (s *FootnoteSet) FootnotesHTML(footnotes []Footnote) (string, error) {
	if len(footnotes) == 0 {
		return "", nil
	}

	buf := new(strings.Builder)
	buf.WriteString("<div class=\"footnotes\">\n")
	buf.WriteString("<hr />\n")
	buf.WriteString("<ol>\n")
	for _, fn := range footnotes {
		if fn.Number < 1 {
			return "", fmt.Errorf("footnote with invalid number %d", fn.Number)
		}
		fmt.Fprintf(buf, "<li id=\"fn-%d\">%s <a href=\"#fnref-%[1]d\" class=\"footnote-backref\">&#8617;</a></li>\n", fn.Number, fn.Content)
	}
	buf.WriteString("</ol>\n")
	buf.WriteString("</div>\n")

	return buf.String(), nil
}
