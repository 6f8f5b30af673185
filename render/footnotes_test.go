package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/treemark/treemark/doc"
)

func TestFootnoteSubstitution(t *testing.T) {
	fns := &doc.FootnoteSet{}
	fns.Add("the first note")

	r := New(Options{})
	r.SetFootnoteData(fns)

	nodes := []*doc.Node{doc.New("p", "claim [FOOTNOTE_REF_1] made")}
	out, err := r.Render(nodes, FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(out, "[FOOTNOTE_REF_1]") {
		t.Errorf("placeholder not substituted:\n%s", out)
	}
	for _, want := range []string{
		`<sup class="footnote-ref" id="fnref-1"><a href="#fn-1">[1]</a></sup>`,
		`<div class="footnotes">`,
		`<li id="fn-1">the first note`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFootnoteNoSourceLeavesPlaceholder(t *testing.T) {
	r := New(Options{})
	nodes := []*doc.Node{doc.New("p", "claim [FOOTNOTE_REF_1]")}

	out, err := r.Render(nodes, FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "[FOOTNOTE_REF_1]") {
		t.Errorf("placeholder should survive with no footnote source:\n%s", out)
	}
}

type failingFootnotes struct{}

func (failingFootnotes) Footnotes() []doc.Footnote {
	return []doc.Footnote{{Number: 1, Content: "x"}}
}

func (failingFootnotes) FootnotesHTML(fns []doc.Footnote) (string, error) {
	return "", errors.New("boom")
}

func TestFootnoteGenerationFailureFallsBack(t *testing.T) {
	r := New(Options{})
	r.SetFootnoteData(failingFootnotes{})

	nodes := []*doc.Node{doc.New("p", "claim [FOOTNOTE_REF_1]")}
	out, err := r.Render(nodes, FormatHTML)
	if err != nil {
		t.Fatalf("generation failure must be non-fatal: %v", err)
	}
	if !strings.Contains(out, "[FOOTNOTE_REF_1]") {
		t.Errorf("body should fall back to unsubstituted form:\n%s", out)
	}
	if strings.Contains(out, "footnote-ref") {
		t.Errorf("partial substitution leaked into output:\n%s", out)
	}
}

func TestFootnoteMultipleRefs(t *testing.T) {
	fns := &doc.FootnoteSet{}
	fns.Add("note one")
	fns.Add("note two")

	r := New(Options{})
	r.SetFootnoteData(fns)

	nodes := []*doc.Node{doc.New("p", "a [FOOTNOTE_REF_1] b [FOOTNOTE_REF_2]")}
	out, err := r.Render(nodes, FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{`href="#fn-1"`, `href="#fn-2"`, `id="fn-1"`, `id="fn-2"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
