package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treemark/treemark/doc"
)

func headingTree() []*doc.Node {
	return []*doc.Node{
		doc.New("h1", "Intro"),
		doc.New("p", "text"),
		doc.New("div", nil).WithChildren(
			doc.New("h2", "Nested"),
		),
		doc.New("heading", "Deep").WithAttr("level", 3),
	}
}

func TestHeadingIDAssignment(t *testing.T) {
	r := New(Options{})

	out, err := r.Render([]*doc.Node{doc.New("h2", "Title")}, FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<h2 id="heading-1">Title</h2>`
	if out != want {
		t.Errorf("got %s, want %s", out, want)
	}
	if r.ids.counter != 1 {
		t.Errorf("counter = %d, want 1", r.ids.counter)
	}
}

func TestHeadingExistingIDReused(t *testing.T) {
	r := New(Options{})
	nodes := []*doc.Node{
		doc.New("h2", "First").WithAttr("id", "intro"),
		doc.New("h2", "Second"),
	}

	out, err := r.Render(nodes, FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `<h2 id="intro">First</h2>`) {
		t.Errorf("existing id not reused verbatim: %s", out)
	}
	if !strings.Contains(out, `<h2 id="heading-1">Second</h2>`) {
		t.Errorf("generated id should not be advanced by explicit ids: %s", out)
	}
}

func TestHeadingIDStability(t *testing.T) {
	// Two identically built trees rendered with a counter reset in between
	// must receive identical ids in identical order.
	r := New(Options{})

	first, err := r.Render(headingTree(), FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	r.ResetCounters()
	second, err := r.Render(headingTree(), FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("render mismatch after reset (-first +second):\n%s", diff)
	}
}

func TestCollectHeadings(t *testing.T) {
	r := New(Options{})
	got := r.CollectHeadings(headingTree())

	want := []Heading{
		{Level: 1, Text: "Intro", ID: "heading-1"},
		{Level: 2, Text: "Nested", ID: "heading-2"},
		{Level: 3, Text: "Deep", ID: "heading-3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CollectHeadings mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectAgreesWithRender(t *testing.T) {
	// The TOC must link to ids actually present in the body no matter
	// which pass runs first.
	for _, order := range []string{"collect-first", "render-first"} {
		t.Run(order, func(t *testing.T) {
			r := New(Options{})
			nodes := headingTree()

			var body string
			var headings []Heading
			var err error
			if order == "collect-first" {
				headings = r.CollectHeadings(nodes)
				body, err = r.Render(nodes, FormatHTML)
			} else {
				body, err = r.Render(nodes, FormatHTML)
				headings = r.CollectHeadings(nodes)
			}
			if err != nil {
				t.Fatalf("render: %v", err)
			}

			for _, h := range headings {
				anchor := fmt.Sprintf(`id="%s"`, h.ID)
				if !strings.Contains(body, anchor) {
					t.Errorf("collected id %s missing from body:\n%s", h.ID, body)
				}
			}
		})
	}
}

func TestSlugIDStyle(t *testing.T) {
	r := New(Options{IDStyle: IDStyleSlug})
	nodes := []*doc.Node{
		doc.New("h2", "Hello World"),
		doc.New("h2", "Hello World"),
	}

	got := r.CollectHeadings(nodes)
	want := []Heading{
		{Level: 2, Text: "Hello World", ID: "hello-world"},
		{Level: 2, Text: "Hello World", ID: "hello-world-2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("slug ids mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadingLevelClamped(t *testing.T) {
	testCases := []struct {
		node *doc.Node
		want int
	}{
		{doc.New("heading", "x").WithAttr("level", 9), 6},
		{doc.New("heading", "x").WithAttr("level", -1), 1},
		{doc.New("h4", "x"), 4},
		{doc.New("heading", "x"), 1},
	}

	for _, tc := range testCases {
		if got := headingLevel(tc.node); got != tc.want {
			t.Errorf("headingLevel(%s level=%v) = %d, want %d", tc.node.Kind, tc.node.Attrs.String("level"), got, tc.want)
		}
	}
}

func TestTOCHTML(t *testing.T) {
	entries := []Heading{
		{Level: 1, Text: "One", ID: "heading-1"},
		{Level: 2, Text: "Two <b>", ID: "heading-2"},
		{Level: 1, Text: "Three", ID: "heading-3"},
	}

	got := TOCHTML(entries)
	for _, want := range []string{
		`<nav class="toc">`,
		`<a href="#heading-1">One</a>`,
		`<a href="#heading-2">Two &lt;b&gt;</a>`,
		`<a href="#heading-3">Three</a>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TOCHTML missing %q:\n%s", want, got)
		}
	}

	if strings.Count(got, "<ul>") != strings.Count(got, "</ul>") {
		t.Errorf("unbalanced lists:\n%s", got)
	}
}
