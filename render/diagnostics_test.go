package render

import (
	"strings"
	"testing"

	"github.com/treemark/treemark/doc"
)

func threeLineBody() []*doc.Node {
	return []*doc.Node{
		doc.New("p", "one"),
		doc.New("p", "two"),
		doc.New("p", "three"),
	}
}

func TestDiagnosticMarkerPlacement(t *testing.T) {
	r := New(Options{})
	r.SetGracefulErrors([]doc.Diagnostic{
		{Line: 2, Severity: doc.SeverityWarning, Message: "maybe wrong"},
	}, true)

	out, err := r.Render(threeLineBody(), FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(out, "\n")
	idx := -1
	for i, l := range lines {
		if l == "<p>two</p>" {
			idx = i
			break
		}
	}
	if idx == -1 {
		t.Fatalf("output line 2 missing:\n%s", out)
	}
	if idx+1 >= len(lines) || !strings.HasPrefix(lines[idx+1], `<div class="diagnostic-marker diagnostic-warning">`) {
		t.Errorf("marker not directly after line 2:\n%s", out)
	}
	if !strings.Contains(out, "maybe wrong") {
		t.Errorf("marker message missing:\n%s", out)
	}
}

func TestDiagnosticSummaryPanel(t *testing.T) {
	r := New(Options{})
	r.SetGracefulErrors([]doc.Diagnostic{
		{Line: 1, Severity: doc.SeverityError, Title: "Bad <input>", Message: "broken"},
		{Line: 3, Severity: doc.SeverityWarning, Message: "iffy", Suggestion: "try this"},
	}, true)

	out, err := r.Render(threeLineBody(), FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.HasPrefix(out, `<div class="diagnostic-summary">`) {
		t.Errorf("summary panel should lead the document:\n%s", out)
	}
	for _, want := range []string{
		"<summary>1 errors, 1 warnings</summary>",
		"Bad &lt;input&gt;",
		"<em>try this</em>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDiagnosticPreEscapedContentTrusted(t *testing.T) {
	r := New(Options{})
	r.SetGracefulErrors([]doc.Diagnostic{
		{Line: 1, Severity: doc.SeverityError, Message: "m", HTMLContent: "<code>snippet</code>"},
	}, true)

	out, err := r.Render(threeLineBody(), FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<code>snippet</code>") {
		t.Errorf("pre-escaped html content should be embedded as-is:\n%s", out)
	}
}

func TestDiagnosticLineClamped(t *testing.T) {
	r := New(Options{})
	r.SetGracefulErrors([]doc.Diagnostic{
		{Line: 99, Severity: doc.SeverityWarning, Message: "past the end"},
		{Line: 0, Severity: doc.SeverityWarning, Message: "before the start"},
	}, true)

	out, err := r.Render(threeLineBody(), FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(out, "diagnostic-marker") != 2 {
		t.Errorf("out-of-range diagnostics should be clamped, not dropped:\n%s", out)
	}
}

func TestDiagnosticsNotEmbeddedWhenDisabled(t *testing.T) {
	r := New(Options{})
	r.SetGracefulErrors([]doc.Diagnostic{
		{Line: 1, Severity: doc.SeverityError, Message: "hidden"},
	}, false)

	out, err := r.Render(threeLineBody(), FormatHTML)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "diagnostic") {
		t.Errorf("diagnostics embedded despite being disabled:\n%s", out)
	}
}
