package doc

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a recoverable problem reported by the parser and displayed
// inline in the rendered document rather than aborting the build. The
// renderer consumes diagnostics read-only. HTMLContent is trusted to be
// already escaped by its producer; every other field is escaped before
// embedding.
type Diagnostic struct {
	Line       int
	Severity   Severity
	Title      string
	Message    string
	Suggestion string

	// HTMLContent is optional pre-escaped markup shown in the summary
	// panel.
	HTMLContent string

	// HTMLClass is an optional extra class for the summary entry.
	HTMLClass string
}

// IsError reports whether the diagnostic is an error rather than a warning.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}
