package diag

import (
	"m2l/internal/source"
)

// Report points a diagnostic at a span of source. Its message is printed
// right after the underline.
type Report struct {
	Span    source.Span
	Message string
}

// Diagnostic is one finding. Message is the help text shown below the snippet.
type Diagnostic struct {
	Issue   Issue
	Level   Level
	Message string
	Report  Report
}

// New builds a diagnostic whose level is taken from issue.
func New(issue Issue, message string, report Report) Diagnostic {
	return Diagnostic{
		Issue:   issue,
		Level:   issue.Level(),
		Message: message,
		Report:  report,
	}
}

// At is shorthand for a Report.
func At(span source.Span, message string) Report {
	return Report{Span: span, Message: message}
}
