package lexer

import (
	"m2l/internal/diag"
	"m2l/internal/source"
)

func (s *Scanner) report(issue diag.Issue, span source.Span, label, help string) {
	if issue.Level() == diag.LevelError {
		s.success = false
	}
	s.diags.Report(issue, span, label, help)
}

func (s *Scanner) errInvalidChar(span source.Span) {
	s.report(diag.IssueInvalidChar, span, "", "this character is not recognized")
}

func (s *Scanner) errUnterminatedString(span source.Span) {
	s.report(diag.IssueInvalidString, span, "string starts here", `this string literal is missing a closing '"'`)
}
