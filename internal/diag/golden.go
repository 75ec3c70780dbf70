package diag

import (
	"fmt"
	"io"
	"strings"
)

// FormatShort writes one line per diagnostic in emission order:
//
//	error LEX1001 path:line:col: help message
//
// It is meant for golden tests and terse CLI output.
func FormatShort(w io.Writer, e *Engine) error {
	for _, d := range e.All() {
		if _, err := fmt.Fprintf(w, "%s %s %s: %s\n", d.Level, d.Issue.ID(), d.Report.Span, sanitizeMessage(d.Message)); err != nil {
			return err
		}
	}
	return nil
}

// ShortString is FormatShort into a string.
func ShortString(e *Engine) string {
	var b strings.Builder
	if err := FormatShort(&b, e); err != nil {
		return ""
	}
	return b.String()
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
