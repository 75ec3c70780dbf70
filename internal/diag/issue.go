package diag

import (
	"fmt"
)

// Level is the severity of a diagnostic. It is derived from the Issue.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	// LevelInfo exists for completeness; no Issue maps to it yet.
	LevelInfo
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warning"
	case LevelInfo:
		return "info"
	}
	return "unknown"
}

// Issue identifies what went wrong.
type Issue uint16

const (
	// Внутренние
	IssueInternal        Issue = 1
	IssueInternalWarning Issue = 2

	// Лексические
	IssueInvalidChar   Issue = 1001
	IssueInvalidString Issue = 1002

	// Синтаксические
	IssueInvalidSyntax      Issue = 2001
	IssueExpectedExpression Issue = 2002
	IssueUnclosedDelimiter  Issue = 2003
	IssueTrailingInput      Issue = 2004
)

var issueNames = map[Issue]string{
	IssueInternal:           "internal compiler error",
	IssueInternalWarning:    "internal compiler warning",
	IssueInvalidChar:        "invalid character",
	IssueInvalidString:      "invalid string",
	IssueInvalidSyntax:      "invalid syntax",
	IssueExpectedExpression: "expected expression",
	IssueUnclosedDelimiter:  "unclosed delimiter",
	IssueTrailingInput:      "unexpected trailing input",
}

// Level returns the fixed severity of the issue.
func (i Issue) Level() Level {
	if i == IssueInternalWarning {
		return LevelWarn
	}
	return LevelError
}

// ID returns the stable code, e.g. LEX1001.
func (i Issue) ID() string {
	switch n := int(i); {
	case n < 1000:
		return fmt.Sprintf("INT%04d", n)
	case n < 2000:
		return fmt.Sprintf("LEX%04d", n)
	case n < 3000:
		return fmt.Sprintf("SYN%04d", n)
	}
	return "E0000"
}

// String returns the human-readable issue name.
func (i Issue) String() string {
	if name, ok := issueNames[i]; ok {
		return name
	}
	return fmt.Sprintf("issue %d", uint16(i))
}
