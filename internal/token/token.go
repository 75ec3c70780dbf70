package token

import (
	"fmt"

	"m2l/internal/source"
)

// Token is an immutable (kind, span) pair.
type Token struct {
	Kind Kind
	Span source.Span
}

// Lexeme returns the source text of the token, or `\0` for EOF.
func (t Token) Lexeme() string {
	if t.Kind == EOF {
		return `\0`
	}
	return t.Span.Text()
}

// Text returns the token's bytes as a non-owning view.
func (t Token) Text() source.Substring {
	return t.Span.Substring()
}

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// String renders the token as `[path:line:col] KIND 'lexeme'`.
func (t Token) String() string {
	return fmt.Sprintf("[%s] %s '%s'", t.Span, t.Kind, t.Lexeme())
}
