package lexer

import (
	"m2l/internal/source"
	"m2l/internal/token"
)

// scanString reads a double-quoted literal; the token includes both quotes.
// There are no escape sequences. Hitting the end of input reports the
// opening quote and drops the token.
func (s *Scanner) scanString() {
	start := s.cursor.Mark()
	s.cursor.Bump() // opening quote

	for !s.cursor.EOF() {
		if s.cursor.Bump() == '"' {
			s.emit(token.StringLit, start)
			return
		}
	}

	s.errUnterminatedString(source.NewSpan(s.src, start.off, 1, start.line, start.col))
	s.cursor.Bump()
}
