package lexer

import (
	"m2l/internal/token"
)

// scanNumber reads digits and '_' separators. A '.' makes the literal a
// float only when a digit follows it, so "5.foo" stays Int, Dot, Symbol.
func (s *Scanner) scanNumber() {
	start := s.cursor.Mark()
	kind := token.IntLit

	s.eatDigits()
	if s.cursor.Peek() == '.' && isDigit(s.cursor.PeekAt(1)) {
		kind = token.FloatLit
		s.cursor.Bump()
		s.eatDigits()
	}
	s.emit(kind, start)
}

func (s *Scanner) eatDigits() {
	for {
		b := s.cursor.Peek()
		if !isDigit(b) && b != '_' {
			return
		}
		s.cursor.Bump()
	}
}
