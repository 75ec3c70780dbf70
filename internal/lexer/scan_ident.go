package lexer

import (
	"m2l/internal/token"
)

func (s *Scanner) scanSymbol() {
	start := s.cursor.Mark()
	for isSymbolContinue(s.cursor.Peek()) {
		s.cursor.Bump()
	}
	if kw, ok := token.LookupKeywordBytes(s.src.Content[start.off:s.cursor.Off]); ok {
		s.emit(kw, start)
		return
	}
	s.emit(token.Symbol, start)
}
