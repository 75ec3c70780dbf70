package lexer

func isSymbolStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isSymbolContinue(b byte) bool {
	return isSymbolStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// try2/try3 consume the next 2/3 bytes when they match.
func (s *Scanner) try3(a, b, c byte) bool {
	if s.cursor.PeekAt(0) != a || s.cursor.PeekAt(1) != b || s.cursor.PeekAt(2) != c {
		return false
	}
	s.cursor.BumpN(3)
	return true
}

func (s *Scanner) try2(a, b byte) bool {
	if s.cursor.PeekAt(0) != a || s.cursor.PeekAt(1) != b {
		return false
	}
	s.cursor.BumpN(2)
	return true
}
