package lexer

import (
	"unicode/utf8"

	"m2l/internal/token"
)

// scanOperator matches longest-first: three-byte forms, then two-byte forms,
// then single bytes.
func (s *Scanner) scanOperator() {
	start := s.cursor.Mark()

	switch {
	case s.try3('*', '*', '='):
		s.emit(token.StarStarAssign, start)
		return
	case s.try3('/', '/', '='):
		s.emit(token.SlashSlashAssign, start)
		return
	}

	if kind, ok := s.matchPair(); ok {
		s.emit(kind, start)
		return
	}

	ch := s.cursor.Bump()
	if kind, ok := singleOps[ch]; ok {
		s.emit(kind, start)
		return
	}

	// неизвестный символ: весь UTF-8 символ целиком, одна диагностика
	if ch >= utf8.RuneSelf {
		_, size := utf8.DecodeRune(s.src.Content[start.off:])
		if size > 1 {
			s.cursor.BumpN(size - 1)
		}
	}
	s.errInvalidChar(s.cursor.SpanFrom(start))
}

func (s *Scanner) matchPair() (token.Kind, bool) {
	for _, p := range pairOps {
		if s.try2(p.a, p.b) {
			return p.kind, true
		}
	}
	return token.Invalid, false
}

var pairOps = [...]struct {
	a, b byte
	kind token.Kind
}{
	{'+', '+', token.PlusPlus},
	{'+', '=', token.PlusAssign},
	{'-', '-', token.MinusMinus},
	{'-', '=', token.MinusAssign},
	{'-', '>', token.Arrow},
	{'*', '*', token.StarStar},
	{'*', '=', token.StarAssign},
	{'/', '/', token.SlashSlash},
	{'/', '=', token.SlashAssign},
	{'%', '=', token.PercentAssign},
	{'!', '=', token.BangEq},
	{'=', '=', token.EqEq},
	{'<', '=', token.LtEq},
	{'>', '=', token.GtEq},
	{'|', '|', token.OrOr},
	{'&', '&', token.AndAnd},
}

var singleOps = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'!': token.Bang,
	'=': token.Assign,
	'<': token.Lt,
	'>': token.Gt,
	'|': token.Pipe,
	'&': token.Amp,
	':': token.Colon,
	';': token.Semicolon,
	'.': token.Dot,
	'?': token.Question,
	',': token.Comma,
	'`': token.Backtick,
}
