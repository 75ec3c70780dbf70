package lexer

import (
	"errors"

	"m2l/internal/diag"
	"m2l/internal/source"
	"m2l/internal/token"
)

// ErrInvalidInput is returned by New when a collaborator is missing or unusable.
var ErrInvalidInput = errors.New("lexer: invalid scanner input")

// Scanner turns a Source into a token list, reporting lexical errors into a
// diagnostic engine. A Scanner is single-use: Scan poisons it.
type Scanner struct {
	src    *source.Source
	cursor Cursor
	tokens *token.List
	diags  *diag.Engine

	scanning bool
	success  bool
}

// New prepares a scanner over src that appends into tokens and diags.
func New(src *source.Source, diags *diag.Engine, tokens *token.List) (*Scanner, error) {
	if src == nil || !diags.IsValid() || !tokens.IsValid() {
		return nil, ErrInvalidInput
	}
	return &Scanner{
		src:      src,
		cursor:   NewCursor(src),
		tokens:   tokens,
		diags:    diags,
		scanning: true,
		success:  true,
	}, nil
}

// IsValid reports whether Scan can still run.
func (s *Scanner) IsValid() bool {
	return s != nil && s.src != nil && s.tokens.IsValid() && s.diags.IsValid()
}

// Scan tokenizes the whole source. It reports true iff no error-level
// diagnostic was raised. The last token pushed is always EOF unless the token
// list itself failed.
func (s *Scanner) Scan() bool {
	if !s.IsValid() {
		return false
	}
	for s.scanning {
		s.next()
	}
	ok := s.success
	*s = Scanner{}
	return ok
}

func (s *Scanner) next() {
	s.skipWhitespace()

	if s.cursor.EOF() {
		s.emit(token.EOF, s.cursor.Mark())
		s.scanning = false
		return
	}

	ch := s.cursor.Peek()
	switch {
	case isSymbolStart(ch):
		s.scanSymbol()
	case isDigit(ch):
		s.scanNumber()
	case ch == '"':
		s.scanString()
	default:
		s.scanOperator()
	}
}

func (s *Scanner) skipWhitespace() {
	for !s.cursor.EOF() {
		switch s.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			s.cursor.Bump()
		default:
			return
		}
	}
}

// emit pushes a token spanning from m to the cursor.
func (s *Scanner) emit(kind token.Kind, m Mark) {
	tok := token.Token{Kind: kind, Span: s.cursor.SpanFrom(m)}
	if s.tokens.Push(tok).Succeeded() {
		return
	}
	s.report(diag.IssueInternal, tok.Span, "", "failed to store token")
	s.scanning = false
}
