package parser

import (
	"errors"
	"strconv"
	"strings"

	"m2l/internal/ast"
	"m2l/internal/source"
	"m2l/internal/token"
)

// atom parses a literal, a symbol or a parenthesised group. On anything else
// it reports, skips one token and yields the null id.
func (p *Parser) atom() ast.ExprID {
	tok := p.get(0)
	switch tok.Kind {
	case token.IntLit:
		p.advance(1)
		return p.intLiteral(tok)
	case token.FloatLit:
		p.advance(1)
		return p.floatLiteral(tok)
	case token.StringLit:
		p.advance(1)
		return p.stringLiteral(tok)
	case token.KwTrue, token.KwFalse:
		p.advance(1)
		return p.tree.NewBool(tok.Span, tok.Kind == token.KwTrue)
	case token.Symbol:
		p.advance(1)
		name := tok.Text()
		if name.IsNull() {
			p.errInternal(tok.Span, "symbol token has no text")
			return ast.NoExprID
		}
		return p.tree.NewSymbol(tok.Span, name)
	case token.LParen:
		return p.group()
	}
	p.errExpected(tok)
	p.advance(1)
	return ast.NoExprID
}

func (p *Parser) group() ast.ExprID {
	lparen := p.next()
	inner := p.expression()
	if !inner.IsValid() {
		return ast.NoExprID
	}
	if !p.at(token.RParen) {
		p.errUnclosed(lparen, p.get(0))
		return ast.NoExprID
	}
	p.advance(1)
	return inner
}

// digits returns the literal text with `_` separators removed.
func (p *Parser) digits(tok token.Token) (string, bool) {
	text := tok.Text()
	if text.IsNull() {
		p.errInternal(tok.Span, "numeric token has no text")
		return "", false
	}
	s := strings.ReplaceAll(text.String(), "_", "")
	if s == "" {
		p.errInternal(tok.Span, "numeric literal has no digits")
		return "", false
	}
	return s, true
}

func (p *Parser) intLiteral(tok token.Token) ast.ExprID {
	s, ok := p.digits(tok)
	if !ok {
		return ast.NoExprID
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.errNumber(tok.Span, err)
		return ast.NoExprID
	}
	return p.tree.NewInt(tok.Span, v)
}

func (p *Parser) floatLiteral(tok token.Token) ast.ExprID {
	s, ok := p.digits(tok)
	if !ok {
		return ast.NoExprID
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.errNumber(tok.Span, err)
		return ast.NoExprID
	}
	return p.tree.NewFloat(tok.Span, v)
}

// stringLiteral stores the text between the quotes. An empty literal has a
// null value.
func (p *Parser) stringLiteral(tok token.Token) ast.ExprID {
	if tok.Span.Length < 2 || tok.Text().IsNull() {
		p.errInternal(tok.Span, "string token is not quoted")
		return ast.NoExprID
	}
	inner := source.Span{
		Src:    tok.Span.Src,
		Offset: tok.Span.Offset + 1,
		Length: tok.Span.Length - 2,
		Line:   tok.Span.Line,
		Col:    tok.Span.Col + 1,
	}
	return p.tree.NewStr(tok.Span, inner.Substring())
}

func (p *Parser) errNumber(span source.Span, err error) {
	switch {
	case errors.Is(err, strconv.ErrRange):
		p.errInternal(span, "numeric literal is out of range")
	case errors.Is(err, strconv.ErrSyntax):
		p.errInternal(span, "numeric literal has trailing characters")
	default:
		p.errInternal(span, err.Error())
	}
}
