package parser

import (
	"slices"

	"m2l/internal/token"
)

// get returns the token k positions past the cursor, clamped to the last
// token. The result is always a real token, normally EOF at the end.
func (p *Parser) get(k int) token.Token {
	n := p.tokens.Len()
	i := p.cursor + k
	if i >= n {
		i = n - 1
	}
	tok, _ := p.tokens.At(i)
	return tok
}

// advance moves the cursor k tokens forward, never past the token count.
func (p *Parser) advance(k int) {
	p.cursor = min(p.cursor+k, p.tokens.Len())
}

// next consumes and returns the current token.
func (p *Parser) next() token.Token {
	tok := p.get(0)
	p.advance(1)
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.get(0).Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.get(0).Kind)
}

// skipToBoundary drops tokens up to the next `;` or EOF, leaving it unconsumed.
func (p *Parser) skipToBoundary() {
	for !p.atAny(token.Semicolon, token.EOF) {
		p.advance(1)
	}
}
