package parser

import (
	"errors"

	"m2l/internal/ast"
	"m2l/internal/diag"
	"m2l/internal/source"
	"m2l/internal/token"
)

var (
	// ErrInvalidInput is returned by New when a collaborator is nil or destroyed.
	ErrInvalidInput = errors.New("parser: invalid input")
	// ErrNoTokens is returned by New for an empty token list; a scanned
	// stream always ends with EOF.
	ErrNoTokens = errors.New("parser: empty token list")
)

// Parser: рекурсивный спуск по готовому списку токенов.
// One Parser serves one token list and is not safe for concurrent use.
type Parser struct {
	src    *source.Source
	tokens *token.List
	diags  *diag.Engine
	tree   *ast.Tree
	cursor int
	depth  int
}

// New binds a parser to its collaborators. All of them must outlive it.
func New(src *source.Source, tokens *token.List, diags *diag.Engine, tree *ast.Tree) (*Parser, error) {
	if src == nil || !tokens.IsValid() || !diags.IsValid() || !tree.IsValid() {
		return nil, ErrInvalidInput
	}
	if tokens.Len() == 0 {
		return nil, ErrNoTokens
	}
	return &Parser{src: src, tokens: tokens, diags: diags, tree: tree}, nil
}

// IsValid reports whether every collaborator is still usable.
func (p *Parser) IsValid() bool {
	return p != nil && p.tokens.IsValid() && p.diags.IsValid() && p.tree.IsValid()
}

// Parse reads one top-level expression, an optional `;`, and then requires
// EOF. The expression is also recorded in the tree's root table. ok is true
// when the id is not null and no error-level diagnostic exists.
func (p *Parser) Parse() (ast.ExprID, bool) {
	if !p.IsValid() {
		return ast.NoExprID, false
	}
	id := p.ParseExpression()
	if id.IsValid() {
		if p.at(token.Semicolon) {
			p.advance(1)
		}
		if !p.at(token.EOF) {
			p.errTrailing(p.get(0))
		}
		if e, ok := p.tree.Expr(id); ok {
			p.tree.PushRoot(e)
		}
	}
	return id, id.IsValid() && !p.diags.HasErrors()
}

// ParseExpression parses a single expression starting at the cursor.
func (p *Parser) ParseExpression() ast.ExprID {
	if !p.IsValid() {
		return ast.NoExprID
	}
	return p.expression()
}
