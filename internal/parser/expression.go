package parser

import (
	"m2l/internal/ast"
	"m2l/internal/source"
)

// maxNesting bounds recursion through expression and prefix.
const maxNesting = 1000

// expression is the top-level entry of the ladder.
func (p *Parser) expression() ast.ExprID {
	if !p.enter() {
		return ast.NoExprID
	}
	defer p.leave()
	return p.binaryLevel(0)
}

func (p *Parser) enter() bool {
	if p.depth >= maxNesting {
		p.errTooDeep(p.get(0))
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() { p.depth-- }

// binaryLevel parses rung i. The right operand of every rung is a full
// expression, so `a - b - c` groups as `a - (b - c)` and `a * b + c` as
// `a * (b + c)`.
func (p *Parser) binaryLevel(i int) ast.ExprID {
	if i == len(ladder) {
		return p.prefix()
	}
	rung := ladder[i]

	lhs := p.binaryLevel(i + 1)
	if !lhs.IsValid() {
		return ast.NoExprID
	}
	if !p.atAny(rung.ops...) {
		return lhs
	}
	op := p.next()

	rhs := p.expression()
	if !rhs.IsValid() {
		return ast.NoExprID
	}
	return p.tree.NewBinary(rung.kind, p.spanOf(lhs).Merge(p.spanOf(rhs)), operatorText(op), lhs, rhs)
}

// prefix handles ++x, --x, !x and -x, nesting freely.
func (p *Parser) prefix() ast.ExprID {
	if !p.atAny(prefixOps...) {
		return p.postfix()
	}
	if !p.enter() {
		return ast.NoExprID
	}
	defer p.leave()
	op := p.next()
	operand := p.prefix()
	if !operand.IsValid() {
		return ast.NoExprID
	}
	return p.tree.NewUnary(ast.ExprPrefix, op.Span.Merge(p.spanOf(operand)), operatorText(op), operand)
}

// postfix wraps at most one trailing ++ or --.
func (p *Parser) postfix() ast.ExprID {
	operand := p.call()
	if !operand.IsValid() || !p.atAny(postfixOps...) {
		return operand
	}
	op := p.next()
	return p.tree.NewUnary(ast.ExprPostfix, p.spanOf(operand).Merge(op.Span), operatorText(op), operand)
}

// spanOf re-resolves a node's span; ids stay valid across table growth.
func (p *Parser) spanOf(id ast.ExprID) source.Span {
	e, _ := p.tree.Expr(id)
	return e.Span
}
