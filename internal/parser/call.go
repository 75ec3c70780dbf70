package parser

import (
	"fortio.org/safecast"

	"m2l/internal/ast"
	"m2l/internal/token"
)

// call parses an atom followed by any number of argument lists.
func (p *Parser) call() ast.ExprID {
	callee := p.atom()
	for callee.IsValid() && p.at(token.LParen) {
		callee = p.callArgs(callee)
	}
	return callee
}

// callArgs parses `( [label:] expr, ... )` after callee. Arguments are
// collected first and pushed together so nested calls cannot interleave with
// this call's entries in the args table.
func (p *Parser) callArgs(callee ast.ExprID) ast.ExprID {
	lparen := p.next()
	var args []ast.Arg

	for !p.at(token.RParen) {
		arg, ok := p.argument()
		if !ok {
			return ast.NoExprID
		}
		args = append(args, arg)

		if p.at(token.Comma) {
			p.advance(1)
			continue
		}
		if p.at(token.RParen) {
			break
		}
		if p.at(token.EOF) {
			p.errUnclosed(lparen, p.get(0))
		} else {
			p.errSeparator(p.get(0))
		}
		p.skipToBoundary()
		return ast.NoExprID
	}
	rparen := p.next()

	start, count, ok := p.pushArgs(args)
	if !ok {
		p.errInternal(rparen.Span, "failed to store call arguments")
		return ast.NoExprID
	}
	return p.tree.NewCall(p.spanOf(callee).Merge(rparen.Span), callee, start, count)
}

// argument parses one `name: expr` or bare `expr`.
func (p *Parser) argument() (ast.Arg, bool) {
	var arg ast.Arg
	first := p.get(0)
	if first.Kind == token.Symbol && p.get(1).Kind == token.Colon {
		p.advance(2)
		arg.HasLabel = true
		arg.Label = first.Text()
	}
	arg.Value = p.expression()
	if !arg.Value.IsValid() {
		return ast.Arg{}, false
	}
	arg.Span = p.spanOf(arg.Value)
	if arg.HasLabel {
		arg.Span = first.Span.Merge(arg.Span)
	}
	return arg, true
}

func (p *Parser) pushArgs(args []ast.Arg) (start, count uint32, ok bool) {
	count, err := safecast.Conv[uint32](len(args))
	if err != nil {
		return 0, 0, false
	}
	start = uint32(p.tree.Counts().Args)
	for _, a := range args {
		if _, ok := p.tree.PushArg(a); !ok {
			return 0, 0, false
		}
	}
	return start, count, true
}
