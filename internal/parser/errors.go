package parser

import (
	"fmt"

	"m2l/internal/diag"
	"m2l/internal/source"
	"m2l/internal/token"
)

// репортует ошибку в движок диагностик
func (p *Parser) report(issue diag.Issue, span source.Span, label, help string) {
	p.diags.Report(issue, span, label, help)
}

func (p *Parser) errExpected(tok token.Token) {
	label := fmt.Sprintf("found %s", tok.Kind)
	p.report(diag.IssueExpectedExpression, tok.Span, label, "expected an expression here")
}

func (p *Parser) errSeparator(tok token.Token) {
	p.report(diag.IssueInvalidSyntax, tok.Span, "unexpected token", "expected ',' or ')' after a call argument")
}

func (p *Parser) errUnclosed(open, at token.Token) {
	p.report(diag.IssueUnclosedDelimiter, open.Span, "this '(' is never closed",
		fmt.Sprintf("expected ')' before %s", at.Kind))
}

func (p *Parser) errTrailing(tok token.Token) {
	p.report(diag.IssueTrailingInput, tok.Span, "unexpected token", "only one expression is allowed; remove what follows it")
}

func (p *Parser) errTooDeep(tok token.Token) {
	p.report(diag.IssueInvalidSyntax, tok.Span, "expression nested too deeply",
		fmt.Sprintf("nesting is limited to %d levels", maxNesting))
}

func (p *Parser) errInternal(span source.Span, msg string) {
	p.report(diag.IssueInternal, span, "", msg)
}
