package parser

import (
	"fmt"
	"strings"
	"testing"

	"m2l/internal/ast"
	"m2l/internal/diag"
	"m2l/internal/lexer"
	"m2l/internal/source"
	"m2l/internal/token"
)

type fixture struct {
	src    *source.Source
	tokens *token.List
	diags  *diag.Engine
	tree   *ast.Tree
	parser *Parser
}

// newFixture scans input and binds a parser to the result. Scan errors are
// left in diags for the test to inspect.
func newFixture(t *testing.T, input string) *fixture {
	t.Helper()
	f := &fixture{src: source.FromString(input)}
	var err error
	if f.tokens, err = token.NewList(); err != nil {
		t.Fatal(err)
	}
	if f.diags, err = diag.NewEngine(); err != nil {
		t.Fatal(err)
	}
	if f.tree, err = ast.New(ast.Hints{}); err != nil {
		t.Fatal(err)
	}
	sc, err := lexer.New(f.src, f.diags, f.tokens)
	if err != nil {
		t.Fatal(err)
	}
	sc.Scan()
	if f.parser, err = New(f.src, f.tokens, f.diags, f.tree); err != nil {
		t.Fatal(err)
	}
	return f
}

func (f *fixture) issues() []diag.Issue {
	var out []diag.Issue
	for _, d := range f.diags.All() {
		out = append(out, d.Issue)
	}
	return out
}

func (f *fixture) summary() string {
	if f.diags.Len() == 0 {
		return "<none>"
	}
	lines := make([]string, 0, f.diags.Len())
	for _, d := range f.diags.All() {
		lines = append(lines, fmt.Sprintf("[%s] %s", d.Issue.ID(), d.Message))
	}
	return strings.Join(lines, "; ")
}

// sexpr renders a node as a compact prefix form for structural assertions.
func sexpr(tree *ast.Tree, id ast.ExprID) string {
	e, ok := tree.Expr(id)
	if !ok {
		return "<null>"
	}
	switch d := e.Data.(type) {
	case ast.SymbolData:
		return d.Name.String()
	case ast.IntData:
		return fmt.Sprint(d.Value)
	case ast.FloatData:
		return fmt.Sprint(d.Value)
	case ast.BoolData:
		return fmt.Sprint(d.Value)
	case ast.StrData:
		return fmt.Sprintf("%q", d.Value.String())
	case ast.UnaryData:
		if e.Kind == ast.ExprPostfix {
			return fmt.Sprintf("(%s %s)", sexpr(tree, d.Operand), d.Op)
		}
		return fmt.Sprintf("(%s %s)", d.Op, sexpr(tree, d.Operand))
	case ast.BinaryData:
		return fmt.Sprintf("(%s %s %s)", d.Op, sexpr(tree, d.LHS), sexpr(tree, d.RHS))
	case ast.CallData:
		args, _ := tree.CallArgs(id)
		parts := []string{"call", sexpr(tree, d.Callee)}
		for _, a := range args {
			v := sexpr(tree, a.Value)
			if a.HasLabel {
				v = a.Label.String() + ":" + v
			}
			parts = append(parts, v)
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return "<?>"
}
