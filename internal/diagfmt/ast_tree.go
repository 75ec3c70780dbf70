package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"m2l/internal/ast"
)

const treeIndent = 4

// FormatExprTree prints the subtree rooted at id, one node per line:
//
//	logical(&&,
//	    symbol(x)
//	    compare(>,
//	        symbol(x)
//	        int(5)
//	    )
//	)
func FormatExprTree(w io.Writer, tree *ast.Tree, id ast.ExprID) error {
	bw := bufio.NewWriter(w)
	p := treePrinter{w: bw, tree: tree}
	p.expr(id, 0)
	if p.err != nil {
		return p.err
	}
	return bw.Flush()
}

type treePrinter struct {
	w    *bufio.Writer
	tree *ast.Tree
	err  error
}

func (p *treePrinter) line(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", depth*treeIndent), fmt.Sprintf(format, args...)); err != nil {
		p.err = err
	}
}

func (p *treePrinter) expr(id ast.ExprID, depth int) {
	if !id.IsValid() {
		p.line(depth, "<null>")
		return
	}
	e, ok := p.tree.Expr(id)
	if !ok {
		p.line(depth, "<invalid #%d>", id)
		return
	}

	switch d := e.Data.(type) {
	case ast.SymbolData:
		p.line(depth, "symbol(%s)", d.Name)
	case ast.IntData:
		p.line(depth, "int(%d)", d.Value)
	case ast.FloatData:
		p.line(depth, "float(%g)", d.Value)
	case ast.BoolData:
		p.line(depth, "bool(%t)", d.Value)
	case ast.StrData:
		p.line(depth, "string(%s)", d.Value)
	case ast.UnaryData:
		p.line(depth, "%s(%s", e.Kind, d.Op)
		p.expr(d.Operand, depth+1)
		p.line(depth, ")")
	case ast.BinaryData:
		p.line(depth, "%s(%s,", e.Kind, d.Op)
		p.expr(d.LHS, depth+1)
		p.expr(d.RHS, depth+1)
		p.line(depth, ")")
	case ast.CallData:
		p.line(depth, "call(")
		p.expr(d.Callee, depth+1)
		args, _ := p.tree.CallArgs(id)
		for _, a := range args {
			if a.HasLabel {
				p.line(depth+1, "%s:", a.Label)
				p.expr(a.Value, depth+2)
				continue
			}
			p.expr(a.Value, depth+1)
		}
		p.line(depth, ")")
	case nil:
		p.line(depth, "<empty %s>", e.Kind)
	}
}
