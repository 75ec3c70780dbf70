package diagfmt

import (
	"fmt"
	"strconv"
	"strings"

	"m2l/internal/ast"
)

const exprInlineMaxDepth = 64

// FormatExprInline renders an expression on one line with every compound
// node parenthesised, e.g. `(x && (x > 5))` or `add(lhs: 1, rhs: 2)`.
func FormatExprInline(tree *ast.Tree, id ast.ExprID) string {
	return formatExprInlineDepth(tree, id, 0)
}

func formatExprInlineDepth(tree *ast.Tree, id ast.ExprID, depth int) string {
	if !id.IsValid() {
		return "<null>"
	}
	if depth >= exprInlineMaxDepth {
		return "..."
	}
	e, ok := tree.Expr(id)
	if !ok {
		return "<invalid>"
	}

	switch d := e.Data.(type) {
	case ast.SymbolData:
		return d.Name.String()
	case ast.IntData:
		return strconv.FormatInt(d.Value, 10)
	case ast.FloatData:
		return strconv.FormatFloat(d.Value, 'g', -1, 64)
	case ast.BoolData:
		return strconv.FormatBool(d.Value)
	case ast.StrData:
		return strconv.Quote(d.Value.String())
	case ast.UnaryData:
		operand := formatExprInlineDepth(tree, d.Operand, depth+1)
		if e.Kind == ast.ExprPostfix {
			return "(" + operand + d.Op + ")"
		}
		return "(" + d.Op + operand + ")"
	case ast.BinaryData:
		return fmt.Sprintf("(%s %s %s)",
			formatExprInlineDepth(tree, d.LHS, depth+1), d.Op,
			formatExprInlineDepth(tree, d.RHS, depth+1))
	case ast.CallData:
		args, _ := tree.CallArgs(id)
		parts := make([]string, 0, len(args))
		for _, a := range args {
			v := formatExprInlineDepth(tree, a.Value, depth+1)
			if a.HasLabel {
				v = a.Label.String() + ": " + v
			}
			parts = append(parts, v)
		}
		return formatExprInlineDepth(tree, d.Callee, depth+1) + "(" + strings.Join(parts, ", ") + ")"
	case nil:
		return "<empty>"
	}
	return "<invalid>"
}
