package testkit

import (
	"fmt"

	"m2l/internal/ast"
	"m2l/internal/source"
)

// CheckSpanInvariants walks the expression rooted at root and checks:
// 1) every node span is non-empty, valid and belongs to src
// 2) every child span lies inside its parent's span
// 3) call args are contiguous and inside the call span
// A null root is accepted; poisoned parses have nothing to check.
func CheckSpanInvariants(tree *ast.Tree, root ast.ExprID, src *source.Source) error {
	if tree == nil || src == nil {
		return fmt.Errorf("nil tree or source")
	}
	if !root.IsValid() {
		return nil
	}
	c := checker{tree: tree, src: src, remaining: tree.Counts().Exprs}
	e, ok := tree.Expr(root)
	if !ok {
		return fmt.Errorf("root #%d not found", root)
	}
	return c.node(root, e.Span)
}

type checker struct {
	tree   *ast.Tree
	src    *source.Source
	remaining int // guards against cycles
}

func (c *checker) node(id ast.ExprID, parent source.Span) error {
	if !id.IsValid() {
		return fmt.Errorf("null child under %v", parent)
	}
	if c.remaining--; c.remaining < 0 {
		return fmt.Errorf("node #%d visited more often than the tree has nodes", id)
	}
	e, ok := c.tree.Expr(id)
	if !ok {
		return fmt.Errorf("node #%d not found", id)
	}
	sp := e.Span
	if sp.Src != c.src {
		return fmt.Errorf("node #%d span belongs to %v, want %s", id, sp, c.src.Path)
	}
	if !sp.IsValid() || sp.Empty() {
		return fmt.Errorf("node #%d has bad span [%d, +%d)", id, sp.Offset, sp.Length)
	}
	if !contains(parent, sp) {
		return fmt.Errorf("node #%d span [%d, %d) escapes parent [%d, %d)", id, sp.Offset, sp.End(), parent.Offset, parent.End())
	}

	switch d := e.Data.(type) {
	case ast.UnaryData:
		return c.node(d.Operand, sp)
	case ast.BinaryData:
		if err := c.node(d.LHS, sp); err != nil {
			return err
		}
		return c.node(d.RHS, sp)
	case ast.CallData:
		if err := c.node(d.Callee, sp); err != nil {
			return err
		}
		args, ok := c.tree.CallArgs(id)
		if !ok {
			return fmt.Errorf("call #%d args [%d, +%d) out of range", id, d.ArgsStart, d.ArgCount)
		}
		for i, a := range args {
			if !contains(sp, a.Span) {
				return fmt.Errorf("call #%d arg %d escapes the call span", id, i)
			}
			if err := c.node(a.Value, a.Span); err != nil {
				return err
			}
		}
	case nil:
		return fmt.Errorf("node #%d has no payload", id)
	}
	return nil
}

func contains(outer, inner source.Span) bool {
	return inner.Offset >= outer.Offset && inner.End() <= outer.End()
}
