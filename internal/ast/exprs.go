package ast

import (
	"m2l/internal/source"
)

// NewSymbol pushes a symbol reference.
func (t *Tree) NewSymbol(span source.Span, name source.Substring) ExprID {
	return t.PushExpr(Expr{Span: span, Kind: ExprSymbol, Data: SymbolData{Name: name}})
}

func (t *Tree) NewInt(span source.Span, v int64) ExprID {
	return t.PushExpr(Expr{Span: span, Kind: ExprInt, Data: IntData{Value: v}})
}

func (t *Tree) NewFloat(span source.Span, v float64) ExprID {
	return t.PushExpr(Expr{Span: span, Kind: ExprFloat, Data: FloatData{Value: v}})
}

func (t *Tree) NewBool(span source.Span, v bool) ExprID {
	return t.PushExpr(Expr{Span: span, Kind: ExprBool, Data: BoolData{Value: v}})
}

// NewStr pushes a string literal; value excludes the quotes.
func (t *Tree) NewStr(span source.Span, value source.Substring) ExprID {
	return t.PushExpr(Expr{Span: span, Kind: ExprStr, Data: StrData{Value: value}})
}

// NewUnary pushes a prefix or postfix node. kind must satisfy IsUnaryShape.
func (t *Tree) NewUnary(kind ExprKind, span source.Span, op string, operand ExprID) ExprID {
	if !kind.IsUnaryShape() {
		return NoExprID
	}
	return t.PushExpr(Expr{Span: span, Kind: kind, Data: UnaryData{Operand: operand, Op: op}})
}

// NewBinary pushes a two-operand node. kind must satisfy IsBinaryShape.
func (t *Tree) NewBinary(kind ExprKind, span source.Span, op string, lhs, rhs ExprID) ExprID {
	if !kind.IsBinaryShape() {
		return NoExprID
	}
	return t.PushExpr(Expr{Span: span, Kind: kind, Data: BinaryData{LHS: lhs, RHS: rhs, Op: op}})
}

// NewCall pushes a call node whose arguments already sit contiguously in the
// args table.
func (t *Tree) NewCall(span source.Span, callee ExprID, argsStart, argCount uint32) ExprID {
	return t.PushExpr(Expr{
		Span: span,
		Kind: ExprCall,
		Data: CallData{Callee: callee, ArgsStart: argsStart, ArgCount: argCount},
	})
}

// Binary returns the payload of a binary-shaped node.
func (t *Tree) Binary(id ExprID) (BinaryData, bool) {
	e, ok := t.Expr(id)
	if !ok {
		return BinaryData{}, false
	}
	d, ok := e.Data.(BinaryData)
	return d, ok
}

// Unary returns the payload of a prefix or postfix node.
func (t *Tree) Unary(id ExprID) (UnaryData, bool) {
	e, ok := t.Expr(id)
	if !ok {
		return UnaryData{}, false
	}
	d, ok := e.Data.(UnaryData)
	return d, ok
}

func (t *Tree) Call(id ExprID) (CallData, bool) {
	e, ok := t.Expr(id)
	if !ok {
		return CallData{}, false
	}
	d, ok := e.Data.(CallData)
	return d, ok
}

// CallArgs returns copies of the call's arguments in source order.
func (t *Tree) CallArgs(id ExprID) ([]Arg, bool) {
	call, ok := t.Call(id)
	if !ok {
		return nil, false
	}
	out := make([]Arg, 0, call.ArgCount)
	for i := range call.ArgCount {
		a, ok := t.Arg(call.ArgsStart + i)
		if !ok {
			return nil, false
		}
		out = append(out, a)
	}
	return out, true
}

func (t *Tree) Symbol(id ExprID) (source.Substring, bool) {
	e, ok := t.Expr(id)
	if !ok {
		return source.Substring{}, false
	}
	d, ok := e.Data.(SymbolData)
	return d.Name, ok
}

func (t *Tree) Int(id ExprID) (int64, bool) {
	e, ok := t.Expr(id)
	if !ok {
		return 0, false
	}
	d, ok := e.Data.(IntData)
	return d.Value, ok
}

func (t *Tree) Float(id ExprID) (float64, bool) {
	e, ok := t.Expr(id)
	if !ok {
		return 0, false
	}
	d, ok := e.Data.(FloatData)
	return d.Value, ok
}

func (t *Tree) Bool(id ExprID) (value, ok bool) {
	e, found := t.Expr(id)
	if !found {
		return false, false
	}
	d, ok := e.Data.(BoolData)
	return d.Value, ok
}

func (t *Tree) Str(id ExprID) (source.Substring, bool) {
	e, ok := t.Expr(id)
	if !ok {
		return source.Substring{}, false
	}
	d, ok := e.Data.(StrData)
	return d.Value, ok
}
