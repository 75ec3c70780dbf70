package ast

import (
	"m2l/internal/source"
)

// ExprKind tags the payload carried by an Expr.
type ExprKind uint8

const (
	// ExprNone is the kind of the zero-valued sentinel.
	ExprNone ExprKind = iota
	ExprSymbol
	ExprInt
	ExprFloat
	ExprBool
	ExprStr
	ExprCall
	ExprPrefix
	ExprPostfix
	// ExprBinary is arithmetic: + - * / % ** //
	ExprBinary
	// ExprLogical is && and ||.
	ExprLogical
	// ExprCompare is < <= > >=.
	ExprCompare
	// ExprEquality is == and !=.
	ExprEquality
	// ExprAssign is = and the compound assignments.
	ExprAssign
)

func (k ExprKind) String() string {
	switch k {
	case ExprNone:
		return "none"
	case ExprSymbol:
		return "symbol"
	case ExprInt:
		return "int"
	case ExprFloat:
		return "float"
	case ExprBool:
		return "bool"
	case ExprStr:
		return "string"
	case ExprCall:
		return "call"
	case ExprPrefix:
		return "prefix"
	case ExprPostfix:
		return "postfix"
	case ExprBinary:
		return "binary"
	case ExprLogical:
		return "logical"
	case ExprCompare:
		return "compare"
	case ExprEquality:
		return "equality"
	case ExprAssign:
		return "assign"
	}
	return "unknown"
}

// IsBinaryShape reports whether the kind carries a BinaryData payload.
func (k ExprKind) IsBinaryShape() bool {
	switch k {
	case ExprBinary, ExprLogical, ExprCompare, ExprEquality, ExprAssign:
		return true
	}
	return false
}

// IsUnaryShape reports whether the kind carries a UnaryData payload.
func (k ExprKind) IsUnaryShape() bool {
	return k == ExprPrefix || k == ExprPostfix
}

// Expr is one expression node. Data holds the payload for Kind; the sentinel
// has Kind ExprNone and nil Data.
type Expr struct {
	Span source.Span
	Kind ExprKind
	Data ExprData
}

// ExprData is the closed set of expression payloads.
type ExprData interface {
	exprData()
}

type (
	SymbolData struct{ Name source.Substring }
	IntData    struct{ Value int64 }
	FloatData  struct{ Value float64 }
	BoolData   struct{ Value bool }
	// StrData holds the literal text without the surrounding quotes.
	StrData struct{ Value source.Substring }

	// CallData refers to ArgCount consecutive entries of the args table
	// starting at ArgsStart.
	CallData struct {
		Callee    ExprID
		ArgsStart uint32
		ArgCount  uint32
	}

	// UnaryData is shared by prefix and postfix expressions.
	UnaryData struct {
		Operand ExprID
		Op      string
	}

	// BinaryData is shared by the binary, logical, compare, equality and
	// assign kinds.
	BinaryData struct {
		LHS ExprID
		RHS ExprID
		Op  string
	}
)

func (SymbolData) exprData() {}
func (IntData) exprData()    {}
func (FloatData) exprData()  {}
func (BoolData) exprData()   {}
func (StrData) exprData()    {}
func (CallData) exprData()   {}
func (UnaryData) exprData()  {}
func (BinaryData) exprData() {}

// Arg is one call argument, optionally labelled as `name: value`.
type Arg struct {
	Span     source.Span
	HasLabel bool
	Label    source.Substring
	Value    ExprID
}
