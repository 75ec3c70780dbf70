package parser

import (
	"m2l/internal/ast"
	"m2l/internal/token"
)

// level is one rung of the binary ladder.
type level struct {
	kind ast.ExprKind
	ops  []token.Kind
}

// Ступени от слабой к сильной. The order is the descent order: each rung
// parses its left operand at the next one.
var ladder = [...]level{
	{ast.ExprAssign, []token.Kind{
		token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.StarStarAssign, token.SlashSlashAssign,
	}},
	{ast.ExprLogical, []token.Kind{token.AndAnd}},
	{ast.ExprLogical, []token.Kind{token.OrOr}},
	{ast.ExprEquality, []token.Kind{token.EqEq, token.BangEq}},
	{ast.ExprCompare, []token.Kind{token.Lt, token.LtEq, token.Gt, token.GtEq}},
	{ast.ExprBinary, []token.Kind{token.Plus, token.Minus}},
	{ast.ExprBinary, []token.Kind{token.Star, token.Slash, token.Percent, token.StarStar, token.SlashSlash}},
}

var (
	prefixOps  = []token.Kind{token.PlusPlus, token.MinusMinus, token.Bang, token.Minus}
	postfixOps = []token.Kind{token.PlusPlus, token.MinusMinus}
)

var opText = map[token.Kind]string{
	token.Assign:           "=",
	token.PlusAssign:       "+=",
	token.MinusAssign:      "-=",
	token.StarAssign:       "*=",
	token.SlashAssign:      "/=",
	token.PercentAssign:    "%=",
	token.StarStarAssign:   "**=",
	token.SlashSlashAssign: "//=",
	token.AndAnd:           "&&",
	token.OrOr:             "||",
	token.EqEq:             "==",
	token.BangEq:           "!=",
	token.Lt:               "<",
	token.LtEq:             "<=",
	token.Gt:               ">",
	token.GtEq:             ">=",
	token.Plus:             "+",
	token.Minus:            "-",
	token.Star:             "*",
	token.Slash:            "/",
	token.Percent:          "%",
	token.StarStar:         "**",
	token.SlashSlash:       "//",
	token.PlusPlus:         "++",
	token.MinusMinus:       "--",
	token.Bang:             "!",
}

// operatorText returns the spelling of an operator token.
func operatorText(tok token.Token) string {
	if s, ok := opText[tok.Kind]; ok {
		return s
	}
	return tok.Lexeme()
}
