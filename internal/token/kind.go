package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the scanner never emits it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Symbol represents an identifier.
	Symbol
	// IntLit represents an integer literal such as 42 or 1_000.
	IntLit
	// FloatLit represents a float literal such as 3.14.
	FloatLit
	// StringLit represents a double-quoted string, quotes included.
	StringLit

	KwLet   // let
	KwMut   // mut
	KwFun   // fun, func
	KwType  // type
	KwIf    // if
	KwElse  // else
	KwFor   // for
	KwIn    // in
	KwWhile // while
	KwTrue  // true
	KwFalse // false

	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]

	Plus             // +
	PlusPlus         // ++
	PlusAssign       // +=
	Minus            // -
	MinusMinus       // --
	MinusAssign      // -=
	Arrow            // ->
	Star             // *
	StarStar         // **
	StarAssign       // *=
	StarStarAssign   // **=
	Slash            // /
	SlashSlash       // //
	SlashAssign      // /=
	SlashSlashAssign // //=
	Percent          // %
	PercentAssign    // %=

	Bang    // !
	BangEq  // !=
	Assign  // =
	EqEq    // ==
	Lt      // <
	LtEq    // <=
	Gt      // >
	GtEq    // >=
	Pipe    // |
	OrOr    // ||
	Amp     // &
	AndAnd  // &&

	Colon     // :
	Semicolon // ;
	Dot       // .
	Question  // ?
	Comma     // ,
	Backtick  // `

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:          "INVALID",
	EOF:              "EOF",
	Symbol:           "SYMBOL",
	IntLit:           "INT",
	FloatLit:         "FLOAT",
	StringLit:        "STRING",
	KwLet:            "LET",
	KwMut:            "MUT",
	KwFun:            "FUN",
	KwType:           "TYPE",
	KwIf:             "IF",
	KwElse:           "ELSE",
	KwFor:            "FOR",
	KwIn:             "IN",
	KwWhile:          "WHILE",
	KwTrue:           "TRUE",
	KwFalse:          "FALSE",
	LParen:           "LPAREN",
	RParen:           "RPAREN",
	LBrace:           "LBRACE",
	RBrace:           "RBRACE",
	LBracket:         "LBRACKET",
	RBracket:         "RBRACKET",
	Plus:             "PLUS",
	PlusPlus:         "PLUS_PLUS",
	PlusAssign:       "PLUS_EQ",
	Minus:            "MINUS",
	MinusMinus:       "MINUS_MINUS",
	MinusAssign:      "MINUS_EQ",
	Arrow:            "ARROW",
	Star:             "STAR",
	StarStar:         "STAR_STAR",
	StarAssign:       "STAR_EQ",
	StarStarAssign:   "STAR_STAR_EQ",
	Slash:            "SLASH",
	SlashSlash:       "SLASH_SLASH",
	SlashAssign:      "SLASH_EQ",
	SlashSlashAssign: "SLASH_SLASH_EQ",
	Percent:          "PERCENT",
	PercentAssign:    "PERCENT_EQ",
	Bang:             "BANG",
	BangEq:           "BANG_EQ",
	Assign:           "EQ",
	EqEq:             "EQ_EQ",
	Lt:               "LT",
	LtEq:             "LT_EQ",
	Gt:               "GT",
	GtEq:             "GT_EQ",
	Pipe:             "PIPE",
	OrOr:             "PIPE_PIPE",
	Amp:              "AMP",
	AndAnd:           "AMP_AMP",
	Colon:            "COLON",
	Semicolon:        "SEMICOLON",
	Dot:              "DOT",
	Question:         "QUESTION",
	Comma:            "COMMA",
	Backtick:         "BACKTICK",
}

// String returns the upper-case debug name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsKeyword reports whether k is a reserved word, booleans included.
func (k Kind) IsKeyword() bool {
	return k >= KwLet && k <= KwFalse
}

// IsLiteral reports whether k carries a literal value.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsAssign reports whether k is = or one of the compound assignments.
func (k Kind) IsAssign() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, StarStarAssign,
		SlashAssign, SlashSlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}
