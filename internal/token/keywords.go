package token

var keywords = map[string]Kind{
	"let":   KwLet,
	"mut":   KwMut,
	"fun":   KwFun,
	"func":  KwFun,
	"type":  KwType,
	"if":    KwIf,
	"else":  KwElse,
	"for":   KwFor,
	"in":    KwIn,
	"while": KwWhile,
	"true":  KwTrue,
	"false": KwFalse,
}

// LookupKeyword reports the keyword kind for ident. Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupKeywordBytes is LookupKeyword for a borrowed byte slice; the map
// index converts without allocating.
func LookupKeywordBytes(ident []byte) (Kind, bool) {
	k, ok := keywords[string(ident)]
	return k, ok
}
