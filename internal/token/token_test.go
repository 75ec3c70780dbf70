package token_test

import (
	"testing"

	"m2l/internal/arena"
	"m2l/internal/source"
	"m2l/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  token.Kind
		ok    bool
	}{
		{"let", token.KwLet, true},
		{"mut", token.KwMut, true},
		{"fun", token.KwFun, true},
		{"func", token.KwFun, true},
		{"type", token.KwType, true},
		{"if", token.KwIf, true},
		{"else", token.KwElse, true},
		{"for", token.KwFor, true},
		{"in", token.KwIn, true},
		{"while", token.KwWhile, true},
		{"true", token.KwTrue, true},
		{"false", token.KwFalse, true},
		{"Let", token.Invalid, false},
		{"enum", token.Invalid, false},
		{"lets", token.Invalid, false},
	}
	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			got, ok := token.LookupKeyword(tt.ident)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("LookupKeyword(%q) = %v, %v; want %v, %v", tt.ident, got, ok, tt.want, tt.ok)
			}
			if ok && !got.IsKeyword() {
				t.Fatalf("%v must report IsKeyword", got)
			}
			if bk, bok := token.LookupKeywordBytes([]byte(tt.ident)); bk != got || bok != ok {
				t.Fatalf("LookupKeywordBytes(%q) = %v, %v", tt.ident, bk, bok)
			}
		})
	}
}

func TestLookupKeywordBytesDoesNotAllocate(t *testing.T) {
	ident := []byte("while x")[:5]
	allocs := testing.AllocsPerRun(100, func() {
		token.LookupKeywordBytes(ident)
	})
	if allocs != 0 {
		t.Fatalf("allocs = %v", allocs)
	}
}

func TestKindNamesAreUnique(t *testing.T) {
	seen := map[string]token.Kind{}
	for k := token.Invalid; k <= token.Backtick; k++ {
		name := k.String()
		if name == "" {
			t.Fatalf("kind %d has no name", k)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("kinds %d and %d share name %q", prev, k, name)
		}
		seen[name] = k
	}
	if got := token.Kind(250).String(); got != "Kind(250)" {
		t.Fatalf("unknown kind name = %q", got)
	}
}

func TestDebugString(t *testing.T) {
	src := source.FromString("x\n  += 1")
	tests := []struct {
		tok  token.Token
		want string
	}{
		{
			token.Token{Kind: token.Symbol, Span: source.NewSpan(src, 0, 1, 1, 1)},
			"[<static_data>:1:1] SYMBOL 'x'",
		},
		{
			token.Token{Kind: token.PlusAssign, Span: source.NewSpan(src, 4, 2, 2, 3)},
			"[<static_data>:2:3] PLUS_EQ '+='",
		},
		{
			token.Token{Kind: token.EOF, Span: source.NewSpan(src, src.Len(), 0, 2, 7)},
			`[<static_data>:2:7] EOF '\0'`,
		},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestListLifecycle(t *testing.T) {
	l, err := token.NewList()
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	src := source.FromString("ab")
	for i := range token.InitialListCapacity + 1 {
		r := l.Push(token.Token{Kind: token.Symbol, Span: source.NewSpan(src, 0, 1, 1, 1)})
		if i == token.InitialListCapacity && r != arena.ResultReallocated {
			t.Fatalf("push past capacity = %v", r)
		}
	}
	l.Push(token.Token{Kind: token.EOF, Span: source.NewSpan(src, 2, 0, 1, 3)})

	if last, ok := l.Last(); !ok || last.Kind != token.EOF {
		t.Fatalf("Last = %v, %v", last, ok)
	}
	if l.Len() != token.InitialListCapacity+2 {
		t.Fatalf("Len = %d", l.Len())
	}
	if l.Destroy() != arena.ResultOK || l.IsValid() {
		t.Fatal("Destroy must invalidate the list")
	}
	if _, ok := l.At(0); ok {
		t.Fatal("At on destroyed list must be absent")
	}
	if l.Destroy() != arena.ResultNullPointer {
		t.Fatal("second Destroy must report NullPointer")
	}
}
