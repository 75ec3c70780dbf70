package token

import (
	"fmt"
	"iter"

	"m2l/internal/arena"
)

// InitialListCapacity is the number of tokens a fresh List has room for.
const InitialListCapacity = 512

// List is the append-only token stream produced by the scanner.
type List struct {
	items *arena.List[Token]
}

// NewList allocates an empty token list.
func NewList() (*List, error) {
	items, err := arena.New[Token](InitialListCapacity)
	if err != nil {
		return nil, fmt.Errorf("token list: %w", err)
	}
	return &List{items: items}, nil
}

// IsValid reports whether the list can be used.
func (l *List) IsValid() bool {
	return l != nil && l.items.IsValid()
}

// Push appends a token.
func (l *List) Push(t Token) arena.Result {
	if l == nil {
		return arena.ResultNullPointer
	}
	return l.items.Push(t)
}

// Len returns the number of tokens.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.items.Len()
}

// At returns the i-th token.
func (l *List) At(i int) (Token, bool) {
	if l == nil {
		return Token{}, false
	}
	return l.items.Get(i)
}

// Last returns the final token, normally EOF.
func (l *List) Last() (Token, bool) {
	if l == nil {
		return Token{}, false
	}
	return l.items.Back()
}

// All iterates over the tokens in scan order.
func (l *List) All() iter.Seq2[int, Token] {
	if l == nil {
		return func(func(int, Token) bool) {}
	}
	return l.items.All()
}

// Kinds returns the kinds of all tokens, mostly for tests and dumps.
func (l *List) Kinds() []Kind {
	out := make([]Kind, 0, l.Len())
	for _, t := range l.All() {
		out = append(out, t.Kind)
	}
	return out
}

// Destroy releases the storage.
func (l *List) Destroy() arena.Result {
	if l == nil {
		return arena.ResultNullPointer
	}
	return l.items.Destroy()
}
