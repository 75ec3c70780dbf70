package source

import "bytes"

// Substring is a non-owning view into a Source buffer. The zero value is the
// null substring.
type Substring struct {
	data []byte
}

// IsNull reports whether the substring is empty.
func (s Substring) IsNull() bool {
	return len(s.data) == 0
}

// Len returns the length in bytes.
func (s Substring) Len() int {
	return len(s.data)
}

// Bytes exposes the underlying bytes. Callers must not modify them.
func (s Substring) Bytes() []byte {
	return s.data
}

// Equal compares two substrings byte for byte. A null substring is never
// equal to anything, including another null substring.
func (s Substring) Equal(other Substring) bool {
	if s.IsNull() || other.IsNull() {
		return false
	}
	return bytes.Equal(s.data, other.data)
}

// EqualString compares the substring with a literal.
func (s Substring) EqualString(lit string) bool {
	if s.IsNull() {
		return false
	}
	return string(s.data) == lit
}

// String materialises an owned copy.
func (s Substring) String() string {
	return string(s.data)
}
