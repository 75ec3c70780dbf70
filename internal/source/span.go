package source

import (
	"fmt"
)

// Span is a byte range of a Source together with the 1-based line and
// column of its first byte, captured when the span was created.
type Span struct {
	Src    *Source
	Offset uint32
	Length uint32
	Line   uint32
	Col    uint32
}

// NewSpan builds a span and panics if it reaches past the end of src.
func NewSpan(src *Source, offset, length, line, col uint32) Span {
	if offset+length < offset || offset+length > src.Len() {
		panic(fmt.Sprintf("span [%d, +%d) out of range for %q (len %d)", offset, length, src.Path, src.Len()))
	}
	return Span{Src: src, Offset: offset, Length: length, Line: line, Col: col}
}

// End returns the exclusive end offset.
func (s Span) End() uint32 {
	return s.Offset + s.Length
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Length == 0
}

// IsValid reports whether the span lies inside its source.
func (s Span) IsValid() bool {
	return s.Src != nil && s.End() >= s.Offset && s.End() <= s.Src.Len()
}

// Merge returns the smallest span covering both s and other, positioned at
// whichever of the two starts first. Spans of different sources are not
// merged; s is returned unchanged.
func (s Span) Merge(other Span) Span {
	if s.Src != other.Src {
		return s
	}
	first := s
	if other.Offset < s.Offset {
		first = other
	}
	end := max(s.End(), other.End())
	return Span{
		Src:    s.Src,
		Offset: first.Offset,
		Length: end - first.Offset,
		Line:   first.Line,
		Col:    first.Col,
	}
}

// Substring returns a view of the spanned bytes, or the null substring if
// the span is out of bounds.
func (s Span) Substring() Substring {
	if !s.IsValid() || s.Length == 0 {
		return Substring{}
	}
	end := s.End()
	return Substring{data: s.Src.Content[s.Offset:end:end]}
}

// Text returns a copy of the spanned bytes.
func (s Span) Text() string {
	return s.Substring().String()
}

// String formats the span start as path:line:col.
func (s Span) String() string {
	path := "<unknown>"
	if s.Src != nil {
		path = s.Src.Path
	}
	return fmt.Sprintf("%s:%d:%d", path, s.Line, s.Col)
}
