package source

import (
	"testing"
)

func TestSpanMerge(t *testing.T) {
	src := FromString("let answer = 40 + 2")
	tests := []struct {
		name string
		a, b Span
	}{
		{"disjoint ordered", NewSpan(src, 0, 3, 1, 1), NewSpan(src, 13, 2, 1, 14)},
		{"disjoint reversed", NewSpan(src, 13, 2, 1, 14), NewSpan(src, 0, 3, 1, 1)},
		{"nested", NewSpan(src, 4, 10, 1, 5), NewSpan(src, 6, 2, 1, 7)},
		{"overlapping", NewSpan(src, 4, 6, 1, 5), NewSpan(src, 8, 5, 1, 9)},
		{"empty", NewSpan(src, 19, 0, 1, 20), NewSpan(src, 16, 1, 1, 17)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Merge(tt.b)
			if got.Offset != min(tt.a.Offset, tt.b.Offset) {
				t.Errorf("offset = %d", got.Offset)
			}
			if got.End() != max(tt.a.End(), tt.b.End()) {
				t.Errorf("end = %d", got.End())
			}
			first := tt.a
			if tt.b.Offset < tt.a.Offset {
				first = tt.b
			}
			if got.Line != first.Line || got.Col != first.Col {
				t.Errorf("position = %d:%d, want %d:%d", got.Line, got.Col, first.Line, first.Col)
			}
		})
	}
}

func TestSpanMergeAcrossSources(t *testing.T) {
	a := NewSpan(FromString("abc"), 0, 1, 1, 1)
	b := NewSpan(FromString("abcdef"), 2, 3, 1, 3)
	if got := a.Merge(b); got != a {
		t.Fatalf("merge across sources changed the span: %+v", got)
	}
}

func TestSubstringRoundTrip(t *testing.T) {
	src := FromString("add(lhs: 1, rhs: 2)")
	for off := uint32(0); off < src.Len(); off++ {
		for length := uint32(1); off+length <= src.Len(); length++ {
			sub := NewSpan(src, off, length, 1, off+1).Substring()
			if sub.Len() != int(length) {
				t.Fatalf("[%d,+%d): length %d", off, length, sub.Len())
			}
			if sub.String() != string(src.Content[off:off+length]) {
				t.Fatalf("[%d,+%d): %q", off, length, sub.String())
			}
		}
	}
}

func TestSubstringOutOfBoundsIsNull(t *testing.T) {
	src := FromString("abc")
	spans := []Span{
		{Src: src, Offset: 2, Length: 5, Line: 1, Col: 3},
		{Src: src, Offset: 10, Length: 1, Line: 1, Col: 11},
		{Src: nil, Offset: 0, Length: 1},
		{Src: src, Offset: 1, Length: 0, Line: 1, Col: 2},
	}
	for _, sp := range spans {
		if sub := sp.Substring(); !sub.IsNull() {
			t.Errorf("span %+v gave %q, want null", sp, sub.String())
		}
	}
}

func TestSubstringAppendDoesNotClobberSource(t *testing.T) {
	src := FromString("abcdef")
	sub := NewSpan(src, 0, 2, 1, 1).Substring()
	_ = append(sub.Bytes(), 'X')
	if string(src.Content) != "abcdef" {
		t.Fatalf("source changed to %q", src.Content)
	}
}

func TestSubstringEquality(t *testing.T) {
	src := FromString("foo bar foo")
	first := NewSpan(src, 0, 3, 1, 1).Substring()
	second := NewSpan(src, 8, 3, 1, 9).Substring()
	other := NewSpan(src, 4, 3, 1, 5).Substring()

	if !first.Equal(second) {
		t.Error("equal text must compare equal")
	}
	if first.Equal(other) {
		t.Error("different text must not compare equal")
	}
	if !first.EqualString("foo") || first.EqualString("fo") {
		t.Error("EqualString mismatch")
	}
	var null Substring
	if null.Equal(null) || null.EqualString("") {
		t.Error("null substring must not equal anything")
	}
}

func TestNewSpanPanicsPastEnd(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewSpan(FromString("ab"), 1, 2, 1, 2)
}

func TestSpanString(t *testing.T) {
	sp := NewSpan(FromString("x\ny"), 2, 1, 2, 1)
	if got := sp.String(); got != "<static_data>:2:1" {
		t.Fatalf("String() = %q", got)
	}
}
