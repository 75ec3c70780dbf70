package lexer

import (
	"testing"

	"m2l/internal/source"
)

// TestCursorTracksLines проверяет строку и колонку при чтении "ab\nc"
func TestCursorTracksLines(t *testing.T) {
	c := NewCursor(source.FromString("ab\nc"))

	steps := []struct {
		b          byte
		line, col  uint32
		afterLine  uint32
		afterCol   uint32
	}{
		{'a', 1, 1, 1, 2},
		{'b', 1, 2, 1, 3},
		{'\n', 1, 3, 2, 1},
		{'c', 2, 1, 2, 2},
	}
	for i, st := range steps {
		if c.Line != st.line || c.Col != st.col {
			t.Fatalf("step %d: at %d:%d, want %d:%d", i, c.Line, c.Col, st.line, st.col)
		}
		if got := c.Bump(); got != st.b {
			t.Fatalf("step %d: bumped %q, want %q", i, got, st.b)
		}
		if c.Line != st.afterLine || c.Col != st.afterCol {
			t.Fatalf("step %d: after bump at %d:%d", i, c.Line, c.Col)
		}
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("expected EOF")
	}
}

func TestCursorPeekAt(t *testing.T) {
	c := NewCursor(source.FromString("xyz"))
	if c.PeekAt(0) != 'x' || c.PeekAt(2) != 'z' || c.PeekAt(3) != 0 {
		t.Fatal("PeekAt mismatch")
	}
	c.BumpN(10)
	if c.Off != 3 || !c.EOF() {
		t.Fatalf("BumpN must clamp, off=%d", c.Off)
	}
}

func TestCursorMarkAndSpan(t *testing.T) {
	c := NewCursor(source.FromString("let x"))
	c.BumpN(4)
	m := c.Mark()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Offset != 4 || sp.Length != 1 || sp.Line != 1 || sp.Col != 5 {
		t.Fatalf("span = %+v", sp)
	}
	if sp.Text() != "x" {
		t.Fatalf("text = %q", sp.Text())
	}
	c.Reset(m)
	if c.Off != 4 || c.Col != 5 {
		t.Fatalf("reset to %d (col %d)", c.Off, c.Col)
	}
	if !c.Eat('x') || c.Eat('x') {
		t.Fatal("Eat mismatch")
	}
}
