package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"m2l/internal/source"
)

// Cursor is a byte position in a source together with its line and column.
type Cursor struct {
	Src  *source.Source
	Off  uint32
	Line uint32 // 1-based
	Col  uint32 // 1-based
	// Limit is the exclusive upper bound for Off.
	Limit uint32
}

// NewCursor places a cursor at the first byte of src.
func NewCursor(src *source.Source) Cursor {
	return Cursor{Src: src, Line: 1, Col: 1, Limit: src.Len()}
}

// EOF проверяет, достигнут ли конец буфера
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt returns the byte n positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.Src.Content[c.Off+n]
}

// Bump consumes one byte, keeping the line and column in step.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return b
}

// BumpN consumes n bytes that are known not to contain a newline.
func (c *Cursor) BumpN(n int) {
	un, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("bump overflow: %w", err))
	}
	if c.Off+un > c.Limit {
		un = c.Limit - c.Off
	}
	c.Off += un
	c.Col += un
}

// Eat consumes the current byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Src.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}

// Mark is a saved cursor position used to build spans.
type Mark struct {
	off, line, col uint32
}

// Mark remembers the current position.
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.Line, col: c.Col}
}

// SpanFrom returns the span between m and the current position. The span
// takes the line and column of m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.NewSpan(c.Src, m.off, c.Off-m.off, m.line, m.col)
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.Off, c.Line, c.Col = m.off, m.line, m.col
}
