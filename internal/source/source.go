package source

import (
	"fmt"
	"sync"

	"fortio.org/safecast"
)

// StaticPath is the display path of sources built from in-memory strings.
const StaticPath = "<static_data>"

type (
	// SourceID identifies a Source within a FileSet.
	SourceID uint32
	// Flags records what normalisation was applied while loading.
	Flags uint8
)

const (
	// FlagVirtual marks a source that did not come from disk.
	FlagVirtual Flags = 1 << iota
	FlagHadBOM
	FlagNormalizedCRLF
	FlagNormalizedNFC
)

// LineCol is a 1-based line/column pair.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Source is an immutable byte buffer with the path it was read from.
// Every span, substring and token derived from it borrows its bytes.
type Source struct {
	ID      SourceID
	Path    string
	Content []byte
	Flags   Flags

	lineOnce sync.Once
	lineIdx  []uint32
}

// New wraps content as a source named path.
func New(path string, content []byte) *Source {
	checkLen(content)
	return &Source{Path: path, Content: content}
}

// FromString builds a virtual source over data, named StaticPath.
func FromString(data string) *Source {
	src := New(StaticPath, []byte(data))
	src.Flags |= FlagVirtual
	return src
}

// Len returns the buffer length in bytes.
func (s *Source) Len() uint32 {
	if s == nil {
		return 0
	}
	return checkLen(s.Content)
}

// At returns the byte at off, or 0 past the end.
func (s *Source) At(off uint32) byte {
	if s == nil || off >= s.Len() {
		return 0
	}
	return s.Content[off]
}

// Position resolves an offset to a line/column pair.
func (s *Source) Position(off uint32) LineCol {
	s.lineOnce.Do(func() {
		s.lineIdx = buildLineIndex(s.Content)
	})
	return toLineCol(s.lineIdx, off)
}

// LineBounds returns the [start, end) offsets of the line containing off,
// excluding the terminating newline.
func (s *Source) LineBounds(off uint32) (start, end uint32) {
	n := s.Len()
	if off > n {
		off = n
	}
	start = off
	for start > 0 && s.Content[start-1] != '\n' {
		start--
	}
	end = off
	for end < n && s.Content[end] != '\n' {
		end++
	}
	return start, end
}

func checkLen(content []byte) uint32 {
	n, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return n
}
