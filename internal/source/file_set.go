package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// FileSet owns the sources of one invocation and hands out stable IDs.
type FileSet struct {
	sources []*Source
	index   map[string]SourceID // path -> latest id
	baseDir string
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		sources: make([]*Source, 0, 4),
		index:   make(map[string]SourceID),
	}
}

// SetBaseDir sets the directory used by PathRelative.
func (fs *FileSet) SetBaseDir(dir string) {
	fs.baseDir = dir
}

// BaseDir returns the configured base directory or the working directory.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fs.baseDir
}

// Add stores already normalised bytes and returns the new source.
// A path added twice gets a fresh ID; lookups by path see the latest one.
func (fs *FileSet) Add(path string, content []byte, flags Flags) *Source {
	id, err := safecast.Conv[uint32](len(fs.sources))
	if err != nil {
		panic(fmt.Errorf("source count overflow: %w", err))
	}
	src := New(normalizePath(path), content)
	src.ID = SourceID(id)
	src.Flags = flags
	fs.sources = append(fs.sources, src)
	fs.index[src.Path] = src.ID
	return src
}

// AddVirtual adds an in-memory source (stdin, tests, generated text).
func (fs *FileSet) AddVirtual(name string, content []byte) *Source {
	src := fs.Add(name, content, FlagVirtual)
	// виртуальные имена вроде <static_data> не нормализуем
	src.Path = name
	return src
}

// Load reads path from disk, strips a BOM, folds CRLF to LF and
// normalises the text to NFC before adding it.
func (fs *FileSet) Load(path string) (*Source, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var flags Flags
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FlagHadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FlagNormalizedCRLF
	}
	if !norm.NFC.IsNormal(content) {
		content = norm.NFC.Bytes(content)
		flags |= FlagNormalizedNFC
	}
	return fs.Add(path, content, flags), nil
}

// Get returns the source with the given id.
func (fs *FileSet) Get(id SourceID) (*Source, bool) {
	if int(id) >= len(fs.sources) {
		return nil, false
	}
	return fs.sources[id], true
}

// Lookup finds the latest source added under path.
func (fs *FileSet) Lookup(path string) (*Source, bool) {
	id, ok := fs.index[normalizePath(path)]
	if !ok {
		id, ok = fs.index[path]
	}
	if !ok {
		return nil, false
	}
	return fs.sources[id], true
}

// Len returns the number of sources.
func (fs *FileSet) Len() int {
	return len(fs.sources)
}

// PathMode selects how a source path is displayed.
type PathMode uint8

const (
	PathAsIs PathMode = iota
	PathAbsolute
	PathRelative
	PathBasename
)

// ParsePathMode converts a flag value into a PathMode.
func ParsePathMode(s string) (PathMode, error) {
	switch s {
	case "", "auto", "as-is":
		return PathAsIs, nil
	case "absolute":
		return PathAbsolute, nil
	case "relative":
		return PathRelative, nil
	case "basename":
		return PathBasename, nil
	default:
		return PathAsIs, fmt.Errorf("invalid path mode %q (expected auto|absolute|relative|basename)", s)
	}
}

// FormatPath renders path according to mode. Virtual names are never rewritten.
func FormatPath(src *Source, mode PathMode, baseDir string) string {
	if src == nil {
		return ""
	}
	if src.Flags&FlagVirtual != 0 {
		return src.Path
	}
	switch mode {
	case PathAbsolute:
		if abs, err := AbsolutePath(src.Path); err == nil {
			return abs
		}
	case PathRelative:
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(src.Path, baseDir); err == nil {
			return rel
		}
	case PathBasename:
		return filepath.Base(src.Path)
	}
	return src.Path
}
