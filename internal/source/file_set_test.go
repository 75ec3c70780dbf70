package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadNormalizes(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		want  string
		flags Flags
	}{
		{"plain", []byte("x + 1\n"), "x + 1\n", 0},
		{"bom", []byte("\xEF\xBB\xBFx"), "x", FlagHadBOM},
		{"crlf", []byte("a\r\nb"), "a\nb", FlagNormalizedCRLF},
		// "e" followed by a combining acute accent composes to U+00E9
		{"nfc", []byte("\"e\u0301\""), "\"\u00e9\"", FlagNormalizedNFC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			src, err := fs.Load(writeFile(t, "in.m2l", tt.raw))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(src.Content) != tt.want {
				t.Errorf("content = %q, want %q", src.Content, tt.want)
			}
			if src.Flags != tt.flags {
				t.Errorf("flags = %b, want %b", src.Flags, tt.flags)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewFileSet().Load(filepath.Join(t.TempDir(), "nope.m2l")); err == nil {
		t.Fatal("expected error")
	}
}

func TestFileSetIDsAndLookup(t *testing.T) {
	fs := NewFileSet()
	a := fs.Add("dir/../a.m2l", []byte("1"), 0)
	b := fs.AddVirtual(StaticPath, []byte("2"))
	a2 := fs.Add("a.m2l", []byte("3"), 0)

	if a.ID != 0 || b.ID != 1 || a2.ID != 2 {
		t.Fatalf("ids = %d %d %d", a.ID, b.ID, a2.ID)
	}
	if a.Path != "a.m2l" {
		t.Errorf("path not normalised: %q", a.Path)
	}
	if got, ok := fs.Lookup("a.m2l"); !ok || got != a2 {
		t.Errorf("Lookup must return the latest version")
	}
	if got, ok := fs.Lookup(StaticPath); !ok || got != b {
		t.Errorf("virtual lookup failed")
	}
	if _, ok := fs.Get(3); ok {
		t.Error("Get past the end must fail")
	}
	if fs.Len() != 3 {
		t.Errorf("Len = %d", fs.Len())
	}
}

func TestFormatPathKeepsVirtualNames(t *testing.T) {
	src := FromString("x")
	for _, mode := range []PathMode{PathAsIs, PathAbsolute, PathRelative, PathBasename} {
		if got := FormatPath(src, mode, ""); got != StaticPath {
			t.Errorf("mode %d: %q", mode, got)
		}
	}
}

func TestFormatPathBasename(t *testing.T) {
	src := New("some/dir/file.m2l", nil)
	if got := FormatPath(src, PathBasename, ""); got != "file.m2l" {
		t.Fatalf("got %q", got)
	}
}

func TestLineBounds(t *testing.T) {
	src := FromString("first\nsecond\n")
	start, end := src.LineBounds(8)
	if string(src.Content[start:end]) != "second" {
		t.Fatalf("line = %q", src.Content[start:end])
	}
	start, end = src.LineBounds(src.Len())
	if start != end || start != src.Len() {
		t.Fatalf("bounds at EOF = %d,%d", start, end)
	}
}
