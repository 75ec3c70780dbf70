package diagfmt

import (
	"io"

	"m2l/internal/source"
)

// PrettyOpts configures the snippet renderer.
type PrettyOpts struct {
	// Color turns on ANSI escapes. It is decided once by the caller; the
	// renderer never probes the terminal itself.
	Color    bool
	PathMode source.PathMode
	BaseDir  string
	// Max limits how many diagnostics are printed, 0 - без ограничений.
	Max int
	// ErrOut receives complaints about unusable inputs. Defaults to os.Stderr.
	ErrOut io.Writer
}

// JSONOpts configures machine-readable diagnostic output.
type JSONOpts struct {
	PathMode         source.PathMode
	BaseDir          string
	Max              int
	IncludePositions bool // добавить line/col
}
