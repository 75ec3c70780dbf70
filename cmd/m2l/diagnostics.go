package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"m2l/internal/diag"
	"m2l/internal/diagfmt"
	"m2l/internal/source"
)

// outputOptions collects the persistent flags that shape human output.
type outputOptions struct {
	color    bool
	quiet    bool
	timings  bool
	short    bool
	max      int
	pathMode source.PathMode
}

func readOutputOptions(cmd *cobra.Command) (outputOptions, error) {
	var opts outputOptions
	flags := cmd.Flags()
	colorMode, err := flags.GetString("color")
	if err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	if opts.color, err = useColor(colorMode, cmd.ErrOrStderr()); err != nil {
		return opts, err
	}
	if opts.quiet, err = flags.GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if opts.short, err = flags.GetBool("short"); err != nil {
		return opts, fmt.Errorf("failed to get short flag: %w", err)
	}
	if opts.max, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.max < 0 {
		return opts, fmt.Errorf("--max-diagnostics must not be negative, got %d", opts.max)
	}
	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return opts, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if opts.pathMode, err = source.ParsePathMode(pathMode); err != nil {
		return opts, err
	}
	return opts, nil
}

// printDiagnostics renders e to w, pretty by default or one line each with
// --short.
func printDiagnostics(w io.Writer, e *diag.Engine, opts outputOptions) error {
	if e.Len() == 0 {
		return nil
	}
	if opts.short {
		lines := strings.SplitAfter(diag.ShortString(e), "\n")
		lines = lines[:len(lines)-1] // trailing ""
		if opts.max > 0 && len(lines) > opts.max {
			rest := len(lines) - opts.max
			lines = append(lines[:opts.max], fmt.Sprintf("... and %d more\n", rest))
		}
		_, err := io.WriteString(w, strings.Join(lines, ""))
		return err
	}
	return diagfmt.Pretty(w, e, diagfmt.PrettyOpts{
		Color:    opts.color,
		PathMode: opts.pathMode,
		Max:      opts.max,
	})
}

func jsonOpts(opts outputOptions) diagfmt.JSONOpts {
	return diagfmt.JSONOpts{PathMode: opts.pathMode, Max: opts.max, IncludePositions: true}
}
