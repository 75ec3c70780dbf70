package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"m2l/internal/diagfmt"
	"m2l/internal/driver"
	"m2l/internal/observ"
	"m2l/internal/source"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.m2l|directory>",
		Short: "Parse m2l source and print the expression tree",
		Long:  `Parse reads one expression per file and prints its tree. A directory is parsed file by file in parallel`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|inline|json)")
	cmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	cmd.Flags().Int("jobs", 0, "max parallel files (0 = GOMAXPROCS)")
	cmd.Flags().Bool("stop-on-scan-error", false, "skip parsing when scanning failed")
	return cmd
}

type parseFlags struct {
	format    string
	ui        uiMode
	jobs      int
	stopEarly bool
}

func readParseFlags(cmd *cobra.Command) (parseFlags, error) {
	var pf parseFlags
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return pf, fmt.Errorf("failed to get format flag: %w", err)
	}
	pf.format = strings.ToLower(format)
	switch pf.format {
	case "tree", "inline", "json":
	default:
		return pf, fmt.Errorf("unknown format: %s", format)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return pf, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if pf.ui, err = readUIMode(uiValue); err != nil {
		return pf, err
	}
	if pf.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return pf, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if pf.stopEarly, err = cmd.Flags().GetBool("stop-on-scan-error"); err != nil {
		return pf, fmt.Errorf("failed to get stop-on-scan-error flag: %w", err)
	}
	return pf, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	pf, err := readParseFlags(cmd)
	if err != nil {
		return err
	}
	opts, err := readOutputOptions(cmd)
	if err != nil {
		return err
	}

	target := args[0]
	if target != "-" {
		st, err := os.Stat(target)
		if err != nil {
			return err
		}
		if st.IsDir() {
			return runParseDir(cmd, target, pf, opts)
		}
	}

	fs := source.NewFileSet()
	src, err := loadSource(fs, target, cmd.InOrStdin())
	if err != nil {
		return err
	}
	res, err := driver.Parse(cmd.Context(), src, driver.ParseOptions{StopOnScanError: pf.stopEarly})
	if err != nil {
		return err
	}
	defer res.Destroy()

	if err := writeParseResult(cmd, res, pf, opts, false); err != nil {
		return err
	}
	printTimings(cmd.ErrOrStderr(), res.Timer, opts)
	if !res.OK {
		return errFailed
	}
	return nil
}

func runParseDir(cmd *cobra.Command, dir string, pf parseFlags, opts outputOptions) error {
	files, err := driver.CollectFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !opts.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "no %s files in %s\n", driver.Ext, dir)
		}
		return nil
	}

	fs := source.NewFileSet()
	fs.SetBaseDir(dir)
	timer := observ.NewTimer()
	batch := driver.BatchOptions{
		Parse: driver.ParseOptions{StopOnScanError: pf.stopEarly, Timer: timer},
		Jobs:  pf.jobs,
	}

	var results []driver.FileResult
	if pf.format != "json" && shouldUseTUI(pf.ui, cmd.OutOrStdout()) {
		results, err = runParseWithUI(cmd.Context(), cmd.OutOrStdout(), "parsing "+dir, fs, files, batch)
	} else {
		results, err = driver.ParseFiles(cmd.Context(), fs, files, batch)
	}
	defer func() {
		for _, r := range results {
			r.Result.Destroy()
		}
	}()
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", r.Err)
			continue
		}
		if !r.Result.OK {
			failed++
		}
		if err := writeParseResult(cmd, r.Result, pf, opts, true); err != nil {
			return err
		}
	}
	printTimings(cmd.ErrOrStderr(), timer, opts)
	if !opts.quiet && pf.format != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "parsed %d files, %d failed\n", len(results), failed)
	}
	if failed > 0 {
		return errFailed
	}
	return nil
}

// parseJSON is one line of `parse --format json` output.
type parseJSON struct {
	Path        string                    `json:"path"`
	OK          bool                      `json:"ok"`
	Expr        string                    `json:"expr,omitempty"`
	Tokens      int                       `json:"tokens"`
	Exprs       int                       `json:"exprs"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
}

func writeParseResult(cmd *cobra.Command, res *driver.ParseResult, pf parseFlags, opts outputOptions, header bool) error {
	out := cmd.OutOrStdout()
	path := source.FormatPath(res.Source, opts.pathMode, "")

	if pf.format == "json" {
		diags, err := diagfmt.BuildDiagnosticsOutput(res.Diags, jsonOpts(opts))
		if err != nil {
			return err
		}
		payload := parseJSON{
			Path:        path,
			OK:          res.OK,
			Tokens:      res.Tokens.Len(),
			Diagnostics: diags,
		}
		if res.Tree != nil {
			payload.Exprs = res.Tree.Counts().Exprs - 1
			if res.Root.IsValid() {
				payload.Expr = diagfmt.FormatExprInline(res.Tree, res.Root)
			}
		}
		return json.NewEncoder(out).Encode(payload)
	}

	if err := printDiagnostics(cmd.ErrOrStderr(), res.Diags, opts); err != nil {
		return err
	}
	if !res.Root.IsValid() {
		return nil
	}
	if header {
		fmt.Fprintf(out, "== %s\n", path)
	}
	if pf.format == "inline" {
		_, err := io.WriteString(out, diagfmt.FormatExprInline(res.Tree, res.Root)+"\n")
		return err
	}
	return diagfmt.FormatExprTree(out, res.Tree, res.Root)
}
