package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"m2l/internal/diagfmt"
	"m2l/internal/driver"
	"m2l/internal/observ"
	"m2l/internal/source"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.m2l",
		Short: "Tokenize an m2l source file",
		Long:  `Tokenize breaks an m2l source file (or - for stdin) into its tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	opts, err := readOutputOptions(cmd)
	if err != nil {
		return err
	}

	src, err := loadSource(source.NewFileSet(), args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	timer := observ.NewTimer()
	idx := timer.Begin("tokenize")
	res, err := driver.Tokenize(cmd.Context(), src)
	timer.End(idx, "")
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	defer res.Destroy()

	if err := printDiagnostics(cmd.ErrOrStderr(), res.Diags, opts); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, res.Tokens)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(out, res.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(out, res.Tokens)
	}
	if err != nil {
		return err
	}
	printTimings(cmd.ErrOrStderr(), timer, opts)
	if !res.OK {
		return errFailed
	}
	return nil
}

// loadSource reads path, or stdin for "-".
func loadSource(fs *source.FileSet, path string, stdin io.Reader) (*source.Source, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return fs.AddVirtual("<stdin>", data), nil
	}
	src, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return src, nil
}
