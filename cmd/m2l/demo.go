package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"m2l/internal/driver"
	"m2l/internal/source"
)

const demoInput = "x && x > 5"

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the front end over a built-in expression",
		Long:  `Demo scans and parses "` + demoInput + `" and prints the token and node counts`,
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	opts, err := readOutputOptions(cmd)
	if err != nil {
		return err
	}
	res, err := driver.Parse(cmd.Context(), source.FromString(demoInput), driver.ParseOptions{})
	if err != nil {
		return err
	}
	defer res.Destroy()

	if err := printDiagnostics(cmd.ErrOrStderr(), res.Diags, opts); err != nil {
		return err
	}
	if !res.OK {
		return errFailed
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tokens: %d\n", res.Tokens.Len())
	// без нулевого sentinel
	fmt.Fprintf(out, "exprs: %d\n", res.Tree.Counts().Exprs-1)
	printTimings(cmd.ErrOrStderr(), res.Timer, opts)
	return nil
}
