package main

import (
	"fmt"
	"io"

	"m2l/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer, opts outputOptions) {
	if !opts.timings || opts.quiet || timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
}
