// Package driver wires the front end together: it loads sources, runs the
// scanner and parser over them, and reports phases to the tracer, the
// timer and an optional progress sink.
package driver
