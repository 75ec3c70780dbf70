// Package trace is the m2l logging layer: structured begin/end events for
// the driver, each pipeline phase and, in batch runs, each file.
//
// Enable it from the command line:
//
//	m2l parse --trace=- --trace-level=phase examples/
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse", trace.ParentID(ctx))
//	defer span.End("")
//
// Levels filter by scope: phase keeps driver and phase events, detail adds
// files, debug keeps everything. The error level records phases into a ring
// buffer that the CLI dumps only when a run fails.
package trace
