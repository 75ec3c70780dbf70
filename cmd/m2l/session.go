package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"m2l/internal/prof"
	"m2l/internal/trace"
)

// session owns the tracer and profilers of one CLI invocation.
type session struct {
	tracer    trace.Tracer
	heartbeat *trace.Heartbeat
	span      *trace.Span
	profiles  *prof.Session
}

func (s *session) setupProfiling(cmd *cobra.Command) error {
	var opts prof.Options
	var err error
	flags := cmd.Flags()
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	s.profiles, err = prof.Start(opts)
	return err
}

// setupTracing builds the tracer from flags and attaches it, with a root
// driver span, to the command context.
func (s *session) setupTracing(cmd *cobra.Command) error {
	flags := cmd.Flags()
	output, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	heartbeat, err := flags.GetDuration("trace-heartbeat")
	if err != nil {
		return fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace without a level means phase tracing
	if level == trace.LevelOff && output != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return err
	}

	cfg := trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: output,
		Heartbeat:  heartbeat,
	}
	if output == "" || output == "-" {
		cfg.Output = cmd.ErrOrStderr()
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	s.tracer = tracer

	ctx := trace.WithTracer(cmd.Context(), tracer)
	s.span = trace.Begin(tracer, trace.ScopeDriver, cmd.CommandPath(), 0)
	ctx = trace.WithParent(ctx, s.span)
	s.heartbeat = trace.StartHeartbeat(ctx, tracer, heartbeat)
	cmd.SetContext(ctx)
	return nil
}

// finish closes the root span and the tracer. At the error level the ring
// buffer is dumped only when the run failed.
func (s *session) finish(stderr io.Writer, failed bool) {
	if err := s.profiles.Stop(); err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)
	}
	if s.tracer == nil {
		return
	}
	s.heartbeat.Stop()
	detail := "ok"
	if failed {
		detail = "failed"
	}
	s.span.End(detail)

	if failed && s.tracer.Level() == trace.LevelError {
		if ring, ok := trace.RingOf(s.tracer); ok {
			fmt.Fprintln(stderr, "trace (last events):")
			if err := ring.Dump(stderr, trace.FormatText); err != nil {
				fmt.Fprintf(stderr, "trace: dump error: %v\n", err)
			}
		}
	}
	if err := s.tracer.Flush(); err != nil {
		fmt.Fprintf(stderr, "trace: flush error: %v\n", err)
	}
	if err := s.tracer.Close(); err != nil {
		fmt.Fprintf(stderr, "trace: close error: %v\n", err)
	}
}
