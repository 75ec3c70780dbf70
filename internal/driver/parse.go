package driver

import (
	"context"
	"fmt"
	"strconv"

	"m2l/internal/ast"
	"m2l/internal/diag"
	"m2l/internal/observ"
	"m2l/internal/parser"
	"m2l/internal/source"
	"m2l/internal/token"
	"m2l/internal/trace"
)

// ParseOptions tune one pipeline run.
type ParseOptions struct {
	// StopOnScanError skips the parser when scanning failed.
	StopOnScanError bool
	Hints           ast.Hints
	// Timer receives scan and parse phases; a fresh one is made when nil.
	Timer *observ.Timer
}

// ParseResult is everything one pipeline run produced. Root is NoExprID when
// parsing failed or was skipped.
type ParseResult struct {
	Source *source.Source
	Tokens *token.List
	Diags  *diag.Engine
	Tree   *ast.Tree
	Root   ast.ExprID
	OK     bool
	Timer  *observ.Timer
}

// Destroy releases all arena-backed storage of the result.
func (r *ParseResult) Destroy() {
	if r == nil {
		return
	}
	r.Tree.Destroy()
	r.Tokens.Destroy()
	r.Diags.Destroy()
}

// Parse runs scanner and parser over src. Diagnostics never surface as
// errors; an error means the pipeline itself could not be set up.
func Parse(ctx context.Context, src *source.Source, opts ParseOptions) (*ParseResult, error) {
	timer := opts.Timer
	if timer == nil {
		timer = observ.NewTimer()
	}

	tok, err := tokenize(ctx, src, timer)
	if err != nil {
		return nil, err
	}
	res := &ParseResult{
		Source: src,
		Tokens: tok.Tokens,
		Diags:  tok.Diags,
		Timer:  timer,
	}
	if !tok.OK && opts.StopOnScanError {
		trace.Point(trace.FromContext(ctx), trace.ScopePhase, "parse", "skipped", trace.ParentID(ctx))
		return res, nil
	}

	res.Tree, err = ast.New(opts.Hints)
	if err != nil {
		res.Destroy()
		return nil, fmt.Errorf("parse: %w", err)
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse", trace.ParentID(ctx))
	idx := timer.Begin("parse")
	p, err := parser.New(src, res.Tokens, res.Diags, res.Tree)
	if err != nil {
		timer.End(idx, "")
		span.End("error")
		res.Destroy()
		return nil, fmt.Errorf("parse: %w", err)
	}
	res.Root, res.OK = p.Parse()

	counts := res.Tree.Counts()
	timer.End(idx, strconv.Itoa(counts.Exprs-1)+" exprs")
	span.WithExtra("exprs", strconv.Itoa(counts.Exprs-1)).
		WithExtra("diagnostics", strconv.Itoa(res.Diags.Len())).
		End(okDetail(res.OK))
	return res, nil
}

// ParseFile loads path into fs and parses it.
func ParseFile(ctx context.Context, fs *source.FileSet, path string, opts ParseOptions) (*ParseResult, error) {
	src, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return Parse(ctx, src, opts)
}
