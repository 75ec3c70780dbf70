package driver

import (
	"context"
	"fmt"
	"strconv"

	"m2l/internal/diag"
	"m2l/internal/lexer"
	"m2l/internal/observ"
	"m2l/internal/source"
	"m2l/internal/token"
	"m2l/internal/trace"
)

// TokenizeResult holds the output of the scan phase. OK is false when the
// scanner raised an error-level diagnostic.
type TokenizeResult struct {
	Source *source.Source
	Tokens *token.List
	Diags  *diag.Engine
	OK     bool
}

// Destroy releases the token and diagnostic storage.
func (r *TokenizeResult) Destroy() {
	if r == nil {
		return
	}
	r.Tokens.Destroy()
	r.Diags.Destroy()
}

// Tokenize scans src into a fresh token list.
func Tokenize(ctx context.Context, src *source.Source) (*TokenizeResult, error) {
	return tokenize(ctx, src, nil)
}

func tokenize(ctx context.Context, src *source.Source, timer *observ.Timer) (*TokenizeResult, error) {
	if src == nil {
		return nil, fmt.Errorf("tokenize: nil source")
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePhase, "scan", trace.ParentID(ctx))
	idx := timer.Begin("scan")

	diags, err := diag.NewEngine()
	if err != nil {
		span.End("error")
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	tokens, err := token.NewList()
	if err != nil {
		diags.Destroy()
		span.End("error")
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	sc, err := lexer.New(src, diags, tokens)
	if err != nil {
		tokens.Destroy()
		diags.Destroy()
		span.End("error")
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	ok := sc.Scan()

	if tracer.Level().ShouldEmit(trace.ScopeNode) {
		for _, tok := range tokens.All() {
			trace.Point(tracer, trace.ScopeNode, "token", tok.String(), span.ID())
		}
	}
	note := strconv.Itoa(tokens.Len()) + " tokens"
	timer.End(idx, note)
	span.WithExtra("tokens", strconv.Itoa(tokens.Len())).
		WithExtra("diagnostics", strconv.Itoa(diags.Len())).
		End(okDetail(ok))

	return &TokenizeResult{Source: src, Tokens: tokens, Diags: diags, OK: ok}, nil
}

func okDetail(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
