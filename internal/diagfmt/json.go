package diagfmt

import (
	"encoding/json"
	"io"

	"m2l/internal/diag"
	"m2l/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Issue    string       `json:"issue"`
	Label    string       `json:"label,omitempty"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput is the root of the JSON document.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, opts JSONOpts) LocationJSON {
	loc := LocationJSON{
		File:      "<unknown>",
		StartByte: span.Offset,
		EndByte:   span.End(),
	}
	if span.Src == nil {
		return loc
	}
	loc.File = source.FormatPath(span.Src, opts.PathMode, opts.BaseDir)
	if opts.IncludePositions {
		end := span.Src.Position(span.End())
		loc.StartLine, loc.StartCol = span.Line, span.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(e *diag.Engine, opts JSONOpts) (DiagnosticsOutput, error) {
	if !e.IsValid() {
		return DiagnosticsOutput{}, ErrInvalidEngine
	}
	limit := e.Len()
	if opts.Max > 0 && opts.Max < limit {
		limit = opts.Max
	}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, limit)}
	for i, d := range e.All() {
		if i == limit {
			break
		}
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Severity: d.Level.String(),
			Code:     d.Issue.ID(),
			Issue:    d.Issue.String(),
			Label:    d.Report.Message,
			Message:  d.Message,
			Location: makeLocation(d.Report.Span, opts),
		})
	}
	out.Count = len(out.Diagnostics)
	return out, nil
}

// FormatDiagnosticsJSON writes the diagnostics of e as an indented JSON document.
func FormatDiagnosticsJSON(w io.Writer, e *diag.Engine, opts JSONOpts) error {
	if w == nil {
		return ErrNilWriter
	}
	output, err := BuildDiagnosticsOutput(e, opts)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
