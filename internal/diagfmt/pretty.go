package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"m2l/internal/diag"
	"m2l/internal/source"
)

var (
	// ErrInvalidEngine is returned when the engine is nil or destroyed.
	ErrInvalidEngine = errors.New("diagfmt: invalid diagnostic engine")
	// ErrNilWriter is returned when there is nowhere to write.
	ErrNilWriter = errors.New("diagfmt: nil writer")
)

// Renderer prints diagnostics as annotated source snippets.
type Renderer struct {
	opts   PrettyOpts
	red    *color.Color
	yellow *color.Color
	blue   *color.Color
}

// NewRenderer builds a renderer whose palette is fixed by opts.Color.
func NewRenderer(opts PrettyOpts) *Renderer {
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}
	paint := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return &Renderer{
		opts:   opts,
		red:    paint(color.FgRed, color.Bold),
		yellow: paint(color.FgYellow, color.Bold),
		blue:   paint(color.FgBlue),
	}
}

// Pretty renders every diagnostic of e to w.
func Pretty(w io.Writer, e *diag.Engine, opts PrettyOpts) error {
	return NewRenderer(opts).RenderAll(w, e)
}

// RenderAll writes the diagnostics in emission order, honouring opts.Max.
func (r *Renderer) RenderAll(w io.Writer, e *diag.Engine) error {
	if w == nil {
		fmt.Fprintln(r.opts.ErrOut, "<nil output stream for diagnostics>")
		return ErrNilWriter
	}
	if !e.IsValid() {
		fmt.Fprintln(r.opts.ErrOut, "<invalid diagnostic engine>")
		return ErrInvalidEngine
	}
	shown := 0
	for _, d := range e.All() {
		if r.opts.Max > 0 && shown == r.opts.Max {
			_, err := fmt.Fprintf(w, "... and %d more\n", e.Len()-shown)
			return err
		}
		if err := r.Render(w, d); err != nil {
			return err
		}
		shown++
	}
	return nil
}

// Render writes a single diagnostic.
func (r *Renderer) Render(w io.Writer, d diag.Diagnostic) error {
	if w == nil {
		return ErrNilWriter
	}
	var b strings.Builder
	level := r.levelColor(d.Level)
	span := d.Report.Span

	b.WriteString(level.Sprintf("%s: ", d.Level))
	b.WriteString(d.Issue.String())
	b.WriteString(" in ")
	b.WriteString(r.blue.Sprintf("%s:%d:%d:", r.path(span.Src), span.Line, span.Col))
	b.WriteByte('\n')

	if span.IsValid() {
		r.snippet(&b, span, d.Report.Message, level)
	} else if d.Report.Message != "" {
		b.WriteString(d.Report.Message)
		b.WriteByte('\n')
	}

	b.WriteString(r.blue.Sprint("help: "))
	b.WriteString(d.Message)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) levelColor(l diag.Level) *color.Color {
	switch l {
	case diag.LevelError:
		return r.red
	case diag.LevelWarn:
		return r.yellow
	default:
		return r.blue
	}
}

func (r *Renderer) path(src *source.Source) string {
	if src == nil {
		return "<unknown>"
	}
	return source.FormatPath(src, r.opts.PathMode, r.opts.BaseDir)
}

// snippet writes one source line plus underline per line the span touches.
func (r *Renderer) snippet(b *strings.Builder, span source.Span, msg string, level *color.Color) {
	src := span.Src
	lines := 1 + strings.Count(span.Text(), "\n")
	last, err := safecast.Conv[uint32](lines - 1)
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	width := len(strconv.FormatUint(uint64(span.Line+last), 10))
	gutter := strings.Repeat(" ", width+2)

	lineStart, _ := src.LineBounds(span.Offset)
	for ln := range lines {
		start, end := src.LineBounds(lineStart)
		no, _ := safecast.Conv[uint32](ln)

		b.WriteString(r.blue.Sprintf(" %*d | ", width, span.Line+no))
		b.Write(src.Content[start:end])
		b.WriteByte('\n')

		b.WriteString(r.blue.Sprint(gutter + "| "))
		b.WriteString(level.Sprint(underline(src.Content[start:end], start, span, ln == 0)))
		if ln == lines-1 && msg != "" {
			b.WriteByte(' ')
			b.WriteString(msg)
		}
		b.WriteByte('\n')

		lineStart = min(end+1, src.Len())
	}
}

// underline marks the part of line (which begins at offset base) covered by
// span: `^` under the first character, `~` under the rest. It is as wide as
// the line so the message always starts after it. Widths follow terminal
// cells so wide runes stay aligned; tabs outside the span are kept.
func underline(line []byte, base uint32, span source.Span, first bool) string {
	var u strings.Builder
	off := base
	for i := 0; i < len(line); {
		ch, size := utf8.DecodeRune(line[i:])
		cells := runewidth.RuneWidth(ch)
		if ch == '\t' || (ch == utf8.RuneError && size == 1) {
			cells = 1
		}
		inSpan := off >= span.Offset && off < span.End()
		switch {
		case first && off == span.Offset:
			u.WriteByte('^')
			u.WriteString(strings.Repeat("~", max(cells-1, 0)))
		case inSpan:
			u.WriteString(strings.Repeat("~", cells))
		case ch == '\t':
			u.WriteByte('\t')
		default:
			u.WriteString(strings.Repeat(" ", cells))
		}
		i += size
		off += uint32(size)
	}
	// Zero-length spans at end of line (EOF) still get a caret.
	if first && span.Offset == off {
		u.WriteByte('^')
	}
	return u.String()
}
