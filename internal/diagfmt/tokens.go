package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"m2l/internal/source"
	"m2l/internal/token"
)

// tokenDumpVersion is bumped whenever TokenOutput changes shape.
const tokenDumpVersion = 1

// TokenOutput is the serialised form of one token.
type TokenOutput struct {
	Kind   string `json:"kind" msgpack:"kind"`
	Text   string `json:"text,omitempty" msgpack:"text,omitempty"`
	Path   string `json:"path" msgpack:"path"`
	Offset uint32 `json:"offset" msgpack:"offset"`
	Length uint32 `json:"length" msgpack:"length"`
	Line   uint32 `json:"line" msgpack:"line"`
	Col    uint32 `json:"col" msgpack:"col"`
}

// TokenDump is the msgpack document written by FormatTokensMsgpack.
type TokenDump struct {
	Version int           `msgpack:"version"`
	Tokens  []TokenOutput `msgpack:"tokens"`
}

func tokenOutputs(list *token.List, mode source.PathMode) []TokenOutput {
	out := make([]TokenOutput, 0, list.Len())
	for _, tok := range list.All() {
		rec := TokenOutput{
			Kind:   tok.Kind.String(),
			Path:   source.FormatPath(tok.Span.Src, mode, ""),
			Offset: tok.Span.Offset,
			Length: tok.Span.Length,
			Line:   tok.Span.Line,
			Col:    tok.Span.Col,
		}
		if tok.Kind != token.EOF {
			rec.Text = tok.Span.Text()
		}
		out = append(out, rec)
	}
	return out
}

// FormatTokensPretty выводит токены построчно в отладочном формате
// `[path:line:col] KIND 'lexeme'`.
func FormatTokensPretty(w io.Writer, list *token.List) error {
	for _, tok := range list.All() {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены JSON-массивом.
func FormatTokensJSON(w io.Writer, list *token.List) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(list, source.PathAsIs))
}

// FormatTokensMsgpack writes a versioned binary dump of the token list.
func FormatTokensMsgpack(w io.Writer, list *token.List) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(TokenDump{Version: tokenDumpVersion, Tokens: tokenOutputs(list, source.PathAsIs)})
}

// DecodeTokensMsgpack reads a dump produced by FormatTokensMsgpack.
func DecodeTokensMsgpack(r io.Reader) ([]TokenOutput, error) {
	var dump TokenDump
	if err := msgpack.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("decode token dump: %w", err)
	}
	if dump.Version != tokenDumpVersion {
		return nil, fmt.Errorf("token dump version %d, want %d", dump.Version, tokenDumpVersion)
	}
	return dump.Tokens, nil
}
