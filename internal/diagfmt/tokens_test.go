package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"m2l/internal/diag"
	"m2l/internal/diagfmt"
	"m2l/internal/source"
)

func TestFormatTokensPretty(t *testing.T) {
	p := scan(t, source.FromString("x && x > 5"))
	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatTokensPretty(&buf, p.tokens))

	want := strings.Join([]string{
		"[<static_data>:1:1] SYMBOL 'x'",
		"[<static_data>:1:3] AMP_AMP '&&'",
		"[<static_data>:1:6] SYMBOL 'x'",
		"[<static_data>:1:8] GT '>'",
		"[<static_data>:1:10] INT '5'",
		`[<static_data>:1:11] EOF '\0'`,
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestFormatTokensJSON(t *testing.T) {
	p := scan(t, source.FromString(`f("hi")`))
	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatTokensJSON(&buf, p.tokens))

	var got []diagfmt.TokenOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 5)
	assert.Equal(t, "STRING", got[2].Kind)
	assert.Equal(t, `"hi"`, got[2].Text)
	assert.Equal(t, uint32(2), got[2].Offset)
	assert.Equal(t, uint32(4), got[2].Length)
	assert.Equal(t, "EOF", got[4].Kind)
	assert.Empty(t, got[4].Text)
}

func TestTokensMsgpackRoundTrip(t *testing.T) {
	p := scan(t, source.FromString("a += 1.5"))
	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatTokensMsgpack(&buf, p.tokens))

	got, err := diagfmt.DecodeTokensMsgpack(&buf)
	require.NoError(t, err)

	kinds := make([]string, 0, len(got))
	for _, tok := range got {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []string{"SYMBOL", "PLUS_EQ", "FLOAT", "EOF"}, kinds)
	assert.Equal(t, "1.5", got[2].Text)
	assert.Equal(t, uint32(6), got[2].Col)
}

func TestDecodeTokensMsgpackRejectsOtherVersions(t *testing.T) {
	raw, err := msgpack.Marshal(diagfmt.TokenDump{Version: 99})
	require.NoError(t, err)
	_, err = diagfmt.DecodeTokensMsgpack(bytes.NewReader(raw))
	assert.ErrorContains(t, err, "version 99")

	_, err = diagfmt.DecodeTokensMsgpack(strings.NewReader("not msgpack"))
	assert.Error(t, err)
}

func TestFormatDiagnosticsJSON(t *testing.T) {
	p := run(t, source.FromString("a +\n  @"))
	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatDiagnosticsJSON(&buf, p.diags, diagfmt.JSONOpts{IncludePositions: true}))

	var out diagfmt.DiagnosticsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, 2, out.Count)

	first := out.Diagnostics[0]
	assert.Equal(t, "error", first.Severity)
	assert.Equal(t, diag.IssueInvalidChar.ID(), first.Code)
	assert.Equal(t, "invalid character", first.Issue)
	assert.Equal(t, diagfmt.LocationJSON{
		File: "<static_data>", StartByte: 6, EndByte: 7,
		StartLine: 2, StartCol: 3, EndLine: 2, EndCol: 4,
	}, first.Location)

	assert.Equal(t, diag.IssueExpectedExpression.ID(), out.Diagnostics[1].Code)

	buf.Reset()
	require.NoError(t, diagfmt.FormatDiagnosticsJSON(&buf, p.diags, diagfmt.JSONOpts{Max: 1}))
	var capped diagfmt.DiagnosticsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &capped))
	assert.Equal(t, 1, capped.Count)
	require.Len(t, capped.Diagnostics, 1)
	assert.Zero(t, capped.Diagnostics[0].Location.StartLine)
}

func TestFormatDiagnosticsJSONInvalid(t *testing.T) {
	assert.ErrorIs(t, diagfmt.FormatDiagnosticsJSON(&bytes.Buffer{}, nil, diagfmt.JSONOpts{}), diagfmt.ErrInvalidEngine)
	e, _ := diag.NewEngine()
	assert.ErrorIs(t, diagfmt.FormatDiagnosticsJSON(nil, e, diagfmt.JSONOpts{}), diagfmt.ErrNilWriter)
}
