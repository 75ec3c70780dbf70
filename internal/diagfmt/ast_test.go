package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m2l/internal/ast"
	"m2l/internal/diagfmt"
	"m2l/internal/source"
)

func TestFormatExprTree(t *testing.T) {
	p := run(t, source.FromString("x && x > 5"))
	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatExprTree(&buf, p.tree, p.root))

	want := strings.Join([]string{
		"logical(&&,",
		"    symbol(x)",
		"    compare(>,",
		"        symbol(x)",
		"        int(5)",
		"    )",
		")",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestFormatExprTreeCall(t *testing.T) {
	p := run(t, source.FromString(`add(lhs: -1, "s")++`))
	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatExprTree(&buf, p.tree, p.root))

	want := strings.Join([]string{
		"postfix(++",
		"    call(",
		"        symbol(add)",
		"        lhs:",
		"            prefix(-",
		"                int(1)",
		"            )",
		"        string(s)",
		"    )",
		")",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestFormatExprTreeNull(t *testing.T) {
	tree, err := ast.New(ast.Hints{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatExprTree(&buf, tree, ast.NoExprID))
	assert.Equal(t, "<null>\n", buf.String())
}

func TestFormatExprInline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x && x > 5", "(x && (x > 5))"},
		{"add(lhs: 1, rhs: 2)", "add(lhs: 1, rhs: 2)"},
		{"!f()--", "(!(f()--))"},
		{`a = "q" == true`, `(a = ("q" == true))`},
		{"a +", "<null>"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := run(t, source.FromString(tt.input))
			assert.Equal(t, tt.want, diagfmt.FormatExprInline(p.tree, p.root))
		})
	}
}
