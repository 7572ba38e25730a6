package sexpr

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/s-expr-reader/ast"
	"github.com/xiam/s-expr-reader/parser"
)

func TestParse(t *testing.T) {
	exprs, err := Parse([]byte(`(when
		((= 1 0) 11)
		((= 1 1) 99 110 121)
		((= 2 1) 33)
	)
	'done`))
	require.NoError(t, err)
	require.Len(t, exprs, 2)

	assert.Equal(t, "(when ((= 1 0) 11) ((= 1 1) 99 110 121) ((= 2 1) 33))", exprs[0].String())
	assert.Equal(t, "(quote done)", exprs[1].String())
	assert.Equal(t, 4, ast.Len(exprs[0]))
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "\n\n", "; nothing here\n"} {
		exprs, err := Parse([]byte(in))
		require.NoError(t, err)
		assert.Empty(t, exprs)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte("(1 2\n(3"))
	assert.ErrorIs(t, err, parser.ErrUnexpectedEOF)
}

func TestReadLine(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(+ 1 (+ 23 4))`, `(+ 1 (+ 23 4))`},
		{`'hello`, `(quote hello)`},
		{`(1 . 2)`, `(1 . 2)`},
		{`(1 2 . 3)`, `(1 2 . 3)`},
		{`(1 . (2 . (3 . ())))`, `(1 2 3)`},
		{`nil`, `()`},
		{`"a \"b\""`, `"a \"b\""`},
		{`1.5 2`, `1.5`},
	}

	for _, tc := range testCases {
		t.Run(tc.In, func(t *testing.T) {
			expr, err := ReadLine(tc.In)
			require.NoError(t, err)
			assert.Equal(t, tc.Out, expr.String())
		})
	}
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("(1\n2 .\n'(3 4))\n4\n"))

	expr, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "(1 2 quote (3 4))", expr.String())

	expr, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, "4", expr.String())

	_, err = r.Read()
	assert.ErrorIs(t, err, parser.ErrEndOfInput)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReaderSourceError(t *testing.T) {
	_, err := NewReader(brokenReader{}).Read()
	require.Error(t, err)
	assert.False(t, errors.Is(err, parser.ErrEndOfInput))
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestReaderOptions(t *testing.T) {
	r := NewReader(strings.NewReader("((1))"), parser.WithMaxDepth(1))
	_, err := r.Read()
	assert.ErrorIs(t, err, parser.ErrTooDeep)

	exprs, err := NewReader(io.MultiReader(strings.NewReader("a b\n"), strings.NewReader("c"))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, exprs, 3)
}

func TestParseLongLine(t *testing.T) {
	in := "(" + strings.Repeat("x ", 40000) + ")\n"

	exprs, err := Parse([]byte(in))
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Equal(t, 40000, ast.Len(exprs[0]))

	expr, err := NewReader(strings.NewReader(in)).Read()
	require.NoError(t, err)
	assert.Equal(t, 40000, ast.Len(expr))
}
