package buffer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/s-expr-reader/lexer"
)

func texts(tokens ...*lexer.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, tok.Text())
	}
	return out
}

func TestBufferAcrossLines(t *testing.T) {
	buf := New(Text("( +", "15", "12 )"))

	assert.Equal(t, "(", buf.Pop().Text())
	assert.Equal(t, "+", buf.Pop().Text())
	assert.Equal(t, "15", buf.Current().Text())
	assert.Equal(t, "1: ( +\n2:  >> 15", buf.String())

	assert.Equal(t, "15", buf.Pop().Text())
	assert.Equal(t, "12", buf.Current().Text())
	assert.Equal(t, "12", buf.Pop().Text())
	assert.Equal(t, "1: ( +\n2: 15\n3: 12 >> )", buf.String())

	assert.Equal(t, ")", buf.Pop().Text())
	assert.Equal(t, "1: ( +\n2: 15\n3: 12 ) >>", buf.String())

	assert.Nil(t, buf.Pop())
	assert.Nil(t, buf.Current())
	assert.NoError(t, buf.Err())
}

func TestBufferCurrentDoesNotConsume(t *testing.T) {
	buf := New(Text("a b"))

	assert.Equal(t, "a", buf.Current().Text())
	assert.Equal(t, "a", buf.Current().Text())
	assert.Equal(t, "a", buf.Pop().Text())
	assert.Equal(t, "b", buf.Current().Text())
}

func TestBufferLazy(t *testing.T) {
	src := &countingSource{Source: Text("a", "b")}
	buf := New(src)
	assert.Equal(t, 0, src.calls)
	assert.Equal(t, "", buf.String())

	assert.Equal(t, "a", buf.Pop().Text())
	assert.Equal(t, 1, src.calls)

	// the end of a line does not trigger a pull by itself
	assert.False(t, buf.MoreOnLine())
	assert.Equal(t, 1, src.calls)

	assert.Equal(t, "b", buf.Current().Text())
	assert.Equal(t, 2, src.calls)
	assert.Equal(t, 2, buf.LineNumber())
}

func TestBufferEmptySource(t *testing.T) {
	src := &countingSource{Source: Lines()}
	buf := New(src)

	for i := 0; i < 3; i++ {
		assert.Nil(t, buf.Current())
		assert.Nil(t, buf.Pop())
	}
	assert.NoError(t, buf.Err())
	assert.Equal(t, "", buf.String())

	// an exhausted source is not asked again
	assert.Equal(t, 1, src.calls)
}

func TestBufferSkipsEmptyLines(t *testing.T) {
	buf := New(Text("", "", "1", "", "2", ""))

	assert.Equal(t, []string{"1", "2", "<nil>", "<nil>"}, texts(buf.Pop(), buf.Pop(), buf.Pop(), buf.Pop()))
	assert.Equal(t, 6, buf.LineNumber())
}

func TestBufferOnlyEmptyLines(t *testing.T) {
	buf := New(Lines(lexer.Line{}, lexer.Line{}))
	assert.Nil(t, buf.Current())
	assert.Nil(t, buf.Pop())
}

func TestBufferHistory(t *testing.T) {
	buf := New(Text("a", "b", "c", "d", "e f"))

	for i := 0; i < 5; i++ {
		buf.Pop()
	}
	assert.Equal(t, "2: b\n3: c\n4: d\n5: e >> f", buf.String())

	buf.Pop()
	assert.Nil(t, buf.Pop())
	assert.Equal(t, "2: b\n3: c\n4: d\n5: e f >>", buf.String())
}

func TestBufferLineNumberWidth(t *testing.T) {
	lines := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		lines = append(lines, "x")
	}
	buf := New(Text(lines...))

	for i := 0; i < 10; i++ {
		buf.Pop()
	}
	assert.Equal(t, " 7: x\n 8: x\n 9: x\n10: x >>", buf.String())
}

func TestBufferStringIsPure(t *testing.T) {
	buf := New(Text("(1 2)"))
	buf.Pop()

	before := buf.String()
	assert.Equal(t, before, buf.String())
	assert.Equal(t, "1", buf.Current().Text())
}

func TestBufferSourceError(t *testing.T) {
	errBroken := errors.New("broken")
	buf := New(&failingSource{lines: []lexer.Line{mustTokenize(t, "a")}, err: errBroken})

	assert.Equal(t, "a", buf.Pop().Text())
	assert.Nil(t, buf.Current())
	assert.ErrorIs(t, buf.Err(), errBroken)
	assert.Nil(t, buf.Pop())
}

func TestBufferTokenizerError(t *testing.T) {
	buf := New(Text("(a", `"b`))

	assert.Equal(t, "(", buf.Pop().Text())
	assert.Equal(t, "a", buf.Pop().Text())
	assert.Nil(t, buf.Pop())
	assert.ErrorIs(t, buf.Err(), lexer.ErrUnterminatedString)
}

type countingSource struct {
	Source
	calls int
}

func (s *countingSource) NextLine() (lexer.Line, error) {
	s.calls++
	return s.Source.NextLine()
}

type failingSource struct {
	lines []lexer.Line
	err   error
}

func (s *failingSource) NextLine() (lexer.Line, error) {
	if len(s.lines) == 0 {
		return nil, s.err
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func mustTokenize(t *testing.T, text string) lexer.Line {
	line, err := lexer.Tokenize(text)
	require.NoError(t, err)
	return line
}
