package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/chzyer/readline"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/s-expr-reader/parser"
)

type scriptedReader struct {
	lines   []string
	end     error
	prompt  string
	prompts []string
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *scriptedReader) Readline() (string, error) {
	r.prompts = append(r.prompts, r.prompt)
	if len(r.lines) == 0 {
		if r.end != nil {
			return "", r.end
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func run(t *testing.T, rl *scriptedReader, opts ...parser.Option) string {
	var out bytes.Buffer
	r := New(rl, &out, "> ", testr.New(t), opts...)
	require.NoError(t, r.Run(context.Background()))
	return out.String()
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
		out   string
	}{
		{
			name:  "single expression",
			lines: []string{"(1 2 3)"},
			out:   "(1 2 3)\n",
		},
		{
			name:  "several on one line",
			lines: []string{"1 'a (b . c)"},
			out:   "1\n(quote a)\n(b . c)\n",
		},
		{
			name:  "across lines",
			lines: []string{"(+ 1", "2)"},
			out:   "(+ 1 2)\n",
		},
		{
			name:  "empty input",
			lines: nil,
			out:   "",
		},
		{
			name:  "syntax error then recovery",
			lines: []string{")", "42"},
			out:   "SyntaxError: 1:1: unexpected token: )\n1: ) >>\n42\n",
		},
		{
			name:  "rest of line dropped after error",
			lines: []string{"(1 . 2 3) 4", "5"},
			out:   "SyntaxError: 1:8: expected one element after .: 3\n1: ( 1 . 2 >> 3 ) 4\n5\n",
		},
		{
			name:  "tokenizer error",
			lines: []string{`"open`, "6"},
			out:   "Error: reading source: 1:1: unterminated string: \"open\n6\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rl := &scriptedReader{lines: tc.lines}
			assert.Equal(t, tc.out, run(t, rl))
		})
	}
}

func TestRunPrompts(t *testing.T) {
	rl := &scriptedReader{lines: []string{"(a", "", "b)", "c"}}
	assert.Equal(t, "(a b)\nc\n", run(t, rl))
	assert.Equal(t, []string{"> ", "  ", "  ", "> ", "> "}, rl.prompts)
}

func TestRunEndOfInputInsideExpression(t *testing.T) {
	rl := &scriptedReader{lines: []string{"(1 2"}}
	assert.Equal(t, "", run(t, rl))
}

func TestRunInterrupt(t *testing.T) {
	rl := &scriptedReader{lines: []string{"1", "(2"}, end: readline.ErrInterrupt}
	assert.Equal(t, "1\n", run(t, rl))
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	rl := &scriptedReader{lines: []string{"1"}}
	r := New(rl, &out, "> ", logr.Discard())
	require.NoError(t, r.Run(ctx))
	assert.Empty(t, out.String())
	assert.Empty(t, rl.prompts)
}

// blockingReader hands out its lines, then blocks in Readline until it is
// closed.
type blockingReader struct {
	lines   []string
	waiting chan struct{}
	closed  chan struct{}
	once    sync.Once
}

func newBlockingReader(lines ...string) *blockingReader {
	return &blockingReader{
		lines:   lines,
		waiting: make(chan struct{}),
		closed:  make(chan struct{}),
	}
}

func (r *blockingReader) SetPrompt(string) {}

func (r *blockingReader) Readline() (string, error) {
	if len(r.lines) > 0 {
		line := r.lines[0]
		r.lines = r.lines[1:]
		return line, nil
	}
	close(r.waiting)
	<-r.closed
	return "", errors.New("use of closed terminal")
}

func (r *blockingReader) Close() error {
	r.once.Do(func() {
		close(r.closed)
	})
	return nil
}

func TestRunCanceledWhileReading(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	rl := newBlockingReader("(1 2)", "(3")
	r := New(rl, &out, "> ", logr.Discard())

	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	select {
	case <-rl.waiting:
	case <-time.After(5 * time.Second):
		t.Fatal("Readline was never called")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the context was canceled")
	}
	assert.Equal(t, "(1 2)\n", out.String())
}

func TestRunMaxDepth(t *testing.T) {
	rl := &scriptedReader{lines: []string{"((1))", "(1)"}}
	out := run(t, rl, parser.WithMaxDepth(1))
	assert.Contains(t, out, "SyntaxError: ")
	assert.Contains(t, out, parser.ErrTooDeep.Error())
	assert.True(t, bytes.HasSuffix([]byte(out), []byte("(1)\n")))
}

func TestRunReadlineError(t *testing.T) {
	errBroken := errors.New("terminal gone")
	rl := &scriptedReader{lines: []string{"1"}, end: errBroken}

	var out bytes.Buffer
	r := New(rl, &out, "> ", logr.Discard())

	err := r.Run(context.Background())
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, "1\n", out.String())
}
