// Package buffer presents a source of token lines as a single stream of
// tokens with one token of lookahead.
package buffer

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/v2/queues/circularbuffer"

	"github.com/xiam/s-expr-reader/lexer"
)

// historySize is the number of completed lines shown before the active
// line by String.
const historySize = 3

// Source produces lines of tokens. It returns io.EOF once it is exhausted
// and must not produce more lines after that.
type Source interface {
	NextLine() (lexer.Line, error)
}

// Buffer concatenates the lines returned by its source and supplies their
// tokens one at a time, asking the source for more lines only when the
// current one has been used up.
type Buffer struct {
	src Source

	line  lexer.Line
	index int
	lines int

	history *circularbuffer.Queue[string]

	done bool
	err  error
}

// New creates a Buffer reading from src. No line is requested until the
// first call to Current or Pop.
func New(src Source) *Buffer {
	return &Buffer{
		src:     src,
		history: circularbuffer.New[string](historySize),
	}
}

// Current returns the next token without consuming it, or nil when the
// source is exhausted.
func (b *Buffer) Current() *lexer.Token {
	for !b.MoreOnLine() {
		if b.done {
			return nil
		}
		b.pull()
	}
	return b.line[b.index]
}

// Pop consumes and returns the next token, or nil when the source is
// exhausted.
func (b *Buffer) Pop() *lexer.Token {
	tok := b.Current()
	if tok != nil {
		b.index++
	}
	return tok
}

// MoreOnLine returns true if the active line still has tokens to consume.
func (b *Buffer) MoreOnLine() bool {
	return b.index < len(b.line)
}

// Err returns the error that stopped the source, if it failed with anything
// other than io.EOF.
func (b *Buffer) Err() error {
	return b.err
}

// LineNumber returns the number of lines read from the source so far.
func (b *Buffer) LineNumber() int {
	return b.lines
}

func (b *Buffer) pull() {
	line, err := b.src.NextLine()
	if err != nil {
		b.done = true
		if err != io.EOF {
			b.err = err
		}
		return
	}
	if b.lines > 0 {
		b.history.Enqueue(b.line.String())
	}
	b.line, b.index = line, 0
	b.lines++
}

// String returns the most recently read lines with the position of the
// next token marked by >>.
func (b *Buffer) String() string {
	if b.lines == 0 {
		return ""
	}

	width := len(fmt.Sprintf("%d", b.lines))

	var sb strings.Builder
	previous := b.history.Values()
	for i, text := range previous {
		fmt.Fprintf(&sb, "%*d: %s\n", width, b.lines-len(previous)+i, text)
	}
	fmt.Fprintf(&sb, "%*d: ", width, b.lines)
	sb.WriteString(lexer.Join(b.line[:b.index]))
	sb.WriteString(" >> ")
	sb.WriteString(lexer.Join(b.line[b.index:]))

	return strings.TrimRight(sb.String(), " ")
}
