// Package sexpr reads s-expressions: atoms, proper and dotted lists and
// quoted forms, from text that may span many lines.
package sexpr

import (
	"io"

	"github.com/xiam/s-expr-reader/ast"
	"github.com/xiam/s-expr-reader/buffer"
	"github.com/xiam/s-expr-reader/lexer"
	"github.com/xiam/s-expr-reader/parser"
)

// Reader reads expressions from an io.Reader one at a time.
type Reader struct {
	p *parser.Parser
}

// Parse reads every expression in the given text.
func Parse(in []byte) ([]ast.Expr, error) {
	return parser.Parse(in)
}

// ReadLine reads the first expression on a single line of text.
func ReadLine(line string) (ast.Expr, error) {
	return parser.ReadLine(line)
}

// NewReader creates a Reader that pulls lines from r only as they are
// needed to complete an expression.
func NewReader(r io.Reader, opts ...parser.Option) *Reader {
	src := lexer.NewTokenizer(lexer.FromReader(r))
	return &Reader{p: parser.New(buffer.New(src), opts...)}
}

// Read returns the next expression, or parser.ErrEndOfInput once the input
// is exhausted.
func (r *Reader) Read() (ast.Expr, error) {
	return r.p.Read()
}

// ReadAll reads expressions until the input is exhausted.
func (r *Reader) ReadAll() ([]ast.Expr, error) {
	return r.p.ReadAll()
}
