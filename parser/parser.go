package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/xiam/s-expr-reader/ast"
	"github.com/xiam/s-expr-reader/buffer"
	"github.com/xiam/s-expr-reader/lexer"
)

// Observer is notified about the progress of a Parser.
type Observer interface {
	LinesRead(n int)
	ExpressionRead()
	ReadFailed(kind string)
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to trace expressions and syntax errors.
func WithLogger(log logr.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithMaxDepth limits how deeply lists and quotes may nest. Zero means no
// limit.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// WithObserver registers an Observer.
func WithObserver(o Observer) Option {
	return func(p *Parser) {
		p.obs = o
	}
}

// Parser reads expressions from a buffer, one at a time.
type Parser struct {
	buf *buffer.Buffer
	log logr.Logger
	obs Observer

	maxDepth int
	lines    int
}

// New creates a Parser that consumes tokens from buf.
func New(buf *buffer.Buffer, opts ...Option) *Parser {
	p := &Parser{
		buf: buf,
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Buffer returns the buffer the parser reads from.
func (p *Parser) Buffer() *buffer.Buffer {
	return p.buf
}

// Read reads the next expression. It returns ErrEndOfInput when there is
// nothing left to read, a *Error for malformed input, or the error of the
// underlying source.
func (p *Parser) Read() (ast.Expr, error) {
	expr, err := p.readExpression(0)
	p.observe(expr, err)
	return expr, err
}

// ReadAll reads expressions until the end of input.
func (p *Parser) ReadAll() ([]ast.Expr, error) {
	exprs := []ast.Expr{}
	for {
		expr, err := p.Read()
		if err != nil {
			if errors.Is(err, ErrEndOfInput) {
				return exprs, nil
			}
			return nil, err
		}
		exprs = append(exprs, expr)
	}
}

func (p *Parser) observe(expr ast.Expr, err error) {
	if n := p.buf.LineNumber(); n > p.lines {
		if p.obs != nil {
			p.obs.LinesRead(n - p.lines)
		}
		p.lines = n
	}

	switch {
	case err == nil:
		if log := p.log.V(1); log.Enabled() {
			log.Info("read expression", "expr", expr.String(), "line", p.lines)
		}
		if p.obs != nil {
			p.obs.ExpressionRead()
		}
	case errors.Is(err, ErrEndOfInput):
		p.log.V(1).Info("end of input", "lines", p.lines)
	default:
		kind := Kind(err)
		p.log.V(1).Info("read failed", "kind", kind, "error", err.Error(), "line", p.lines)
		if p.obs != nil {
			p.obs.ReadFailed(kind)
		}
	}
}

// readExpression reads one expression starting at the current token. depth
// is the number of lists and quotes enclosing it.
func (p *Parser) readExpression(depth int) (ast.Expr, error) {
	tok := p.buf.Pop()
	if tok == nil {
		return nil, p.endOfInput(depth)
	}

	switch tok.Type() {
	case lexer.TokenNil:
		return ast.Nil, nil

	case lexer.TokenQuote:
		if p.tooDeep(depth + 1) {
			return nil, p.errorf(ErrTooDeep, tok)
		}
		expr, err := p.readExpression(depth + 1)
		if err != nil {
			return nil, err
		}
		return ast.List(ast.Quote, expr), nil

	case lexer.TokenOpenParen:
		if p.tooDeep(depth + 1) {
			return nil, p.errorf(ErrTooDeep, tok)
		}
		return p.readTail(depth + 1)
	}

	if tok.IsDelimiter() {
		return nil, p.errorf(ErrUnexpectedToken, tok)
	}

	atom, err := ast.FromToken(tok)
	if err != nil {
		return nil, p.errorf(ErrUnexpectedToken, tok)
	}
	return atom, nil
}

// readTail reads the rest of a list whose open parenthesis has already been
// consumed, up to and including the closing parenthesis.
func (p *Parser) readTail(depth int) (ast.Expr, error) {
	elems := []ast.Expr{}
	tail := ast.Nil

	for {
		tok := p.buf.Current()
		if tok == nil {
			return nil, p.endOfInput(depth)
		}

		if tok.Is(lexer.TokenCloseParen) {
			p.buf.Pop()
			break
		}

		if tok.Is(lexer.TokenDot) {
			p.buf.Pop()
			expr, err := p.readExpression(depth)
			if err != nil {
				return nil, err
			}
			if next := p.buf.Current(); next == nil || !next.Is(lexer.TokenCloseParen) {
				return nil, p.errorf(ErrMalformedDottedPair, next)
			}
			p.buf.Pop()
			tail = expr
			break
		}

		expr, err := p.readExpression(depth)
		if err != nil {
			return nil, err
		}
		elems = append(elems, expr)
	}

	for i := len(elems) - 1; i >= 0; i-- {
		tail = ast.Cons(elems[i], tail)
	}
	return tail, nil
}

func (p *Parser) tooDeep(depth int) bool {
	return p.maxDepth > 0 && depth > p.maxDepth
}

// endOfInput picks the error for a buffer that ran out of tokens.
func (p *Parser) endOfInput(depth int) error {
	if err := p.buf.Err(); err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	if depth == 0 {
		return ErrEndOfInput
	}
	return p.errorf(ErrUnexpectedEOF, nil)
}

func (p *Parser) errorf(err error, tok *lexer.Token) error {
	return &Error{
		Err:     err,
		Token:   tok,
		Context: p.buf.String(),
	}
}

// Read reads one expression from buf.
func Read(buf *buffer.Buffer) (ast.Expr, error) {
	return New(buf).Read()
}

// ReadLine reads one expression from a single line of text.
func ReadLine(line string) (ast.Expr, error) {
	return Read(buffer.New(buffer.Text(line)))
}

// Parse reads every expression in the given text.
func Parse(in []byte) ([]ast.Expr, error) {
	src := lexer.NewTokenizer(lexer.FromReader(bytes.NewReader(in)))
	return New(buffer.New(src)).ReadAll()
}
