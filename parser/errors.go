package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/s-expr-reader/lexer"
)

var (
	// ErrEndOfInput is returned by Read when no tokens are left. It marks the
	// normal end of a stream, not a syntax error.
	ErrEndOfInput = errors.New("end of input")

	ErrUnexpectedEOF       = errors.New("unexpected end of file")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrMalformedDottedPair = errors.New("expected one element after .")
	ErrTooDeep             = errors.New("expression nested too deeply")
)

// Error describes a syntax error. Err is one of the sentinel errors of this
// package.
type Error struct {
	Err   error
	Token *lexer.Token

	// Context is the rendering of the buffer at the moment of failure.
	Context string
}

func (e *Error) Error() string {
	if e.Token == nil {
		return e.Err.Error()
	}
	line, col := e.Token.Pos()
	return fmt.Sprintf("%d:%d: %v: %s", line, col, e.Err, e.Token.Text())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind returns a short name for the kind of err, suitable as a metric label.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEndOfInput):
		return "end_of_input"
	case errors.Is(err, ErrUnexpectedEOF):
		return "unexpected_eof"
	case errors.Is(err, ErrUnexpectedToken):
		return "unexpected_token"
	case errors.Is(err, ErrMalformedDottedPair):
		return "malformed_dotted_pair"
	case errors.Is(err, ErrTooDeep):
		return "too_deep"
	}
	return "source"
}
