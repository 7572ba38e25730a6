package lexer

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"
)

// Errors returned when a line can't be split into tokens.
var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidToken       = errors.New("invalid token")
)

type lexState func(*Lexer) lexState

var (
	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)
	isQuote      = isTokenType(TokenQuote)
)

var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// New initializes a Lexer that reads a single line of text from r. Tokens
// are tagged with the given line number.
func New(r io.Reader, line int) *Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		in:     s,
		tokens: Line{},
		buf:    []rune{},
		line:   line,
	}
}

// Lexer represents a lexical analyzer for one line of text
type Lexer struct {
	in *scanner.Scanner

	tokens  Line
	lastErr error

	buf []rune

	line   int
	start  int
	offset int
}

// Scan runs the lexer until the end of the line and returns the tokens it
// found.
func (lx *Lexer) Scan() (Line, error) {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	if lx.lastErr != nil {
		return nil, lx.lastErr
	}
	return lx.tokens, nil
}

func (lx *Lexer) emit(tt TokenType, v interface{}) {
	lx.tokens = append(lx.tokens, newValueToken(tt, string(lx.buf), v, lx.line, lx.start+1))
	lx.ignore()
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.offset++
	lx.buf = append(lx.buf, r)
	return r, nil
}

func (lx *Lexer) errorf(err error, text string) lexState {
	lx.lastErr = fmt.Errorf("%d:%d: %w: %s", lx.line, lx.start+1, err, text)
	return nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isWhitespace(r):
		lx.ignore()
		return lexDefaultState
	case isComment(r):
		return lexComment

	case isOpenParen(r):
		return lexEmit(TokenOpenParen)
	case isCloseParen(r):
		return lexEmit(TokenCloseParen)
	case isQuote(r):
		return lexEmit(TokenQuote)

	case isDoubleQuote(r):
		return lexString

	default:
		return lexWord
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt, string(lx.buf))
		return lexDefaultState
	}
}

// a comment runs until the end of the line
func lexComment(lx *Lexer) lexState {
	for {
		if _, err := lx.next(); err != nil {
			lx.ignore()
			return nil
		}
	}
}

func lexString(lx *Lexer) lexState {
	for {
		r, err := lx.next()
		if err != nil {
			return lx.errorf(ErrUnterminatedString, string(lx.buf))
		}
		if r == '\\' {
			if _, err := lx.next(); err != nil {
				return lx.errorf(ErrUnterminatedString, string(lx.buf))
			}
			continue
		}
		if isDoubleQuote(r) {
			break
		}
	}

	s, err := strconv.Unquote(string(lx.buf))
	if err != nil {
		return lx.errorf(ErrInvalidToken, string(lx.buf))
	}
	lx.emit(TokenString, s)
	return lexDefaultState
}

func lexWord(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isWordBreak(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	text := string(lx.buf)
	switch {
	case text == ".":
		lx.emit(TokenDot, text)
	case text == "nil":
		lx.emit(TokenNil, text)
	case text == "#t", text == "true":
		lx.emit(TokenBool, true)
	case text == "#f", text == "false":
		lx.emit(TokenBool, false)
	case numberPattern.MatchString(text):
		if i64, err := strconv.ParseInt(text, 10, 64); err == nil {
			lx.emit(TokenInteger, i64)
			break
		}
		f64, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return lx.errorf(ErrInvalidToken, text)
		}
		lx.emit(TokenFloat, f64)
	case isSymbol(text):
		lx.emit(TokenSymbol, text)
	default:
		return lx.errorf(ErrInvalidToken, text)
	}
	return lexDefaultState
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

func isSymbol(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || runeIn(r, symbolExtras) {
			continue
		}
		return false
	}
	return text != ""
}

// Tokenize splits a single line of text into tokens.
func Tokenize(line string) (Line, error) {
	return tokenizeLine(line, 1)
}

func tokenizeLine(text string, line int) (Line, error) {
	return New(strings.NewReader(text), line).Scan()
}
