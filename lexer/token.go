package lexer

import (
	"fmt"
	"strings"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
	value  interface{}

	line int
	col  int
}

// Line is the ordered sequence of tokens found on a single line of text.
type Line []*Token

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		value:  lexeme,
		line:   line,
		col:    col,
	}
}

func newValueToken(tt TokenType, lexeme string, v interface{}, line int, col int) *Token {
	tok := NewToken(tt, lexeme, line, col)
	tok.value = v
	return tok
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Value returns the typed value of the lexical unit: int64 for integers,
// float64 for floats, bool for booleans and string for everything else.
func (t Token) Value() interface{} {
	return t.value
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// IsDelimiter returns true if the token is one of ( ) ' or .
func (t Token) IsDelimiter() bool {
	return t.tt.IsDelimiter()
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}

// String renders the tokens of a line separated by a single space.
func (l Line) String() string {
	return Join(l)
}

// Join renders tokens separated by a single space.
func Join(tokens []*Token) string {
	texts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		texts = append(texts, tok.Text())
	}
	return strings.Join(texts, " ")
}
