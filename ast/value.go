package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xiam/s-expr-reader/lexer"
)

// Atom is an indivisible expression: a number, symbol, boolean or string.
type Atom struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newAtom(nt NodeType, tok *lexer.Token, v interface{}) *Atom {
	return &Atom{
		nt:  nt,
		tok: tok,
		v:   v,
	}
}

// Quote is the symbol that heads the expansion of 'x.
var Quote = NewSymbol("quote")

// NewInt creates an atom of type int
func NewInt(v int64) *Atom {
	return newAtom(NodeTypeInt, nil, v)
}

// NewFloat creates an atom of type float
func NewFloat(v float64) *Atom {
	return newAtom(NodeTypeFloat, nil, v)
}

// NewBool creates an atom of type bool
func NewBool(v bool) *Atom {
	return newAtom(NodeTypeBool, nil, v)
}

// NewString creates an atom of type string
func NewString(v string) *Atom {
	return newAtom(NodeTypeString, nil, v)
}

// NewSymbol creates an atom of type symbol
func NewSymbol(v string) *Atom {
	return newAtom(NodeTypeSymbol, nil, v)
}

var tokenNodeTypes = map[lexer.TokenType]NodeType{
	lexer.TokenInteger: NodeTypeInt,
	lexer.TokenFloat:   NodeTypeFloat,
	lexer.TokenBool:    NodeTypeBool,
	lexer.TokenString:  NodeTypeString,
	lexer.TokenSymbol:  NodeTypeSymbol,
}

// FromToken wraps a value token into an atom. Delimiters and the nil
// keyword are not values and can't be wrapped.
func FromToken(tok *lexer.Token) (*Atom, error) {
	nt, ok := tokenNodeTypes[tok.Type()]
	if !ok {
		return nil, fmt.Errorf("token %v is not a value", tok)
	}
	return newAtom(nt, tok, tok.Value()), nil
}

// Type returns the type of the atom
func (a *Atom) Type() NodeType {
	return a.nt
}

// Value returns the Go value of the atom
func (a *Atom) Value() interface{} {
	return a.v
}

// Token returns the token the atom was read from, if any
func (a *Atom) Token() *lexer.Token {
	return a.tok
}

// Encode returns the textual representation of the atom
func (a *Atom) Encode() string {
	switch a.nt {
	case NodeTypeInt:
		return fmt.Sprintf("%d", a.v)
	case NodeTypeFloat:
		s := strconv.FormatFloat(a.v.(float64), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case NodeTypeBool:
		if a.v.(bool) {
			return "#t"
		}
		return "#f"
	case NodeTypeString:
		return strconv.Quote(a.v.(string))
	case NodeTypeSymbol:
		return a.v.(string)
	}

	panic("unreachable")
}

func (a *Atom) String() string {
	return a.Encode()
}

var _ = Expr(&Atom{})
