package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
	TokenQuote                // Quote mark: "'"
	TokenDot                  // Dot: "."
	TokenNil                  // Empty list keyword: "nil"
	TokenInteger              // Integers
	TokenFloat                // Floating point numbers
	TokenBool                 // Booleans: #t #f true false
	TokenString               // Double quoted strings
	TokenSymbol               // Anything else made of symbol characters
)

var tokenValues = map[TokenType][]rune{
	TokenOpenParen:  []rune{'('},
	TokenCloseParen: []rune{')'},
	TokenQuote:      []rune{'\''},
	TokenDot:        []rune{'.'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenQuote:      "quote",
	TokenDot:        "dot",
	TokenNil:        "nil",
	TokenInteger:    "integer",
	TokenFloat:      "float",
	TokenBool:       "bool",
	TokenString:     "string",
	TokenSymbol:     "symbol",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsDelimiter returns true for the tokens that structure the grammar
// rather than denote a value.
func (tt TokenType) IsDelimiter() bool {
	_, ok := tokenValues[tt]
	return ok
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	whitespace   = []rune(" \f\t\r\n\v")
	symbolExtras = []rune("!$%&*/:<=>?@^_~+-.")
)

func isWhitespace(r rune) bool {
	return runeIn(r, whitespace)
}

func isComment(r rune) bool {
	return r == ';'
}

func isDoubleQuote(r rune) bool {
	return r == '"'
}

func isWordBreak(r rune) bool {
	return isWhitespace(r) || isComment(r) || isDoubleQuote(r) ||
		isOpenParen(r) || isCloseParen(r) || isQuote(r)
}

func runeIn(r rune, set []rune) bool {
	for _, v := range set {
		if v == r {
			return true
		}
	}
	return false
}
