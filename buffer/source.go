package buffer

import (
	"io"

	"github.com/xiam/s-expr-reader/lexer"
)

type lineSource struct {
	lines []lexer.Line
}

// Lines returns a Source that yields the given lines in order.
func Lines(lines ...lexer.Line) Source {
	return &lineSource{lines: lines}
}

func (s *lineSource) NextLine() (lexer.Line, error) {
	if len(s.lines) == 0 {
		return nil, io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// Text returns a Source that tokenizes the given lines of text.
func Text(lines ...string) Source {
	return lexer.NewTokenizer(lexer.FromStrings(lines...))
}
