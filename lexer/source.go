package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextSource produces raw lines of text, one at a time. It returns io.EOF
// once there are no more lines and keeps returning it afterwards.
type TextSource interface {
	ReadLine() (string, error)
}

type stringSource struct {
	lines []string
}

// FromStrings returns a TextSource that yields the given lines in order.
func FromStrings(lines ...string) TextSource {
	return &stringSource{lines: lines}
}

func (s *stringSource) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type readerSource struct {
	r   *bufio.Reader
	err error
}

// FromReader returns a TextSource that yields the lines read from r, without
// their line endings. Lines may be of any length.
func FromReader(r io.Reader) TextSource {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) ReadLine() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		s.err = err
		if line == "" {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

type echoSource struct {
	src    TextSource
	w      io.Writer
	prompt string
}

// Echo wraps src so that every line holding something other than blanks or
// a comment is written to w after a prompt, as if it had been typed in. The
// prompt is replaced by blanks of the same width after the first echoed
// line.
func Echo(src TextSource, w io.Writer, prompt string) TextSource {
	return &echoSource{src: src, w: w, prompt: prompt}
}

func (s *echoSource) ReadLine() (string, error) {
	line, err := s.src.ReadLine()
	if err != nil {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimSpace(line)
	if trimmed != "" && !strings.HasPrefix(trimmed, ";") {
		fmt.Fprintln(s.w, s.prompt+line)
		s.prompt = strings.Repeat(" ", len(s.prompt))
	}
	return line, nil
}

// Tokenizer turns a TextSource into a source of token lines.
type Tokenizer struct {
	src  TextSource
	line int
}

// NewTokenizer creates a Tokenizer reading text lines from src.
func NewTokenizer(src TextSource) *Tokenizer {
	return &Tokenizer{src: src}
}

// NextLine reads and tokenizes the next line of text. It returns io.EOF
// when the underlying source is exhausted.
func (t *Tokenizer) NextLine() (Line, error) {
	text, err := t.src.ReadLine()
	if err != nil {
		return nil, err
	}
	t.line++
	return tokenizeLine(text, t.line)
}

// Lines returns the number of lines read so far.
func (t *Tokenizer) Lines() int {
	return t.line
}
