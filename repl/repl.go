package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/go-logr/logr"

	"github.com/xiam/s-expr-reader/buffer"
	"github.com/xiam/s-expr-reader/lexer"
	"github.com/xiam/s-expr-reader/parser"
)

// LineReader reads interactive input one line at a time. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewReadline creates a readline instance with the given prompt. An empty
// historyFile disables persistent history.
func NewReadline(prompt, historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// REPL reads expressions from a LineReader and prints them back.
type REPL struct {
	rl     LineReader
	out    io.Writer
	prompt string
	log    logr.Logger
	opts   []parser.Option
}

// New creates a read-print loop. opts are passed to the parser created for
// every prompt.
func New(rl LineReader, out io.Writer, prompt string, log logr.Logger, opts ...parser.Option) *REPL {
	return &REPL{
		rl:     rl,
		out:    out,
		prompt: prompt,
		log:    log,
		opts:   opts,
	}
}

// promptSource feeds readline input to the tokenizer, switching to a blank
// continuation prompt after the first line of an expression.
type promptSource struct {
	ctx context.Context
	rl  LineReader

	contPrompt string
	done       bool
	err        error
}

func (s *promptSource) ReadLine() (string, error) {
	if err := s.ctx.Err(); err != nil {
		s.done = true
		return "", err
	}
	line, err := s.rl.Readline()
	if err != nil {
		if err == io.EOF || err == readline.ErrInterrupt || s.ctx.Err() != nil {
			s.done = true
		} else {
			s.err = err
		}
		return "", err
	}
	s.rl.SetPrompt(s.contPrompt)
	return line, nil
}

// Run loops until the input ends or the user interrupts it, returning nil
// in both cases and when ctx is done. If the LineReader is also an io.Closer
// it is closed once ctx is done, which unblocks a pending Readline.
// Malformed expressions are reported on the output and reading resumes at a
// fresh prompt. An error is returned only when the LineReader itself fails.
func (r *REPL) Run(ctx context.Context) error {
	r.log.V(1).Info("session started")
	defer r.log.V(1).Info("session ended")

	if c, ok := r.rl.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() {
			c.Close()
		})
		defer stop()
	}

	contPrompt := strings.Repeat(" ", len(r.prompt))
	for {
		r.rl.SetPrompt(r.prompt)
		src := &promptSource{ctx: ctx, rl: r.rl, contPrompt: contPrompt}
		buf := buffer.New(lexer.NewTokenizer(src))
		p := parser.New(buf, r.opts...)

		for {
			expr, err := p.Read()
			if err != nil {
				if src.err != nil {
					return fmt.Errorf("reading input: %w", src.err)
				}
				if src.done || errors.Is(err, parser.ErrEndOfInput) {
					return nil
				}
				r.report(err)
				break
			}
			fmt.Fprintln(r.out, expr)
			if !buf.MoreOnLine() {
				break
			}
		}
	}
}

func (r *REPL) report(err error) {
	var perr *parser.Error
	if errors.As(err, &perr) {
		fmt.Fprintf(r.out, "SyntaxError: %v\n", err)
		if perr.Context != "" {
			fmt.Fprintln(r.out, perr.Context)
		}
		return
	}
	fmt.Fprintf(r.out, "Error: %v\n", err)
}
