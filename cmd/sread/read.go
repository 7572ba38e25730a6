package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiam/s-expr-reader/ast"
	"github.com/xiam/s-expr-reader/buffer"
	"github.com/xiam/s-expr-reader/lexer"
	"github.com/xiam/s-expr-reader/parser"
)

type readOptions struct {
	expression bool
	tree       bool
	echo       bool
}

func newReadCmd(a *app) *cobra.Command {
	opts := &readOptions{}

	cmd := &cobra.Command{
		Use:   "read [file...]",
		Short: "Read expressions from files",
		Long: `Read every expression in the given files, or in standard input when no
file is given, and print each one on its own line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.expression && len(args) == 0 {
				return errors.New("--expression requires at least one argument")
			}
			if cmd.Flags().Changed("echo") {
				a.cfg.Echo = opts.echo
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return a.readAll(out, "<stdin>", lexer.FromReader(cmd.InOrStdin()), opts)
			}
			for i, arg := range args {
				if opts.expression {
					name := fmt.Sprintf("<arg %d>", i+1)
					if err := a.readAll(out, name, lexer.FromReader(strings.NewReader(arg)), opts); err != nil {
						return err
					}
					continue
				}
				if err := a.readFile(out, arg, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.expression, "expression", "e", false,
		"Interpret arguments as expressions instead of file names")
	cmd.Flags().BoolVarP(&opts.tree, "tree", "t", false,
		"Print the tree of every expression instead of its text")
	cmd.Flags().BoolVar(&opts.echo, "echo", false,
		"Echo input lines after the prompt as if they had been typed")
	return cmd
}

func (a *app) readFile(out io.Writer, path string, opts *readOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return a.readAll(out, path, lexer.FromReader(f), opts)
}

func (a *app) readAll(out io.Writer, name string, text lexer.TextSource, opts *readOptions) error {
	if a.cfg.Echo {
		text = lexer.Echo(text, out, a.cfg.Prompt)
	}
	p := parser.New(buffer.New(lexer.NewTokenizer(text)), a.parserOptions()...)

	for {
		expr, err := p.Read()
		if errors.Is(err, parser.ErrEndOfInput) {
			return nil
		}
		if err != nil {
			var perr *parser.Error
			if errors.As(err, &perr) && perr.Context != "" {
				return fmt.Errorf("%s: %w\n%s", name, err, perr.Context)
			}
			return fmt.Errorf("%s: %w", name, err)
		}

		if opts.tree {
			ast.Print(out, expr)
			continue
		}
		fmt.Fprintln(out, expr)
	}
}
