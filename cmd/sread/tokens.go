package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/s-expr-reader/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens found in a file",
		Long: `Print every token of the given file, or of standard input, one per line
with its type and position.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return printTokens(cmd.OutOrStdout(), lexer.FromReader(in))
		},
	}
}

func printTokens(out io.Writer, src lexer.TextSource) error {
	tokenizer := lexer.NewTokenizer(src)
	for {
		line, err := tokenizer.NextLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		for _, tok := range line {
			fmt.Fprintln(out, tok)
		}
	}
}
