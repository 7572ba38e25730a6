package main

import (
	"github.com/spf13/cobra"

	"github.com/xiam/s-expr-reader/repl"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-print loop",
		Long: `Read expressions typed at the prompt and print them back. An expression
may span several lines. Press Ctrl-D or Ctrl-C to leave.`,
		Args: cobra.NoArgs,
		RunE: a.runRepl,
	}
}

func (a *app) runRepl(cmd *cobra.Command, args []string) error {
	rl, err := repl.NewReadline(a.cfg.Prompt, a.cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer rl.Close()

	r := repl.New(rl, cmd.OutOrStdout(), a.cfg.Prompt, a.log, a.parserOptions()...)
	return r.Run(cmd.Context())
}
