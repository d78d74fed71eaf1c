package cli

import (
	"github.com/spf13/cobra"

	"unitconvert/internal/shell"
)

// NewCmdInteractive creates the interactive subcommand.
func NewCmdInteractive(global *GlobalOptions, streams IOStreams) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl", "shell"},
		Short:   "Start an interactive conversion prompt",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			sh := shell.New(global.Output, global.Precision, global.Logger)
			return sh.Run(c.Context(), streams.In, streams.Out, streams.ErrOut)
		},
	}
}
