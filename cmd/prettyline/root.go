package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "prettyline",
		Short:         "prettyline draws a powerline style prompt for bash, zsh and fish",
		Long:          "prettyline draws a powerline style prompt for bash, zsh and fish.\n\nAdd `eval \"$(prettyline init <shell>)\"` to your shell's rc file.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(newLeftCmd(flags))
	cmd.AddCommand(newRightCmd(flags))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
