package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prettyline/internal/shell"
)

type initOptions struct {
	bin string
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:       "init <shell>",
		Short:     "Print the shell code that installs the prompt",
		Example:   `  eval "$(prettyline init zsh)"` + "\n" + `  prettyline init fish | source`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: shell.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := shell.Parse(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sh.InitScript(opts.bin))
			return err
		},
	}

	cmd.Flags().StringVar(&opts.bin, "bin", "prettyline", "Command the generated script uses to call prettyline")

	return cmd
}
