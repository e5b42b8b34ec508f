package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prettyline/internal/config"
	"github.com/alexisbeaulieu97/prettyline/internal/prompt"
	"github.com/alexisbeaulieu97/prettyline/internal/shell"
)

// clockFormat is the right prompt's time of day, e.g. "09:41".
const clockFormat = "15:04"

// now is swapped out by tests.
var now = time.Now

type promptOptions struct {
	shell      shell.Shell
	exitStatus uint8
}

func newLeftCmd(root *rootFlags) *cobra.Command {
	opts := &promptOptions{}

	cmd := &cobra.Command{
		Use:   "left",
		Short: "Print the left prompt: user and last exit status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exit := prompt.UnknownExit
			if cmd.Flags().Changed("exit-status") {
				exit = prompt.Exit(opts.exitStatus)
			}
			return runPrompt(cmd, root, prompt.SideLeft, opts.shell, exit)
		},
	}

	addShellFlag(cmd, &opts.shell)
	cmd.Flags().Uint8Var(&opts.exitStatus, "exit-status", 0, "Exit status of the previous command (omit when unknown)")

	return cmd
}

func newRightCmd(root *rootFlags) *cobra.Command {
	opts := &promptOptions{}

	cmd := &cobra.Command{
		Use:   "right",
		Short: "Print the right prompt: virtualenv and clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, root, prompt.SideRight, opts.shell, prompt.UnknownExit)
		},
	}

	addShellFlag(cmd, &opts.shell)

	return cmd
}

func addShellFlag(cmd *cobra.Command, target *shell.Shell) {
	cmd.Flags().Var(target, "shell", "Shell the prompt is printed for (bash, zsh, fish)")
	cmd.MarkFlagRequired("shell") //nolint:errcheck
	cmd.RegisterFlagCompletionFunc("shell", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) { //nolint:errcheck
		return shell.Names(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runPrompt(cmd *cobra.Command, root *rootFlags, side prompt.Side, sh shell.Shell, exit prompt.ExitStatus) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	background, ok := app.Env.Background()
	if !ok && app.Env.TermBackground != "" {
		app.Logger.WithFields(map[string]any{"value": app.Env.TermBackground}).
			Debug(config.EnvTermBackground + " is not a hex color, using black")
	}

	in := prompt.Inputs{
		Username:   app.Env.User,
		Exit:       exit,
		VirtualEnv: app.Env.VirtualEnv,
		Clock:      now().Format(clockFormat),
		Background: background,
	}

	rendered, err := prompt.Render(side, in, app.Palette)
	if err != nil {
		app.Logger.WithFields(map[string]any{"side": side.String(), "error": err.Error()}).Debug("render prompt")
		return newCommandError("render the "+side.String()+" prompt", "checking prompt inputs", err,
			"Make sure $"+config.EnvUser+" is set to a valid UTF-8 user name.")
	}

	app.Logger.WithFields(map[string]any{
		"side":  side.String(),
		"shell": sh.String(),
		"width": prompt.VisibleWidth(rendered),
	}).Debug("prompt rendered")

	_, err = fmt.Fprint(cmd.OutOrStdout(), sh.Escape(rendered)+" ")
	return err
}
