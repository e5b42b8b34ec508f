package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/prettyline/internal/config"
	"github.com/alexisbeaulieu97/prettyline/internal/logger"
	"github.com/alexisbeaulieu97/prettyline/internal/prompt"
)

// lookupEnv is swapped out by tests.
var lookupEnv config.LookupFunc = os.LookupEnv

// AppContext bundles what every command resolves before doing its work.
type AppContext struct {
	Env     config.Environment
	Logger  *logger.Logger
	Palette prompt.Palette
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	env := config.FromEnv(lookupEnv)

	level := env.LogLevel
	if flags != nil && flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: term.IsTerminal(int(os.Stderr.Fd())),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError("start", "configuring logging", err,
			"Set "+config.EnvLogLevel+" to one of trace, debug, info, warn, error or disabled.")
	}

	palette, err := config.DecodePalette(env.Palette, prompt.DefaultPalette())
	if err != nil {
		log.Warn(err, "ignoring palette override")
	}

	return &AppContext{Env: env, Logger: log, Palette: palette}, nil
}
