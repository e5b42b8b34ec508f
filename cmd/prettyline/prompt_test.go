package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prettyline/internal/config"
	"github.com/alexisbeaulieu97/prettyline/internal/prompt"
	prettyerrors "github.com/alexisbeaulieu97/prettyline/pkg/errors"
)

func TestLeftCommandZsh(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{config.EnvUser: "root"},
		"left", "--shell", "zsh", "--exit-status", "0")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(stdout, "%{\x1b[1;30;101m%} root %{\x1b[0m%}"))
	require.Contains(t, stdout, "%{\x1b[30;104m%} E0 %{\x1b[0m%}")
	require.True(t, strings.HasSuffix(stdout, "%{\x1b[0m%} "))
	require.NotContains(t, strings.ReplaceAll(stdout, "%{\x1b[", ""), "\x1b[")
}

func TestLeftCommandBash(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{config.EnvUser: "alice"},
		"left", "--shell", "bash", "--exit-status", "2")
	require.NoError(t, err)

	require.Contains(t, stdout, `\[`+"\x1b[1;30;107m"+`\]`+" alice ")
	require.Contains(t, stdout, `\[`+"\x1b[30;101m"+`\]`+" E2 ")
}

func TestLeftCommandFishIsUnwrapped(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{config.EnvUser: "alice"},
		"left", "--shell", "fish", "--exit-status", "0")
	require.NoError(t, err)

	expected, err := prompt.Render(prompt.SideLeft, prompt.Inputs{Username: "alice", Exit: prompt.Exit(0)}, prompt.DefaultPalette())
	require.NoError(t, err)
	require.Equal(t, expected+" ", stdout)
}

func TestLeftCommandUnknownExitStatus(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{config.EnvUser: "alice"},
		"left", "--shell", "fish")
	require.NoError(t, err)
	require.Contains(t, stdout, "\x1b[30;101m E? \x1b[0m")
}

func TestLeftCommandMissingUser(t *testing.T) {
	stdout, _, err := executeCommand(t, nil, "left", "--shell", "fish", "--exit-status", "0")
	require.NoError(t, err)
	require.Contains(t, stdout, " "+config.UnknownUser+" ")
}

func TestLeftCommandTerminalBackground(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{
		config.EnvUser:           "alice",
		config.EnvTermBackground: "#1c1c1c",
	}, "left", "--shell", "fish", "--exit-status", "0")
	require.NoError(t, err)

	require.Contains(t, stdout, "\x1b[97;48;2;28;28;28m"+prompt.RightAngledFill)
	require.Contains(t, stdout, "\x1b[38;2;28;28;28;104m"+prompt.RightAngledFill)
}

func TestLeftCommandMalformedBackgroundFallsBack(t *testing.T) {
	stdout, stderr, err := executeCommand(t, map[string]string{
		config.EnvUser:           "alice",
		config.EnvTermBackground: "not-a-color",
	}, "left", "--shell", "fish", "--exit-status", "0", "--verbose")
	require.NoError(t, err)

	require.Contains(t, stdout, "\x1b[97;40m"+prompt.RightAngledFill)
	require.Contains(t, stderr, "not a hex color")
	require.Contains(t, stderr, "prompt rendered")
}

func TestLeftCommandEmptyUser(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{config.EnvUser: ""},
		"left", "--shell", "fish", "--exit-status", "0")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "\x1b[1;30;107m  \x1b[0m"))
}

func TestLeftCommandInvalidUsernamePrintsNothing(t *testing.T) {
	stdout, stderr, err := executeCommand(t, map[string]string{config.EnvUser: "\xff\xfe"},
		"left", "--shell", "zsh", "--exit-status", "0")
	require.Error(t, err)
	require.Empty(t, stdout)
	require.Empty(t, stderr)

	var validationErr *prettyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "username", validationErr.Field)
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestLeftCommandRejectsOutOfRangeExitStatus(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{config.EnvUser: "alice"},
		"left", "--shell", "zsh", "--exit-status", "256")
	require.Error(t, err)
	require.Empty(t, stdout)
}

func TestPromptCommandRequiresKnownShell(t *testing.T) {
	_, _, err := executeCommand(t, nil, "left", "--shell", "tcsh")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported shell")

	_, _, err = executeCommand(t, nil, "right")
	require.Error(t, err)
	require.Contains(t, err.Error(), "shell")
}

func TestRightCommandClockOnly(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{config.EnvUser: "alice"},
		"right", "--shell", "fish")
	require.NoError(t, err)

	require.Contains(t, stdout, "\x1b[2;37;48;5;237m09:41\x1b[0m")
	require.NotContains(t, stdout, prompt.Python)
	require.True(t, strings.HasPrefix(stdout, " "))
	require.True(t, strings.HasSuffix(stdout, " "))
}

func TestRightCommandWithVirtualEnv(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{
		config.EnvUser:       "alice",
		config.EnvVirtualEnv: "/home/alice/project/.venv",
	}, "right", "--shell", "zsh")
	require.NoError(t, err)

	require.Contains(t, stdout, "%{\x1b[1;38;5;220;48;5;25m%}"+prompt.Python)
	require.Less(t, strings.Index(stdout, prompt.Python), strings.Index(stdout, "09:41"))
}

func TestPromptCommandPaletteOverride(t *testing.T) {
	stdout, stderr, err := executeCommand(t, map[string]string{
		config.EnvUser:    "alice",
		config.EnvPalette: "{user: {bg: 214}}",
	}, "left", "--shell", "fish", "--exit-status", "0")
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Contains(t, stdout, "\x1b[1;30;48;5;214m alice \x1b[0m")
}

func TestPromptCommandBadPaletteOverrideIsIgnored(t *testing.T) {
	stdout, stderr, err := executeCommand(t, map[string]string{
		config.EnvUser:     "alice",
		config.EnvPalette:  "{user: {bg: chartreuse}}",
		config.EnvLogLevel: "warn",
	}, "left", "--shell", "fish", "--exit-status", "0")
	require.NoError(t, err)
	require.Contains(t, stdout, "\x1b[1;30;107m alice \x1b[0m")
	require.Contains(t, stderr, "ignoring palette override")
}

func TestPromptCommandBadLogLevel(t *testing.T) {
	stdout, _, err := executeCommand(t, map[string]string{
		config.EnvUser:     "alice",
		config.EnvLogLevel: "chatty",
	}, "left", "--shell", "fish")
	require.Error(t, err)
	require.Empty(t, stdout)
	require.Contains(t, err.Error(), config.EnvLogLevel)
}
