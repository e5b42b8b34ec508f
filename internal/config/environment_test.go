package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prettyline/internal/style"
)

func lookupFrom(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	env := FromEnv(lookupFrom(map[string]string{
		EnvUser:           "alice",
		EnvVirtualEnv:     "/home/alice/.venv",
		EnvTermBackground: "#1c1c1c",
		EnvLogLevel:       "debug",
		EnvPalette:        "{user: {bg: 214}}",
	}))

	require.Equal(t, Environment{
		User:           "alice",
		VirtualEnv:     true,
		TermBackground: "#1c1c1c",
		LogLevel:       "debug",
		Palette:        "{user: {bg: 214}}",
	}, env)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Parallel()

	env := FromEnv(lookupFrom(nil))
	require.Equal(t, UnknownUser, env.User)
	require.False(t, env.VirtualEnv)
	require.Empty(t, env.TermBackground)
}

func TestFromEnvEmptyVirtualEnvCounts(t *testing.T) {
	t.Parallel()

	env := FromEnv(lookupFrom(map[string]string{EnvVirtualEnv: ""}))
	require.True(t, env.VirtualEnv)
}

func TestEnvironmentBackground(t *testing.T) {
	t.Parallel()

	c, ok := Environment{TermBackground: "1C1C1C"}.Background()
	require.True(t, ok)
	require.Equal(t, style.RGB(0x1c, 0x1c, 0x1c), c)

	for _, raw := range []string{"", "#12345", "zzzzzz"} {
		c, ok := Environment{TermBackground: raw}.Background()
		require.False(t, ok)
		require.Equal(t, style.DefaultBackground, c)
	}
}
