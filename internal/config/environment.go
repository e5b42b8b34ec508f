// Package config reads prettyline's settings from the environment. There is
// no configuration file; everything arrives through variables or flags.
package config

import (
	"github.com/alexisbeaulieu97/prettyline/internal/style"
)

// Environment variables consulted by prettyline.
const (
	EnvUser           = "USER"
	EnvVirtualEnv     = "VIRTUAL_ENV"
	EnvTermBackground = "TERM_BG_COLOR"
	EnvLogLevel       = "PRETTYLINE_LOG_LEVEL"
	EnvPalette        = "PRETTYLINE_PALETTE"
)

// UnknownUser is shown when USER is not set.
const UnknownUser = "???"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Environment is the raw, unvalidated view of the variables above.
type Environment struct {
	User           string
	VirtualEnv     bool
	TermBackground string
	LogLevel       string
	Palette        string
}

// FromEnv collects the variables prettyline cares about.
func FromEnv(lookup LookupFunc) Environment {
	env := Environment{User: UnknownUser}

	if user, ok := lookup(EnvUser); ok {
		env.User = user
	}
	// Presence is enough: an activated but empty VIRTUAL_ENV still counts.
	_, env.VirtualEnv = lookup(EnvVirtualEnv)
	env.TermBackground, _ = lookup(EnvTermBackground)
	env.LogLevel, _ = lookup(EnvLogLevel)
	env.Palette, _ = lookup(EnvPalette)

	return env
}

// Background resolves TERM_BG_COLOR. ok is false when the variable is unset
// or malformed, in which case style.DefaultBackground is returned.
func (e Environment) Background() (color style.Color, ok bool) {
	if c, ok := style.ResolveBackground(e.TermBackground); ok {
		return c, true
	}
	return style.DefaultBackground, false
}
