// Package shell holds what differs between supported shells: the markers
// that hide styling bytes from the line editor and the integration script.
package shell

import (
	"fmt"
	"strings"

	prettyerrors "github.com/alexisbeaulieu97/prettyline/pkg/errors"
)

// Shell is one of the supported interactive shells.
type Shell int

const (
	Bash Shell = iota
	Zsh
	Fish
)

// Names lists the accepted shell names in declaration order.
func Names() []string {
	return []string{Bash.String(), Zsh.String(), Fish.String()}
}

func (s Shell) String() string {
	switch s {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	case Fish:
		return "fish"
	default:
		return fmt.Sprintf("shell(%d)", int(s))
	}
}

// Parse maps a shell name to a Shell.
func Parse(name string) (Shell, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	default:
		return 0, prettyerrors.NewShellError(name, Names())
	}
}

// Set implements pflag.Value.
func (s *Shell) Set(name string) error {
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Shell) Type() string {
	return "shell"
}

// Markers returns the zero-width markers the shell's line editor expects
// around non-printing bytes. ok is false when the shell needs none.
func (s Shell) Markers() (start, end string, ok bool) {
	switch s {
	case Bash:
		return `\[`, `\]`, true
	case Zsh:
		return "%{", "%}", true
	case Fish:
		return "", "", false
	default:
		return "", "", false
	}
}

// Escape prepares a rendered prompt for the shell. Fish measures its prompt
// functions itself, so its output is returned unchanged.
func (s Shell) Escape(prompt string) string {
	start, end, ok := s.Markers()
	if !ok {
		return prompt
	}
	return Wrap(prompt, start, end)
}
