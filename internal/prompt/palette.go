package prompt

import (
	"fmt"

	"github.com/alexisbeaulieu97/prettyline/internal/style"
)

// Role names what a segment represents, and therefore its colors.
type Role int

const (
	RoleUser Role = iota
	RoleRoot
	RoleSuccess
	RoleFailure
	RoleClock
	RoleVenv

	roleCount
)

var roleNames = [roleCount]string{
	RoleUser:    "user",
	RoleRoot:    "root",
	RoleSuccess: "success",
	RoleFailure: "failure",
	RoleClock:   "clock",
	RoleVenv:    "venv",
}

func (r Role) String() string {
	if r >= 0 && r < roleCount {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Roles lists every role in table order.
func Roles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// ParseRole looks a role up by name.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}

// Pair is a foreground/background combination.
type Pair struct {
	Foreground style.Color
	Background style.Color
}

// Palette maps every role to its colors. It is an array, so assignment
// copies it and the default table cannot be modified through a Palette.
type Palette [roleCount]Pair

var defaultPalette = Palette{
	RoleUser:    {Foreground: style.Named(style.Black), Background: style.Named(style.BrightWhite)},
	RoleRoot:    {Foreground: style.Named(style.Black), Background: style.Named(style.BrightRed)},
	RoleSuccess: {Foreground: style.Named(style.Black), Background: style.Named(style.BrightBlue)},
	RoleFailure: {Foreground: style.Named(style.Black), Background: style.Named(style.BrightRed)},
	RoleClock:   {Foreground: style.Named(style.White), Background: style.Indexed(237)},
	RoleVenv:    {Foreground: style.Indexed(220), Background: style.Indexed(25)},
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return defaultPalette
}

// Colors returns the pair for role.
func (p Palette) Colors(role Role) Pair {
	if role < 0 || role >= roleCount {
		return Pair{}
	}
	return p[role]
}

// With returns a copy of p with role's colors replaced. Unset colors in pair
// keep the existing value.
func (p Palette) With(role Role, pair Pair) Palette {
	if role < 0 || role >= roleCount {
		return p
	}
	if pair.Foreground.IsSet() {
		p[role].Foreground = pair.Foreground
	}
	if pair.Background.IsSet() {
		p[role].Background = pair.Background
	}
	return p
}
