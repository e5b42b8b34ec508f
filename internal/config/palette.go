package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/prettyline/internal/prompt"
	"github.com/alexisbeaulieu97/prettyline/internal/style"
	prettyerrors "github.com/alexisbeaulieu97/prettyline/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// colorPair is the YAML shape of one palette entry.
type colorPair struct {
	Foreground string `yaml:"fg,omitempty"`
	Background string `yaml:"bg,omitempty"`
}

// DecodePalette applies YAML role overrides, as found in PRETTYLINE_PALETTE,
// on top of base. Roles and colors that are left out keep their base value.
//
//	{user: {bg: "#ffaf00"}, clock: {fg: bright-white, bg: 236}}
func DecodePalette(text string, base prompt.Palette) (prompt.Palette, error) {
	if strings.TrimSpace(text) == "" {
		return base, nil
	}

	var doc map[string]colorPair
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return base, prettyerrors.NewParseError(EnvPalette, extractLine(err), err)
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	palette := base
	for _, name := range names {
		role, err := prompt.ParseRole(name)
		if err != nil {
			return base, prettyerrors.NewParseError(EnvPalette, 0, err)
		}

		pair, err := doc[name].decode()
		if err != nil {
			return base, prettyerrors.NewParseError(EnvPalette, 0, fmt.Errorf("role %s: %w", name, err))
		}

		palette = palette.With(role, pair)
	}

	return palette, nil
}

func (c colorPair) decode() (prompt.Pair, error) {
	var pair prompt.Pair
	if c.Foreground != "" {
		fg, err := style.ParseColor(c.Foreground)
		if err != nil {
			return pair, fmt.Errorf("fg: %w", err)
		}
		pair.Foreground = fg
	}
	if c.Background != "" {
		bg, err := style.ParseColor(c.Background)
		if err != nil {
			return pair, fmt.Errorf("bg: %w", err)
		}
		pair.Background = bg
	}
	return pair, nil
}

// EncodePalette writes every role in table order, in the format
// DecodePalette reads.
func EncodePalette(p prompt.Palette) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, role := range prompt.Roles() {
		pair := p.Colors(role)

		var entry yaml.Node
		if err := entry.Encode(colorPair{
			Foreground: pair.Foreground.String(),
			Background: pair.Background.String(),
		}); err != nil {
			return nil, fmt.Errorf("encode role %s: %w", role, err)
		}

		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: role.String()},
			&entry,
		)
	}

	return yaml.Marshal(doc)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
