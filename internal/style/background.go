package style

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{6})$`)

// ResolveBackground parses a terminal background color given as six hex
// digits with an optional leading '#'. Anything else yields (NoColor, false);
// callers fall back to DefaultBackground.
func ResolveBackground(raw string) (Color, bool) {
	m := hexColorPattern.FindStringSubmatch(raw)
	if m == nil {
		return NoColor, false
	}

	r, g, b, err := parseHexChannels(m[1])
	if err != nil {
		return NoColor, false
	}

	return RGB(r, g, b), true
}
