// Package style turns colors and text weight into inline SGR sequences.
package style

import "github.com/muesli/termenv"

// Style is a foreground/background pair plus weight. The zero value renders
// text unchanged.
type Style struct {
	Foreground Color
	Background Color
	Weight     Weight
}

// IsZero reports whether the style carries no attributes.
func (s Style) IsZero() bool {
	return !s.Foreground.IsSet() && !s.Background.IsSet() && s.Weight == Normal
}

// Render wraps text in a single opening SGR sequence and a full reset.
func (s Style) Render(text string) string {
	if s.IsZero() {
		return text
	}

	ts := termenv.TrueColor.String()
	switch s.Weight {
	case Bold:
		ts = ts.Bold()
	case Dim:
		ts = ts.Faint()
	}
	if fg := s.Foreground.sgr(); fg != nil {
		ts = ts.Foreground(fg)
	}
	if bg := s.Background.sgr(); bg != nil {
		ts = ts.Background(bg)
	}

	return ts.Styled(text)
}
