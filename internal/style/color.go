package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ColorKind identifies which variant a Color holds.
type ColorKind uint8

const (
	KindNone ColorKind = iota
	KindNamed
	KindIndexed
	KindRGB
)

// NamedColor is one of the 16 basic terminal colors.
type NamedColor uint8

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var namedColorNames = [...]string{
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	BrightBlack:   "bright-black",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	BrightWhite:   "bright-white",
}

func (n NamedColor) String() string {
	if int(n) < len(namedColorNames) {
		return namedColorNames[n]
	}
	return fmt.Sprintf("named(%d)", uint8(n))
}

// Color is a terminal color: a named color, an index into the 256-color
// palette, or a 24-bit RGB triple. The zero value is NoColor.
type Color struct {
	kind    ColorKind
	index   uint8
	r, g, b uint8
}

// NoColor leaves the terminal's current color in place.
var NoColor = Color{}

// DefaultBackground is used when the terminal background cannot be resolved.
var DefaultBackground = Named(Black)

// Named returns one of the 16 basic colors.
func Named(n NamedColor) Color {
	return Color{kind: KindNamed, index: uint8(n) & 0x0f}
}

// Indexed returns a color from the 256-color palette.
func Indexed(i uint8) Color {
	return Color{kind: KindIndexed, index: i}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Kind reports the color variant.
func (c Color) Kind() ColorKind {
	return c.kind
}

// IsSet reports whether c is anything other than NoColor.
func (c Color) IsSet() bool {
	return c.kind != KindNone
}

// Channels returns the RGB channels. Only meaningful for KindRGB.
func (c Color) Channels() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Index returns the palette index for named and indexed colors.
func (c Color) Index() uint8 {
	return c.index
}

// String renders c in the form accepted by ParseColor.
func (c Color) String() string {
	switch c.kind {
	case KindNamed:
		return NamedColor(c.index).String()
	case KindIndexed:
		return strconv.Itoa(int(c.index))
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return ""
	}
}

// sgr converts c for SGR encoding. NoColor maps to nil so that
// termenv.Style skips it entirely.
func (c Color) sgr() termenv.Color {
	switch c.kind {
	case KindNamed:
		return termenv.ANSIColor(c.index)
	case KindIndexed:
		return termenv.ANSI256Color(c.index)
	case KindRGB:
		return trueColor{r: c.r, g: c.g, b: c.b}
	default:
		return nil
	}
}

// trueColor encodes exact 8-bit channels. termenv.RGBColor goes through
// float conversion and can be off by one.
type trueColor struct {
	r, g, b uint8
}

func (t trueColor) Sequence(bg bool) string {
	prefix := termenv.Foreground
	if bg {
		prefix = termenv.Background
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", prefix, t.r, t.g, t.b)
}

// ParseColor reads a color name ("bright-red"), a palette index ("237") or a
// hex triple ("#1c1c1c").
func ParseColor(text string) (Color, error) {
	value := strings.ToLower(strings.TrimSpace(text))
	if value == "" {
		return NoColor, fmt.Errorf("empty color")
	}

	for i, name := range namedColorNames {
		if value == name {
			return Named(NamedColor(i)), nil
		}
	}

	if len(value) <= 3 {
		if idx, err := strconv.ParseUint(value, 10, 8); err == nil {
			return Indexed(uint8(idx)), nil
		}
	}

	if c, ok := ResolveBackground(value); ok {
		return c, nil
	}

	return NoColor, fmt.Errorf("unrecognised color %q", text)
}

// parseHexChannels decodes six hex digits into 8-bit channels.
func parseHexChannels(hex string) (r, g, b uint8, err error) {
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}
