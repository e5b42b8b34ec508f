package prompt

import "github.com/alexisbeaulieu97/prettyline/internal/style"

// Side selects which prompt to build.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// rightSeparator goes before every right prompt segment.
const rightSeparator = " "

// LeftSegments builds the identity and exit status segments. The outer caps
// take the terminal background so the bar fades into the terminal.
func LeftSegments(in Inputs, palette Palette) []Segment {
	background := in.Background
	if !background.IsSet() {
		background = style.DefaultBackground
	}

	identity := palette.Colors(RoleUser)
	if in.Username == "root" {
		identity = palette.Colors(RoleRoot)
	}

	exit := palette.Colors(RoleFailure)
	if in.Exit.Success() {
		exit = palette.Colors(RoleSuccess)
	}

	return []Segment{
		{
			Center: NewChunk(in.Username).Colors(identity).Weight(style.Bold).Pad(),
			Right: capOf(NewChunk(RightAngledFill).
				Foreground(identity.Background).
				Background(background)),
		},
		{
			Left: capOf(NewChunk(RightAngledFill).
				Foreground(background).
				Background(exit.Background)),
			Center: NewChunk(in.Exit.Label()).Colors(exit).Pad(),
			Right:  capOf(NewChunk(RightAngledFill).Foreground(exit.Background)),
		},
	}
}

// RightSegments builds the optional virtualenv segment and the clock.
func RightSegments(in Inputs, palette Palette) []Segment {
	var segments []Segment

	if in.VirtualEnv {
		segments = append(segments, pill(NewChunk(Python).Weight(style.Bold), palette.Colors(RoleVenv)))
	}

	segments = append(segments, pill(NewChunk(in.Clock).Weight(style.Dim), palette.Colors(RoleClock)))

	return segments
}

// pill rounds both ends of center with curved caps in the pair's background.
func pill(center Chunk, pair Pair) Segment {
	return Segment{
		Left:   capOf(NewChunk(LeftCurvedFill).Foreground(pair.Background)),
		Center: center.Colors(pair),
		Right:  capOf(NewChunk(RightCurvedFill).Foreground(pair.Background)),
	}
}

// Render validates the inputs and returns one side of the prompt, before any
// shell specific escaping.
func Render(side Side, in Inputs, palette Palette) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	if side == SideRight {
		return Join(RightSegments(in, palette), rightSeparator), nil
	}
	return Join(LeftSegments(in, palette), ""), nil
}
