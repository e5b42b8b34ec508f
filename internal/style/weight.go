package style

// Weight is the text intensity.
type Weight uint8

const (
	Normal Weight = iota
	Bold
	Dim
)

func (w Weight) String() string {
	switch w {
	case Bold:
		return "bold"
	case Dim:
		return "dim"
	default:
		return "normal"
	}
}
