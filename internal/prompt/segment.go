package prompt

import "strings"

// Segment is a center chunk flanked by optional cap chunks. Neighbouring
// segments look continuous only when a cap's foreground matches the adjacent
// background; that is up to whoever builds the segments.
type Segment struct {
	Left   *Chunk
	Center Chunk
	Right  *Chunk
}

// Render concatenates left cap, center and right cap. Missing caps render as
// nothing.
func (s Segment) Render() string {
	var sb strings.Builder
	if s.Left != nil {
		sb.WriteString(s.Left.Render())
	}
	sb.WriteString(s.Center.Render())
	if s.Right != nil {
		sb.WriteString(s.Right.Render())
	}
	return sb.String()
}

// Join renders segments in order, writing sep before each one.
func Join(segments []Segment, sep string) string {
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(sep)
		sb.WriteString(seg.Render())
	}
	return sb.String()
}
