// Package prompt builds powerline segments out of styled chunks and assembles
// the left and right prompts.
package prompt

import "github.com/alexisbeaulieu97/prettyline/internal/style"

// Chunk is a literal piece of text with its own style. Builders use value
// receivers, so every call returns a new Chunk and the receiver is untouched.
type Chunk struct {
	value  string
	style  style.Style
	padded bool
}

// NewChunk returns an unstyled, unpadded chunk.
func NewChunk(text string) Chunk {
	return Chunk{value: text}
}

// Foreground sets the text color.
func (c Chunk) Foreground(color style.Color) Chunk {
	c.style.Foreground = color
	return c
}

// Background sets the color behind the text, padding included.
func (c Chunk) Background(color style.Color) Chunk {
	c.style.Background = color
	return c
}

// Weight sets bold, dim or normal text.
func (c Chunk) Weight(w style.Weight) Chunk {
	c.style.Weight = w
	return c
}

// Colors applies both halves of a palette entry.
func (c Chunk) Colors(p Pair) Chunk {
	return c.Foreground(p.Foreground).Background(p.Background)
}

// Pad toggles one space of padding on each side of the value.
func (c Chunk) Pad() Chunk {
	c.padded = !c.padded
	return c
}

// Value returns the literal text.
func (c Chunk) Value() string { return c.value }

// Padded reports whether padding is on.
func (c Chunk) Padded() bool { return c.padded }

// Style returns the chunk's style.
func (c Chunk) Style() style.Style { return c.style }

// Render returns the styled text. Padding sits inside the styled region so
// it is painted with the chunk's background.
func (c Chunk) Render() string {
	if c.padded {
		return c.style.Render(" " + c.value + " ")
	}
	return c.style.Render(c.value)
}

// capOf returns a pointer to a chunk for use as a segment cap.
func capOf(c Chunk) *Chunk {
	return &c
}
