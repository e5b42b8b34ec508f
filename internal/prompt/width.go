package prompt

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// VisibleWidth is the number of terminal cells a rendered prompt occupies
// once styling sequences are removed. Pass the prompt before shell escaping.
func VisibleWidth(rendered string) int {
	return uniseg.StringWidth(ansi.Strip(rendered))
}
