package shell

import (
	"regexp"
	"strings"
)

// sgrPattern matches an inline styling sequence: ESC '[' ... 'm', shortest
// match first so consecutive sequences stay separate.
var sgrPattern = regexp.MustCompile("\x1b\\[.*?m")

// Wrap surrounds every styling sequence in text with start and end. All other
// bytes are left as they are.
func Wrap(text, start, end string) string {
	return sgrPattern.ReplaceAllStringFunc(text, func(seq string) string {
		var sb strings.Builder
		sb.Grow(len(start) + len(seq) + len(end))
		sb.WriteString(start)
		sb.WriteString(seq)
		sb.WriteString(end)
		return sb.String()
	})
}
