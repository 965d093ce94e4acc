package textutil

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// WordWrap wraps each line of s so that no line exceeds the given display
// width, preferring to break at spaces. Width is measured in terminal cells
// via go-runewidth, so wide runes count as two cells.
//
// A word longer than the width is not broken: the line overflows until the
// next space. Existing newlines are kept, and blank lines survive wrapping.
//
// WordWrap panics if width is less than 1.
//
// Example:
//
//	textutil.WordWrap("the quick brown fox", 10)
//	// "the quick\nbrown fox"
func WordWrap(s string, width int) string {
	if width < 1 {
		panic("textutil: WordWrap width must be positive")
	}
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		for {
			head, tail := wrapOnce(line, width)
			lines = append(lines, head)
			if tail == "" {
				break
			}
			line = tail
		}
	}
	return strings.Join(lines, "\n")
}

// wrapOnce cuts at most one line of the given display width off the front
// of s. It prefers the last space within the width; failing that, the first
// space beyond it. The space at the cut is consumed, the head is trimmed on
// the right and the tail on both sides.
func wrapOnce(s string, width int) (head, tail string) {
	head = s
	if runewidth.StringWidth(s) > width {
		within, beyond := spaceCuts(s, width)
		if within > 0 && strings.TrimSpace(s[:within]) != "" {
			head, tail = s[:within], s[within+1:]
		} else if beyond > 0 {
			head, tail = s[:beyond], s[beyond+1:]
		}
	}
	return strings.TrimRightFunc(head, unicode.IsSpace), strings.TrimSpace(tail)
}

// spaceCuts returns the byte index of the last space whose prefix fits the
// width, and of the first space whose prefix exceeds it. Either is -1 when
// no such space exists.
func spaceCuts(s string, width int) (within, beyond int) {
	within, beyond = -1, -1
	w := 0
	for i, r := range s {
		if r == ' ' {
			if w <= width {
				within = i
			} else if beyond < 0 {
				beyond = i
				break
			}
		}
		w += runewidth.RuneWidth(r)
	}
	return within, beyond
}
