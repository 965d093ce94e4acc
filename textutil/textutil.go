// Package textutil provides small line- and whitespace-oriented string
// helpers shared by the pattern layer and the CLI: line counting and
// indexing, whitespace trimming that reports removed newlines, display-width
// word wrapping, and collapsing of quoted literals.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineCount returns the number of lines in s, which is one more than the
// number of newline bytes. The empty string has one line.
func LineCount(s string) int {
	return 1 + strings.Count(s, "\n")
}

// LineStarts returns the byte offset of the beginning of each line of s.
// The first entry is always 0, and a trailing newline starts a final empty
// line. len(LineStarts(s)) == LineCount(s).
func LineStarts(s string) []int {
	starts := make([]int, 1, LineCount(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// StartingLines returns the 1-based line number on which each part would
// begin if the parts were concatenated in order.
//
// Example:
//
//	textutil.StartingLines([]string{"a\nb", "c", "d\n"})
//	// [1 2 2]
func StartingLines(parts []string) []int {
	lines := make([]int, len(parts))
	n := 1
	for i, s := range parts {
		lines[i] = n
		n += strings.Count(s, "\n")
	}
	return lines
}

// TrimSpaceCount returns s with leading and trailing whitespace removed,
// together with the number of newlines that were removed on each side.
// The counts let callers keep line numbers stable across trimming.
func TrimSpaceCount(s string) (trimmed string, leading, trailing int) {
	start := 0
	for start < len(s) {
		r, w := utf8.DecodeRuneInString(s[start:])
		if !unicode.IsSpace(r) {
			break
		}
		if r == '\n' {
			leading++
		}
		start += w
	}
	end := len(s)
	for end > start {
		r, w := utf8.DecodeLastRuneInString(s[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		if r == '\n' {
			trailing++
		}
		end -= w
	}
	return s[start:end], leading, trailing
}
