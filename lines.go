package rex

import (
	"sort"

	"github.com/coregx/rex/textutil"
)

// LineMatch is a Match annotated with the position of its start: Line is
// the 1-based line number, Col the byte offset within that line. A match
// spanning several lines belongs to the line it starts on.
type LineMatch struct {
	Line int
	Col  int
	*Match
}

// LineMatches returns every match of the pattern in s together with line
// and column information, computed from a single pass over s rather than
// by matching line by line.
//
// Example:
//
//	p := rex.MustCompile(`x+`)
//	p.LineMatches("axx\nxa")
//	// line 1 col 1 "xx", line 2 col 0 "x"
func (p *Pattern) LineMatches(s string) []LineMatch {
	matches := p.FindAllMatches(s, -1)
	if len(matches) == 0 {
		return nil
	}
	starts := textutil.LineStarts(s)
	out := make([]LineMatch, len(matches))
	for i, m := range matches {
		ln := sort.SearchInts(starts, m.Start+1) - 1
		out[i] = LineMatch{Line: ln + 1, Col: m.Start - starts[ln], Match: m}
	}
	return out
}
