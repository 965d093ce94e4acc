package rex

import (
	"errors"
	"unicode/utf8"

	"github.com/coregx/rex/bracket"
)

// Match describes one occurrence of a pattern in a string.
//
// Start and End are byte offsets into the searched string; Text is the
// matched substring. Groups holds the capture group texts in source order
// across all segments, and Names maps a group name to its 1-based group
// number. A group that did not participate in the match is the empty
// string, as in the engine's submatch results.
type Match struct {
	Text   string
	Start  int
	End    int
	Groups []string
	Names  map[string]int
}

// Group returns the text of the i-th capture group. Group(0) is the whole
// match.
func (m *Match) Group(i int) string {
	if i == 0 {
		return m.Text
	}
	return m.Groups[i-1]
}

// Named returns the text of the named capture group, or "" if the pattern
// has no group with that name.
func (m *Match) Named(name string) string {
	if n, ok := m.Names[name]; ok {
		return m.Group(n)
	}
	return ""
}

// Match anchors the pattern at the start of s. It returns nil when s does
// not begin with the pattern. The match need not extend to the end of s;
// use FullMatch for that.
//
// Example:
//
//	p := rex.MustCompile(`a{}c`)
//	p.Match("a(b)c tail") // matches "a(b)c"
//	p.Match("xa(b)c")     // nil
func (p *Pattern) Match(s string) *Match {
	return p.MatchAt(s, 0)
}

// MatchAt anchors the pattern at byte offset at in s. An offset outside
// [0, len(s)] returns nil.
func (p *Pattern) MatchAt(s string, at int) *Match {
	if at < 0 || at > len(s) {
		return nil
	}
	return p.matchAt(s, at, false)
}

// FullMatch anchors the pattern at both ends of s: the whole string must
// be one match. It returns nil otherwise.
//
// Example:
//
//	p := rex.MustCompile(`\w+ = {}`)
//	p.FullMatch("x = (1, 2)")     // matches
//	p.FullMatch("x = (1, 2); y") // nil
func (p *Pattern) FullMatch(s string) *Match {
	return p.matchAt(s, 0, true)
}

// Search scans s left to right for the first match. It returns nil when
// there is none.
func (p *Pattern) Search(s string) *Match {
	return p.searchAt(s, 0)
}

// SearchAt scans s left to right for the first match starting at or after
// byte offset at.
func (p *Pattern) SearchAt(s string, at int) *Match {
	if at < 0 || at > len(s) {
		return nil
	}
	return p.searchAt(s, at)
}

// HasMatch reports whether s contains any match of the pattern.
func (p *Pattern) HasMatch(s string) bool {
	return p.Search(s) != nil
}

// FindAllMatches returns the successive non-overlapping matches of the
// pattern in s, at most max of them when max > 0 and all of them when
// max < 0. An empty match directly after a previous match is skipped, as
// in the engine's FindAll family.
func (p *Pattern) FindAllMatches(s string, max int) []*Match {
	if max == 0 {
		return nil
	}
	var matches []*Match
	prevEnd := -1
	for pos := 0; pos <= len(s); {
		m := p.searchAt(s, pos)
		if m == nil {
			break
		}
		accept := true
		if m.End == m.Start {
			if m.Start == prevEnd {
				accept = false
			}
			pos = advance(s, m.Start)
		} else {
			pos = m.End
		}
		prevEnd = m.End
		if accept {
			matches = append(matches, m)
			if max > 0 && len(matches) == max {
				break
			}
		}
	}
	return matches
}

// matchAt runs the anchored smart match at position at.
//
// The pattern's segments are consumed left to right. The pending segment
// range is matched anchored at the current position; the text at the range
// match's end decides each mark: an open bracket token there jumps the
// balanced region and restarts accumulation after it, anything else
// deletes the mark, extending the pending range by the next segment. An
// unbalanced region fails the whole match. The final range must match at
// the last jump target, to the end of s when full is set.
func (p *Pattern) matchAt(s string, at int, full bool) *Match {
	n := len(p.segs)
	var groups []string
	var names map[string]int
	pos := at
	first := 0

	for k := 0; k < n-1; k++ {
		r := p.ranges[p.rangeIndex(first, k)]
		loc := r.anch.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			return nil
		}
		end := pos + loc[1]
		pi, ok := p.set.OpenAt(s, end)
		if !ok {
			continue
		}
		stop, err := p.set.Pair(pi).FindRight(s, end)
		if err != nil {
			if errors.Is(err, bracket.ErrAmbiguous) {
				panic("rex: bracket set: " + err.Error())
			}
			// A pattern open clipped by its line window is no open here.
			continue
		}
		if stop == bracket.NotFound {
			return nil
		}
		groups, names = appendGroups(groups, names, s, pos, loc, r.names)
		pos = stop
		first = k + 1
	}

	r := p.ranges[p.rangeIndex(first, n-1)]
	re := r.anch
	if full {
		re = r.full
	}
	loc := re.FindStringSubmatchIndex(s[pos:])
	if loc == nil {
		return nil
	}
	groups, names = appendGroups(groups, names, s, pos, loc, r.names)
	end := pos + loc[1]
	return &Match{Text: s[at:end], Start: at, End: end, Groups: groups, Names: names}
}

// searchAt finds the leftmost match starting at or after pos.
//
// Candidate positions come from unanchored engine matches of the first
// segment. Each candidate is tried with the full anchored machinery; a
// failed candidate advances the scan one rune past its start, so empty
// first-segment matches still make progress.
func (p *Pattern) searchAt(s string, pos int) *Match {
	if len(p.segs) == 1 {
		loc := p.loose.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			return nil
		}
		groups, names := appendGroups(nil, nil, s, pos, loc, p.ranges[0].names)
		return &Match{
			Text:   s[pos+loc[0] : pos+loc[1]],
			Start:  pos + loc[0],
			End:    pos + loc[1],
			Groups: groups,
			Names:  names,
		}
	}

	for pos <= len(s) {
		loc := p.loose.FindStringIndex(s[pos:])
		if loc == nil {
			return nil
		}
		cand := pos + loc[0]
		if m := p.matchAt(s, cand, false); m != nil {
			return m
		}
		pos = advance(s, cand)
	}
	return nil
}

// appendGroups converts one engine submatch index slice, relative to
// s[base:], into absolute group texts appended to groups. Named groups
// record their 1-based position in the combined group list, which equals
// their group number in the whole pattern because groups cannot span a
// mark.
func appendGroups(groups []string, names map[string]int, s string, base int, loc []int, segNames []string) ([]string, map[string]int) {
	for g := 1; 2*g < len(loc); g++ {
		var text string
		if loc[2*g] >= 0 {
			text = s[base+loc[2*g] : base+loc[2*g+1]]
		}
		groups = append(groups, text)
		if name := segNames[g]; name != "" {
			if names == nil {
				names = make(map[string]int)
			}
			names[name] = len(groups)
		}
	}
	return groups, names
}

// advance returns the position one rune past i, or past the end of s when
// i is already there.
func advance(s string, i int) int {
	if i >= len(s) {
		return i + 1
	}
	_, w := utf8.DecodeRuneInString(s[i:])
	return i + w
}
