package bracket

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// ErrEmptySet indicates that NewSet was called without any pairs.
var ErrEmptySet = errors.New("bracket: set needs at least one pair")

// Region is a delimited region found by a Set, spanning text[Start:End)
// including both tokens. Pair is the index of the pair that opened it, in
// the order the pairs were given to NewSet.
type Region struct {
	Start int
	End   int
	Pair  int
}

// Set groups delimiter pairs for single-pass region discovery.
//
// Literal open tokens are indexed in an Aho-Corasick automaton so that the
// next region start is found without trying each pair in turn; pattern
// pairs are probed by their compiled matchers. Within a region only the
// opening pair is significant: other pairs in the set are invisible until
// the region closes.
//
// A Set is immutable after construction and safe for concurrent use.
type Set struct {
	pairs []Pair
	open  map[string]int // literal open token -> pair index
	auto  *ahocorasick.Automaton
	pats  []int // indices of pattern pairs
}

// NewSet validates the pairs and builds a set over them.
//
// Open tokens must be unique within the set, and no literal open token may
// be a prefix of another; either would make the pair opening a region
// ambiguous.
func NewSet(pairs ...Pair) (*Set, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptySet
	}
	open := make(map[string]int, len(pairs))
	patOpen := make(map[string]bool)
	var pats []int
	for i, p := range pairs {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.IsPattern() {
			if patOpen[p.Open] {
				return nil, &TokenError{Token: p.Open, Message: "duplicate open token in set"}
			}
			patOpen[p.Open] = true
			pats = append(pats, i)
			continue
		}
		if _, dup := open[p.Open]; dup {
			return nil, &TokenError{Token: p.Open, Message: "duplicate open token in set"}
		}
		open[p.Open] = i
	}
	for a := range open {
		for b := range open {
			if a != b && len(a) < len(b) && b[:len(a)] == a {
				return nil, &TokenError{Token: a, Message: "open token is a prefix of another open token"}
			}
		}
	}

	var auto *ahocorasick.Automaton
	if len(open) > 0 {
		builder := ahocorasick.NewBuilder()
		for _, p := range pairs {
			if !p.IsPattern() {
				builder.AddPattern([]byte(p.Open))
			}
		}
		a, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("bracket: building token automaton: %w", err)
		}
		auto = a
	}

	return &Set{pairs: append([]Pair(nil), pairs...), open: open, auto: auto, pats: pats}, nil
}

// MustSet is like NewSet but panics on error. It is intended for sets built
// from constant pairs.
func MustSet(pairs ...Pair) *Set {
	s, err := NewSet(pairs...)
	if err != nil {
		panic("bracket: MustSet: " + err.Error())
	}
	return s
}

// DefaultPairs returns the standard bracket pairs: parentheses, square
// brackets, and curly braces.
func DefaultPairs() []Pair {
	return []Pair{
		Literal("(", ")"),
		Literal("[", "]"),
		Literal("{", "}"),
	}
}

// QuotePairs returns backslash-escaped double- and single-quote pairs,
// ready to combine with DefaultPairs in a custom set.
func QuotePairs() []Pair {
	return []Pair{
		Quote(`"`).WithEscape(`\`),
		Quote("'").WithEscape(`\`),
	}
}

// DefaultSet returns a set over DefaultPairs.
func DefaultSet() *Set {
	return MustSet(DefaultPairs()...)
}

// Len returns the number of pairs in the set.
func (s *Set) Len() int {
	return len(s.pairs)
}

// Pair returns the i-th pair of the set.
func (s *Set) Pair(i int) Pair {
	return s.pairs[i]
}

// OpenAt reports which pair's open token begins at text[i:], if any. An
// open token disabled by its pair's escape does not count.
func (s *Set) OpenAt(text string, i int) (int, bool) {
	if i < 0 || i >= len(text) {
		return 0, false
	}
	for pi, p := range s.pairs {
		if p.IsPattern() {
			if matchLen(p.openRe, text[i:]) > 0 && !p.escaped(text, i) {
				return pi, true
			}
			continue
		}
		if len(text)-i >= len(p.Open) && text[i:i+len(p.Open)] == p.Open && !p.escaped(text, i) {
			return pi, true
		}
	}
	return 0, false
}

// Regions enumerates the non-overlapping delimited regions of text in
// left-to-right order.
//
// Scanning inside a region follows the opening pair alone, so a "[" inside
// a parenthesized region neither opens nor closes anything. An unbalanced
// region extends to the end of its line, or to the end of the text for a
// pair that crosses lines.
//
// The error is non-nil only when a pattern pair turns out to be ambiguous,
// wrapping ErrAmbiguous; sets of literal pairs never fail.
//
// Example:
//
//	s := bracket.DefaultSet()
//	regions, _ := s.Regions("a(b,c)[d]")
//	// [{1 6 0} {6 9 1}]
func (s *Set) Regions(text string) ([]Region, error) {
	var regions []Region
	hay := []byte(text)
	pos := 0
	for pos < len(text) {
		start, pi := s.nextOpen(text, hay, pos)
		if start < 0 {
			break
		}
		p := s.pairs[pi]
		end, err := p.FindRight(text, start)
		if err != nil {
			if errors.Is(err, ErrAmbiguous) {
				return nil, err
			}
			// A pattern token clipped by its line window; not a region.
			_, w := utf8.DecodeRuneInString(text[start:])
			pos = start + w
			continue
		}
		if end == NotFound {
			end = len(text)
			if !p.CrossLine {
				if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
					end = start + nl
				}
			}
		}
		regions = append(regions, Region{Start: start, End: end, Pair: pi})
		pos = end
	}
	return regions, nil
}

// nextOpen locates the earliest unescaped open token at or after pos,
// returning its start and pair index, or (-1, -1). Ties between pairs go to
// the one given first to NewSet.
func (s *Set) nextOpen(text string, hay []byte, pos int) (int, int) {
	best, bestPair := -1, -1
	if s.auto != nil {
		for at := pos; at < len(text); {
			m := s.auto.Find(hay, at)
			if m == nil {
				break
			}
			pi := s.open[text[m.Start:m.End]]
			if s.pairs[pi].escaped(text, m.Start) {
				at = m.End
				continue
			}
			best, bestPair = m.Start, pi
			break
		}
	}
	for _, pi := range s.pats {
		p := s.pairs[pi]
		for at := pos; at < len(text); {
			loc := p.openLoose.FindStringIndex(text[at:])
			if loc == nil {
				break
			}
			st := at + loc[0]
			if loc[1] == loc[0] || p.escaped(text, st) {
				if st >= len(text) {
					break
				}
				_, w := utf8.DecodeRuneInString(text[st:])
				at = st + w
				continue
			}
			if best < 0 || st < best || (st == best && pi < bestPair) {
				best, bestPair = st, pi
			}
			break
		}
	}
	return best, bestPair
}

// Protected reports whether the span text[start:end) intersects any region
// of the set. Zero-width spans are protected only strictly inside a region.
func (s *Set) Protected(text string, start, end int) (bool, error) {
	regions, err := s.Regions(text)
	if err != nil {
		return false, err
	}
	for _, r := range regions {
		if r.Start >= end {
			break
		}
		if start < r.End && r.Start < end {
			return true, nil
		}
	}
	return false, nil
}
