package rex

import "github.com/coregx/rex/bracket"

// A SplitOption adjusts one split call.
type SplitOption func(*splitConfig)

type splitConfig struct {
	protect *bracket.Set
}

// Protected makes the split skip delimiter matches inside regions of set.
// A skipped delimiter does not count against the budget; scanning resumes
// past the region close.
//
// Splitting panics if scanning the set fails, which can only happen when a
// pattern pair of the set is ambiguous on s; sets of literal pairs never
// fail.
//
// Example:
//
//	p := rex.MustCompile(`,`)
//	p.Split("a,(b,c),d", -1, rex.Protected(bracket.DefaultSet()))
//	// ["a" "(b,c)" "d"]
func Protected(set *bracket.Set) SplitOption {
	return func(c *splitConfig) { c.protect = set }
}

// Split slices s around matches of the pattern and returns the pieces in
// source order.
//
// max bounds the number of delimiters used, counted from the left: the
// text after the max-th delimiter stays in one verbatim piece. max < 0
// uses every delimiter; max == 0 returns []string{s} unchanged. Note that
// max counts delimiters, not pieces as in the engine's Split.
//
// Example:
//
//	p := rex.MustCompile(`,\s*`)
//	p.Split("a, b, c", -1) // ["a" "b" "c"]
//	p.Split("a, b, c", 1)  // ["a" "b, c"]
func (p *Pattern) Split(s string, max int, opts ...SplitOption) []string {
	if max == 0 {
		return []string{s}
	}
	spans := p.delimiterSpans(s, opts)
	if max > 0 && len(spans) > max {
		spans = spans[:max]
	}
	pieces := make([]string, 0, len(spans)+1)
	last := 0
	for _, sp := range spans {
		pieces = append(pieces, s[last:sp[0]])
		last = sp[1]
	}
	return append(pieces, s[last:])
}

// LSplit is Split under the name that mirrors RSplit: the delimiter budget
// counts from the left end of s.
func (p *Pattern) LSplit(s string, max int, opts ...SplitOption) []string {
	return p.Split(s, max, opts...)
}

// RSplit slices s around matches of the pattern with the delimiter budget
// counted from the right end: only the last max delimiters split, and the
// text before them stays in one verbatim piece. Pieces are returned in
// source order regardless. max < 0 uses every delimiter; max == 0 returns
// []string{s}.
//
// Example:
//
//	p := rex.MustCompile(`,`)
//	p.RSplit("a,b,c,d", 2) // ["a,b" "c" "d"]
func (p *Pattern) RSplit(s string, max int, opts ...SplitOption) []string {
	if max == 0 {
		return []string{s}
	}
	spans := p.delimiterSpans(s, opts)
	if max > 0 && len(spans) > max {
		spans = spans[len(spans)-max:]
	}
	pieces := make([]string, 0, len(spans)+1)
	last := 0
	for _, sp := range spans {
		pieces = append(pieces, s[last:sp[0]])
		last = sp[1]
	}
	return append(pieces, s[last:])
}

// SplitAfter slices s like Split but every piece keeps its trailing
// delimiter, as strings.SplitAfter does.
//
// Example:
//
//	p := rex.MustCompile(`,`)
//	p.SplitAfter("a,b,c", -1) // ["a," "b," "c"]
func (p *Pattern) SplitAfter(s string, max int, opts ...SplitOption) []string {
	if max == 0 {
		return []string{s}
	}
	spans := p.delimiterSpans(s, opts)
	if max > 0 && len(spans) > max {
		spans = spans[:max]
	}
	pieces := make([]string, 0, len(spans)+1)
	last := 0
	for _, sp := range spans {
		pieces = append(pieces, s[last:sp[1]])
		last = sp[1]
	}
	return append(pieces, s[last:])
}

// SplitBefore slices s like Split but every piece keeps its leading
// delimiter.
//
// Example:
//
//	p := rex.MustCompile(`,`)
//	p.SplitBefore("a,b,c", -1) // ["a" ",b" ",c"]
func (p *Pattern) SplitBefore(s string, max int, opts ...SplitOption) []string {
	if max == 0 {
		return []string{s}
	}
	spans := p.delimiterSpans(s, opts)
	if max > 0 && len(spans) > max {
		spans = spans[:max]
	}
	pieces := make([]string, 0, len(spans)+1)
	last := 0
	for _, sp := range spans {
		pieces = append(pieces, s[last:sp[0]])
		last = sp[0]
	}
	return append(pieces, s[last:])
}

// SplitIndex returns the delimiter spans a Split call with the same
// arguments would cut at, each as a [start, end) byte offset pair.
// Interleaving the pieces of Split with the delimiter texts at these spans
// reconstructs s exactly.
func (p *Pattern) SplitIndex(s string, max int, opts ...SplitOption) [][]int {
	if max == 0 {
		return nil
	}
	spans := p.delimiterSpans(s, opts)
	if max > 0 && len(spans) > max {
		spans = spans[:max]
	}
	return spans
}

// delimiterSpans enumerates every usable delimiter match in s, left to
// right, honoring bracket protection and the usual empty-match rules. The
// split methods present scan failures as panics: the only possible cause is
// an ambiguous pattern pair in the protection set, a configuration bug.
func (p *Pattern) delimiterSpans(s string, opts []SplitOption) [][]int {
	var config splitConfig
	for _, opt := range opts {
		opt(&config)
	}
	var regions []bracket.Region
	if config.protect != nil {
		var err error
		regions, err = config.protect.Regions(s)
		if err != nil {
			panic("rex: protected split: " + err.Error())
		}
	}

	var spans [][]int
	ri := 0
	prevEnd := -1
	for pos := 0; pos <= len(s); {
		m := p.searchAt(s, pos)
		if m == nil {
			break
		}
		for ri < len(regions) && regions[ri].End <= m.Start {
			ri++
		}
		if ri < len(regions) && regions[ri].Start < m.End && m.Start < regions[ri].End {
			pos = regions[ri].End
			continue
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
			spans = append(spans, []int{m.Start, m.End})
		}
	}
	return spans
}

// RSplit compiles pattern and splits s with the delimiter budget counted
// from the right. It reports pattern compilation errors before any
// scanning happens.
func RSplit(pattern, s string, max int, opts ...SplitOption) ([]string, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.RSplit(s, max, opts...), nil
}

// LSplit compiles pattern and splits s with the delimiter budget counted
// from the left.
func LSplit(pattern, s string, max int, opts ...SplitOption) ([]string, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.LSplit(s, max, opts...), nil
}
