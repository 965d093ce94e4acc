// Package rex provides bracket-aware convenience operations on top of the
// coregex engine.
//
// A Pattern wraps one or more compiled engine patterns. Its source may
// contain a region mark (default "{}") standing for a balanced bracket
// region: `f{}` matches a call to f with properly nested parentheses of
// any depth, something a regular expression alone cannot express.
//
// Basic usage:
//
//	p := rex.MustCompile(`func {}`)
//	m := p.Search("x := func (a, (b, c)) int { return a }")
//	// m.Text == "func (a, (b, c))"
//
// Matching alternates between engine matches of the text between marks and
// bracket-region jumps at each mark. A mark whose position carries no open
// bracket simply disappears, so `a{}b` matches "ab" as well as "a(c)b" but
// not "a(b)".
//
// The split family applies a delimiter budget counted from either end of
// the string and can skip delimiters inside bracket regions:
//
//	p := rex.MustCompile(`,`)
//	p.Split("a,(b,c),d", -1, rex.Protected(bracket.DefaultSet()))
//	// ["a" "(b,c)" "d"]
//
// Count conventions throughout the package: max < 0 means unlimited,
// max == 0 performs nothing, max > 0 bounds the operation.
//
// Limitations:
//   - The region mark is recognized textually, even inside character
//     classes and escape sequences. Configure another mark when the
//     literal text is needed.
//   - Anchors inside a pattern apply within their own segment, because
//     segments are matched piecewise around region jumps.
package rex

import (
	"strings"

	"github.com/coregx/coregex"

	"github.com/coregx/rex/bracket"
)

// Pattern is a compiled pattern whose source may contain region marks.
//
// The source is split on the mark into segments. Every contiguous segment
// range is precompiled anchored, so invalid segment combinations surface
// at compile time, never during matching.
//
// A Pattern is immutable after construction and safe for concurrent use.
//
// Example:
//
//	p := rex.MustCompile(`if {} \{`)
//	p.HasMatch("if (x > (y+1)) {")  // true
type Pattern struct {
	source string
	config Config
	set    *bracket.Set
	segs   []string
	ranges []segRange
	loose  *coregex.Regex
}

// SmartPattern is an alias for Pattern for callers who prefer the explicit
// name. Region-mark handling is part of every Pattern; a source without a
// mark behaves like a plain engine pattern.
type SmartPattern = Pattern

// segRange holds the compiled form of one contiguous segment range.
// full is only built for ranges that end at the last segment.
type segRange struct {
	anch  *coregex.Regex
	full  *coregex.Regex
	names []string
}

// Compile compiles a pattern with the default configuration.
//
// The pattern may contain the region mark "{}". Returns a *PatternError
// if any segment combination fails to compile.
//
// Example:
//
//	p, err := rex.Compile(`let \w+ = {};`)
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var callPattern = rex.MustCompile(`\w+{}`)
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("rex: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// Wrap compiles a pattern with options applied over the default
// configuration.
//
// Example:
//
//	p, err := rex.Wrap(`key: {}`, rex.CaseInsensitive(), rex.WithMark("{}"))
func Wrap(pattern string, opts ...Option) (*Pattern, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return CompileWithConfig(pattern, config)
}

// MustWrap is like Wrap but panics if the pattern cannot be compiled.
func MustWrap(pattern string, opts ...Option) *Pattern {
	p, err := Wrap(pattern, opts...)
	if err != nil {
		panic("rex: Wrap(`" + pattern + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := rex.DefaultConfig()
//	config.DotAll = true
//	p, err := rex.CompileWithConfig(`begin {} end`, config)
func CompileWithConfig(pattern string, config Config) (*Pattern, error) {
	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	segs := strings.Split(pattern, config.Mark)
	if len(segs) > config.MaxSegments {
		return nil, &PatternError{Pattern: pattern, Err: ErrTooManyRegions}
	}

	p := &Pattern{
		source: pattern,
		config: config,
		set:    config.brackets(),
		segs:   segs,
	}
	if err := p.compile(); err != nil {
		return nil, err
	}
	return p, nil
}

// compile builds the engine patterns: one anchored pattern per contiguous
// segment range, a full variant for ranges ending at the last segment, and
// an unanchored first segment for candidate discovery.
//
// Matching may need any range [i..j]: a region jump at mark i-1 resets
// accumulation at segment i, and a deleted mark extends the range to j.
// Segment sources are joined raw, exactly as the mark's removal leaves
// them, so groups and alternations spanning a deleted mark keep working.
func (p *Pattern) compile() error {
	n := len(p.segs)
	prefix := p.config.flagPrefix()

	p.ranges = make([]segRange, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			src := strings.Join(p.segs[i:j+1], "")
			anch, err := coregex.Compile(prefix + `\A(?:` + src + `)`)
			if err != nil {
				return &PatternError{Pattern: p.source, Err: err}
			}
			r := segRange{anch: anch, names: anch.SubexpNames()}
			if j == n-1 {
				full, err := coregex.Compile(prefix + `\A(?:` + src + `)\z`)
				if err != nil {
					return &PatternError{Pattern: p.source, Err: err}
				}
				r.full = full
			}
			p.ranges[p.rangeIndex(i, j)] = r
		}
	}

	loose, err := coregex.Compile(prefix + `(?:` + p.segs[0] + `)`)
	if err != nil {
		return &PatternError{Pattern: p.source, Err: err}
	}
	p.loose = loose
	return nil
}

// rangeIndex maps a segment range [i..j] into the triangular ranges table.
func (p *Pattern) rangeIndex(i, j int) int {
	n := len(p.segs)
	return i*n - i*(i-1)/2 + (j - i)
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.source
}

// Segments returns the pattern source split on the region mark. A pattern
// without a mark has exactly one segment.
func (p *Pattern) Segments() []string {
	return append([]string(nil), p.segs...)
}

// Config returns the configuration the pattern was compiled with.
func (p *Pattern) Config() Config {
	return p.config
}

// Brackets returns the bracket set region marks jump with. When the
// configuration named no set, this is the resolved default set.
func (p *Pattern) Brackets() *bracket.Set {
	return p.set
}

// NumSubexp returns the number of capture groups across all segments.
func (p *Pattern) NumSubexp() int {
	return p.ranges[p.rangeIndex(0, len(p.segs)-1)].anch.NumSubexp()
}
