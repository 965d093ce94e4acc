// Package bracket locates and enumerates delimited regions in text.
//
// A Pair describes a delimiter pair such as parentheses, square brackets,
// or quote marks. The package answers two questions about a pair:
//   - FindRight: given the position of an open token, where does the
//     matching close token end?
//   - FindLeft: given the end of a close token, where does the matching
//     open token start?
//
// Both scans respect nesting and an optional escape token. Tokens are
// literal strings or, through CompilePattern, regex patterns matched by
// the coregex engine. A Set groups several pairs and enumerates their
// non-overlapping regions in a single pass, which is what
// bracket-protected splitting and region-jump matching build on.
//
// "Not found" is a normal outcome, reported as the NotFound index with a
// nil error. Errors are reserved for invalid pairs, misplaced scan
// origins, and ambiguous pattern tokens.
package bracket

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coregx/coregex"
)

// NotFound is returned by FindRight and FindLeft when the text ends (or the
// line ends, for pairs that do not cross lines) before the partner token.
const NotFound = -1

// Scan origin errors. The scan origin must carry the token the caller
// claims is there; anything else is a caller bug, not an unbalanced input.
var (
	// ErrNotOpen indicates that the text at the scan origin does not begin
	// with the pair's open token.
	ErrNotOpen = errors.New("bracket: scan origin is not an open token")

	// ErrNotClose indicates that the text before the scan origin does not
	// end with the pair's close token.
	ErrNotClose = errors.New("bracket: scan origin is not a close token")
)

// TokenError reports an invalid pair definition.
type TokenError struct {
	Token   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("bracket: invalid token %q: %s", e.Token, e.Message)
}

// Unwrap returns the underlying pattern compile error, if any.
func (e *TokenError) Unwrap() error {
	return e.Err
}

// Pair describes a delimiter pair.
//
// Open and Close are literal tokens and may be longer than one rune. A pair
// whose Open equals its Close is a quote pair: quote regions do not nest and
// their contents are opaque to every other pair. Pairs built by
// CompilePattern treat Open and Close as regex patterns instead of literal
// tokens.
//
// Escape, when non-empty, is a literal token that disables the token or rune
// immediately following it. CrossLine controls whether a region may contain
// a newline; by default a bare "\n" terminates the scan with NotFound.
//
// Example:
//
//	p := bracket.Literal("(", ")")
//	end, _ := p.FindRight("f(g(x), y) + 1", 1)
//	// end == 10, the index just past the matching ")"
type Pair struct {
	Open      string
	Close     string
	Escape    string
	CrossLine bool

	// Compiled matchers, set only by CompilePattern.
	openRe    *coregex.Regex
	closeRe   *coregex.Regex
	openLoose *coregex.Regex
}

// Literal returns a pair with the given open and close tokens.
func Literal(open, close string) Pair {
	return Pair{Open: open, Close: close}
}

// Quote returns a non-nesting pair whose open and close token are both q.
func Quote(q string) Pair {
	return Pair{Open: q, Close: q}
}

// WithEscape returns a copy of the pair with the escape token set.
func (p Pair) WithEscape(esc string) Pair {
	p.Escape = esc
	return p
}

// AcrossLines returns a copy of the pair whose regions may span newlines.
func (p Pair) AcrossLines() Pair {
	p.CrossLine = true
	return p
}

// IsQuote reports whether the pair is a quote pair (open equals close).
func (p Pair) IsQuote() bool {
	return p.Open != "" && p.Open == p.Close
}

// IsPattern reports whether the pair's tokens are regex patterns.
func (p Pair) IsPattern() bool {
	return p.openRe != nil
}

// Validate checks the pair definition.
//
// Open and Close must be non-empty. The escape token, when set, must differ
// from both. Equal open and close tokens are allowed and make the pair a
// quote pair.
func (p Pair) Validate() error {
	if p.Open == "" {
		return &TokenError{Token: p.Open, Message: "open token must not be empty"}
	}
	if p.Close == "" {
		return &TokenError{Token: p.Close, Message: "close token must not be empty"}
	}
	if p.Escape != "" && (p.Escape == p.Open || p.Escape == p.Close) {
		return &TokenError{Token: p.Escape, Message: "escape token must differ from open and close tokens"}
	}
	if p.IsPattern() {
		if p.closeRe == nil || p.openLoose == nil {
			return &TokenError{Token: p.Open, Message: "pattern pair must be built by CompilePattern"}
		}
		return nil
	}
	if strings.Contains(p.Open, "\n") || strings.Contains(p.Close, "\n") {
		return &TokenError{Token: "\n", Message: "tokens must not contain newlines"}
	}
	return nil
}

// FindRight scans rightward for the close token matching the open token
// that begins at start. It returns the index just past the matching close
// token, so that text[start:end] is the full region including both tokens.
//
// Nested occurrences of the same pair deepen the scan; quote pairs do not
// nest. An occurrence preceded by the escape token is ignored. The scan
// stops at a newline unless the pair crosses lines.
//
// NotFound with a nil error means the region is unbalanced. An error is
// returned only when the pair is invalid or text[start:] does not begin
// with the open token.
//
// Example:
//
//	p := bracket.Literal("(", ")")
//	p.FindRight("a(b(c)d)e", 1) // 8, nil
//	p.FindRight("a(b(c)d", 1)   // bracket.NotFound, nil
func (p Pair) FindRight(text string, start int) (int, error) {
	if err := p.Validate(); err != nil {
		return NotFound, err
	}
	if p.IsPattern() {
		return p.findRightPattern(text, start)
	}
	if start < 0 || start >= len(text) || !strings.HasPrefix(text[start:], p.Open) {
		return NotFound, ErrNotOpen
	}

	quote := p.IsQuote()
	depth := 1
	i := start + len(p.Open)
	for i < len(text) {
		if p.Escape != "" && strings.HasPrefix(text[i:], p.Escape) {
			i += len(p.Escape) + p.escapedWidth(text, i+len(p.Escape))
			continue
		}
		if !quote && strings.HasPrefix(text[i:], p.Open) {
			depth++
			i += len(p.Open)
			continue
		}
		if strings.HasPrefix(text[i:], p.Close) {
			depth--
			i += len(p.Close)
			if depth == 0 {
				return i, nil
			}
			continue
		}
		if text[i] == '\n' && !p.CrossLine {
			return NotFound, nil
		}
		i++
	}
	return NotFound, nil
}

// FindLeft scans leftward for the open token matching the close token that
// ends at end (exclusive). It returns the index of the matching open token,
// so that text[start:end] is the full region including both tokens.
//
// FindLeft is the inverse of FindRight: for balanced text,
// FindLeft(text, FindRight(text, i)) recovers i.
//
// Example:
//
//	p := bracket.Literal("(", ")")
//	p.FindLeft("a(b(c)d)e", 8) // 1, nil
func (p Pair) FindLeft(text string, end int) (int, error) {
	if err := p.Validate(); err != nil {
		return NotFound, err
	}
	if p.IsPattern() {
		return p.findLeftPattern(text, end)
	}
	if end <= 0 || end > len(text) || !strings.HasSuffix(text[:end], p.Close) {
		return NotFound, ErrNotClose
	}

	quote := p.IsQuote()
	depth := 1
	i := end - len(p.Close)
	for i > 0 {
		if ts := i - len(p.Close); !quote && ts >= 0 && text[ts:i] == p.Close {
			if !p.escaped(text, ts) {
				depth++
			}
			i = ts
			continue
		}
		if ts := i - len(p.Open); ts >= 0 && text[ts:i] == p.Open {
			i = ts
			if !p.escaped(text, ts) {
				depth--
				if depth == 0 {
					return i, nil
				}
			}
			continue
		}
		if text[i-1] == '\n' && !p.CrossLine && !p.escaped(text, i-1) {
			return NotFound, nil
		}
		i--
	}
	return NotFound, nil
}

// FindRight locates the close token matching the open token at start.
// It is shorthand for Literal(open, close).FindRight(text, start).
func FindRight(text string, start int, open, close string) (int, error) {
	return Literal(open, close).FindRight(text, start)
}

// FindLeft locates the open token matching the close token ending at end.
// It is shorthand for Literal(open, close).FindLeft(text, end).
func FindLeft(text string, end int, open, close string) (int, error) {
	return Literal(open, close).FindLeft(text, end)
}

// escapedWidth returns how many bytes the escape at i-len(Escape) disables:
// a whole token if one starts at i, otherwise a single rune.
func (p Pair) escapedWidth(text string, i int) int {
	if i >= len(text) {
		return 0
	}
	if p.IsPattern() {
		if w := matchLen(p.openRe, text[i:]); w > 0 {
			return w
		}
		if w := matchLen(p.closeRe, text[i:]); w > 0 {
			return w
		}
		_, w := utf8.DecodeRuneInString(text[i:])
		return w
	}
	if strings.HasPrefix(text[i:], p.Open) {
		return len(p.Open)
	}
	if strings.HasPrefix(text[i:], p.Close) {
		return len(p.Close)
	}
	_, w := utf8.DecodeRuneInString(text[i:])
	return w
}

// escaped reports whether the token starting at ts is disabled by an odd
// run of escape tokens immediately before it.
func (p Pair) escaped(text string, ts int) bool {
	if p.Escape == "" {
		return false
	}
	n := 0
	for j := ts; j >= len(p.Escape) && text[j-len(p.Escape):j] == p.Escape; j -= len(p.Escape) {
		n++
	}
	return n%2 == 1
}
