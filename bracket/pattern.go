package bracket

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coregx/coregex"
)

// ErrAmbiguous indicates that a pair's open and close patterns matched at
// the same position, so the scan cannot tell a deeper region from the end
// of the current one. The error returned by a scan wraps ErrAmbiguous and
// names the offending offset; test with errors.Is.
var ErrAmbiguous = errors.New("bracket: open and close patterns match at the same position")

// CompilePattern returns a pair whose open and close tokens are regex
// patterns rather than literal strings, in the syntax accepted by coregex.
// Patterns that can match the empty string are rejected: a zero-width token
// would stall the scan.
//
// Equal open and close patterns form a quote pair, as with Quote. For any
// other pair the two patterns must never match at the same position; a scan
// that catches them doing so stops with an error wrapping ErrAmbiguous.
//
// Example:
//
//	p, err := bracket.CompilePattern(`\w+\(`, `\)`)
//	// p.FindRight("call(f(x), y) z", 0) == 13, the index past the last ")"
func CompilePattern(open, close string) (Pair, error) {
	openRe, err := compileToken(open)
	if err != nil {
		return Pair{}, err
	}
	closeRe, err := compileToken(close)
	if err != nil {
		return Pair{}, err
	}
	openLoose, err := coregex.Compile("(?:" + open + ")")
	if err != nil {
		return Pair{}, &TokenError{Token: open, Message: "cannot compile token pattern", Err: err}
	}
	return Pair{Open: open, Close: close, openRe: openRe, closeRe: closeRe, openLoose: openLoose}, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(open, close string) Pair {
	p, err := CompilePattern(open, close)
	if err != nil {
		panic(err)
	}
	return p
}

// compileToken compiles a token pattern anchored to the probe position.
func compileToken(pattern string) (*coregex.Regex, error) {
	re, err := coregex.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, &TokenError{Token: pattern, Message: "cannot compile token pattern", Err: err}
	}
	if re.MatchString("") {
		return nil, &TokenError{Token: pattern, Message: "token pattern matches the empty string"}
	}
	return re, nil
}

// matchLen returns the width of the anchored match of re at the start of s,
// or -1 when there is no match. A zero-width match counts as no match so
// scans always advance.
func matchLen(re *coregex.Regex, s string) int {
	loc := re.FindStringIndex(s)
	if loc == nil || loc[1] == 0 {
		return -1
	}
	return loc[1]
}

// findRightPattern is the FindRight scan for pattern pairs. The scan window
// is clipped at the first newline after start unless the pair crosses
// lines, so token matches never straddle a line boundary.
func (p Pair) findRightPattern(text string, start int) (int, error) {
	if start < 0 || start >= len(text) {
		return NotFound, ErrNotOpen
	}
	win := text
	if !p.CrossLine {
		if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
			win = text[:start+nl]
		}
	}
	w := matchLen(p.openRe, win[start:])
	if w < 0 {
		return NotFound, ErrNotOpen
	}

	quote := p.IsQuote()
	depth := 1
	i := start + w
	for i < len(win) {
		if p.Escape != "" && strings.HasPrefix(win[i:], p.Escape) {
			i += len(p.Escape) + p.escapedWidth(win, i+len(p.Escape))
			continue
		}
		cw := matchLen(p.closeRe, win[i:])
		ow := -1
		if !quote {
			ow = matchLen(p.openRe, win[i:])
		}
		if ow > 0 && cw > 0 {
			return NotFound, fmt.Errorf("%w (offset %d)", ErrAmbiguous, i)
		}
		if ow > 0 {
			depth++
			i += ow
			continue
		}
		if cw > 0 {
			depth--
			i += cw
			if depth == 0 {
				return i, nil
			}
			continue
		}
		_, rw := utf8.DecodeRuneInString(win[i:])
		i += rw
	}
	return NotFound, nil
}

// findLeftPattern is the FindLeft scan for pattern pairs. Leftward regex
// scanning is not a thing, so the window before end is tokenized forward
// exactly as findRightPattern reads it and the tokens are walked backward;
// the two scans therefore agree on every token boundary, which is what
// makes FindLeft invert FindRight.
func (p Pair) findLeftPattern(text string, end int) (int, error) {
	if end <= 0 || end > len(text) {
		return NotFound, ErrNotClose
	}
	lo := 0
	if !p.CrossLine {
		if nl := strings.LastIndexByte(text[:end], '\n'); nl >= 0 {
			lo = nl + 1
		}
	}
	win := text[lo:end]
	quote := p.IsQuote()

	type token struct {
		start, end int
		close      bool
	}
	var toks []token
	for i := 0; i < len(win); {
		if p.Escape != "" && strings.HasPrefix(win[i:], p.Escape) {
			i += len(p.Escape) + p.escapedWidth(win, i+len(p.Escape))
			continue
		}
		cw := matchLen(p.closeRe, win[i:])
		ow := -1
		if !quote {
			ow = matchLen(p.openRe, win[i:])
		}
		if ow > 0 && cw > 0 {
			return NotFound, fmt.Errorf("%w (offset %d)", ErrAmbiguous, lo+i)
		}
		switch {
		case cw > 0:
			toks = append(toks, token{i, i + cw, true})
			i += cw
		case ow > 0:
			toks = append(toks, token{i, i + ow, false})
			i += ow
		default:
			_, rw := utf8.DecodeRuneInString(win[i:])
			i += rw
		}
	}

	if len(toks) == 0 {
		return NotFound, ErrNotClose
	}
	last := toks[len(toks)-1]
	if last.end != len(win) || !last.close {
		return NotFound, ErrNotClose
	}
	if quote {
		if len(toks) < 2 {
			return NotFound, nil
		}
		return lo + toks[len(toks)-2].start, nil
	}
	depth := 1
	for k := len(toks) - 2; k >= 0; k-- {
		if toks[k].close {
			depth++
			continue
		}
		depth--
		if depth == 0 {
			return lo + toks[k].start, nil
		}
	}
	return NotFound, nil
}
