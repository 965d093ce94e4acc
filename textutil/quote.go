package textutil

import (
	"fmt"
	"strings"
)

// SyntaxError reports an unterminated quoted literal found by
// CollapseQuotes. Offset is the byte index of the opening quote.
type SyntaxError struct {
	Offset int
	Quote  string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("textutil: unterminated string literal %s at offset %d", e.Quote, e.Offset)
}

// CollapseQuotes returns a copy of s with every quoted literal removed,
// quote marks included. Single and double quotes are recognized, as are
// their tripled forms, and a backslash escapes the character after it both
// inside and outside quotes. Quotes of one kind are opaque to the other.
//
// The removal makes the remainder safe for bracket scanning: bracket and
// delimiter characters inside string literals no longer count.
//
// An unterminated literal is reported as a *SyntaxError.
//
// Example:
//
//	textutil.CollapseQuotes(`f("a(b", x)`)
//	// `f(, x)`, nil
func CollapseQuotes(s string) (string, error) {
	var b strings.Builder
	var quote string // active quote token: `'`, `"`, `'''`, or `"""`
	opened := 0
	keep := 0
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '\\' {
			i += 2
			continue
		}
		if c != '\'' && c != '"' {
			i++
			continue
		}
		q := string(c)
		if quote != "" {
			switch quote {
			case q:
				i++
				quote, keep = "", i
			case q + q + q:
				if strings.HasPrefix(s[i:], quote) {
					i += 3
					quote, keep = "", i
				} else {
					i++
				}
			default:
				i++
			}
			continue
		}
		b.WriteString(s[keep:i])
		opened = i
		if strings.HasPrefix(s[i:], q+q+q) {
			quote = q + q + q
			i += 3
		} else {
			quote = q
			i++
		}
	}
	if quote != "" {
		return "", &SyntaxError{Offset: opened, Quote: quote}
	}
	b.WriteString(s[keep:])
	return b.String(), nil
}
