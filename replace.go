package rex

import (
	"strconv"
	"strings"
)

// Sub returns s with matches of the pattern replaced by repl, at most max
// replacements when max > 0, all of them when max < 0.
//
// Inside repl, $ signs are interpreted as in the engine's ReplaceAll: $0
// is the whole match, $1 through $9 are capture groups, $$ is a literal
// dollar. ${name} and ${num} reference named groups and group numbers
// beyond 9; an unknown reference expands to nothing.
//
// Example:
//
//	p := rex.MustCompile(`(\w+) = {}`)
//	p.Sub("x = (1, 2); y = (3)", "$1", -1) // "x; y"
func (p *Pattern) Sub(s, repl string, max int) string {
	out, _ := p.SubN(s, repl, max)
	return out
}

// SubN is like Sub and also reports the number of replacements made.
func (p *Pattern) SubN(s, repl string, max int) (string, int) {
	matches := p.FindAllMatches(s, max)
	if len(matches) == 0 {
		return s, 0
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m.Start])
		expand(&b, repl, m)
		last = m.End
	}
	b.WriteString(s[last:])
	return b.String(), len(matches)
}

// SubFunc returns s with each match replaced by the return value of fn,
// at most max replacements when max > 0. The returned text is substituted
// directly, without template expansion.
func (p *Pattern) SubFunc(s string, fn func(*Match) string, max int) string {
	matches := p.FindAllMatches(s, max)
	if len(matches) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m.Start])
		b.WriteString(fn(m))
		last = m.End
	}
	b.WriteString(s[last:])
	return b.String()
}

// expand writes template to b, replacing $ references with group texts
// from m.
func expand(b *strings.Builder, template string, m *Match) {
	i := 0
	for i < len(template) {
		if template[i] != '$' || i+1 >= len(template) {
			b.WriteByte(template[i])
			i++
			continue
		}

		next := template[i+1]

		// $0-$9
		if next >= '0' && next <= '9' {
			g := int(next - '0')
			if g <= len(m.Groups) {
				b.WriteString(m.Group(g))
			}
			i += 2
			continue
		}

		// ${name} or ${num}
		if next == '{' {
			if stop := strings.IndexByte(template[i+2:], '}'); stop >= 0 {
				b.WriteString(refText(m, template[i+2:i+2+stop]))
				i += stop + 3
				continue
			}
			// Unclosed brace, treat the $ as literal.
			b.WriteByte('$')
			i++
			continue
		}

		// $$ -> $
		if next == '$' {
			b.WriteByte('$')
			i += 2
			continue
		}

		// Unknown $ escape, treat as literal.
		b.WriteByte('$')
		i++
	}
}

// refText resolves a braced reference, numeric or named.
func refText(m *Match, ref string) string {
	if ref == "" {
		return ""
	}
	if ref[0] >= '0' && ref[0] <= '9' {
		n, err := strconv.Atoi(ref)
		if err != nil || n > len(m.Groups) {
			return ""
		}
		return m.Group(n)
	}
	return m.Named(ref)
}
