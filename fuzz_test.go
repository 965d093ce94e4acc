// Fuzz tests for the invariants the package documents: split results
// reconstruct their input, budgets bound piece counts from either end, and
// every reported match span is a faithful slice of the searched string.
//
// Run fuzz tests with:
//
//	go test -fuzz=FuzzSplitRoundTrip -fuzztime=30s
//	go test -fuzz=FuzzSplitBudgets -fuzztime=30s
//	go test -fuzz=FuzzMatchConsistency -fuzztime=30s
package rex

import (
	"reflect"
	"strings"
	"testing"

	"github.com/coregx/rex/bracket"
)

// ===========================================================================
// Seed Corpus - delimiters, marked patterns, and inputs
// ===========================================================================

// Delimiter patterns exercised by the split fuzz targets.
var seedDelimiters = []string{
	`,`,
	`,\s*`,
	`\s+`,
	`;`,
	`a`,
	`a*`,
	``,
	`[,;]`,
	`--+`,
}

// Marked patterns exercised by the match fuzz target.
var seedMarked = []string{
	`a{}b`,
	`\w+ = {}`,
	`{}`,
	`f{}`,
	`a{}{}b`,
	`\w+`,
	`(\w+): {}`,
}

// Inputs shared by all targets.
var seedInputs = []string{
	"",
	"a",
	"a,b,c",
	"a,(b,c),d",
	"a, b, c",
	"(a,b),c,d",
	"x = (1, 2); y = (3)",
	"f(g(x), y) + 1",
	"a(bc",
	"a(b)c",
	"a(x)(y)b",
	"nested ((deep (er)))",
	"quotes \"a,(b\" end",
	"line one\nline two (x,\ny)",
	"日本語, テスト",
	"--a--b---c--",
	";;;",
	"   ",
	"a\\(b(c)",
}

// ===========================================================================
// FuzzSplitRoundTrip - pieces and delimiter spans reconstruct the input
// ===========================================================================

func FuzzSplitRoundTrip(f *testing.F) {
	for _, in := range seedInputs {
		f.Add(in)
	}

	pats := make([]*Pattern, len(seedDelimiters))
	for i, d := range seedDelimiters {
		pats[i] = MustCompile(d)
	}
	set := bracket.DefaultSet()

	f.Fuzz(func(t *testing.T, input string) {
		for _, p := range pats {
			for _, opts := range [][]SplitOption{nil, {Protected(set)}} {
				pieces := p.Split(input, -1, opts...)
				spans := p.SplitIndex(input, -1, opts...)
				if len(pieces) != len(spans)+1 {
					t.Fatalf("pattern %q: %d pieces for %d spans", p, len(pieces), len(spans))
				}
				var b strings.Builder
				b.WriteString(pieces[0])
				for i, sp := range spans {
					if sp[0] < 0 || sp[1] < sp[0] || sp[1] > len(input) {
						t.Fatalf("pattern %q: span %v out of bounds for %q", p, sp, input)
					}
					b.WriteString(input[sp[0]:sp[1]])
					b.WriteString(pieces[i+1])
				}
				if b.String() != input {
					t.Errorf("pattern %q: reconstructed %q, want %q", p, b.String(), input)
				}
			}
		}
	})
}

// ===========================================================================
// FuzzSplitBudgets - budgets bound piece counts identically from both ends
// ===========================================================================

func FuzzSplitBudgets(f *testing.F) {
	for _, in := range seedInputs {
		f.Add(in)
	}

	pats := make([]*Pattern, len(seedDelimiters))
	for i, d := range seedDelimiters {
		pats[i] = MustCompile(d)
	}

	f.Fuzz(func(t *testing.T, input string) {
		for _, p := range pats {
			all := len(p.SplitIndex(input, -1))
			if got := p.Split(input, 0); len(got) != 1 || got[0] != input {
				t.Fatalf("pattern %q: Split(max=0) = %q", p, got)
			}
			for _, max := range []int{1, 2, 3} {
				want := max
				if want > all {
					want = all
				}
				if got := p.Split(input, max); len(got) != want+1 {
					t.Errorf("pattern %q: Split(%q, %d) has %d pieces, want %d", p, input, max, len(got), want+1)
				}
				if got := p.RSplit(input, max); len(got) != want+1 {
					t.Errorf("pattern %q: RSplit(%q, %d) has %d pieces, want %d", p, input, max, len(got), want+1)
				}
			}
			left := p.Split(input, -1)
			right := p.RSplit(input, -1)
			if !reflect.DeepEqual(left, right) {
				t.Errorf("pattern %q: unlimited Split %q != RSplit %q", p, left, right)
			}
		}
	})
}

// ===========================================================================
// FuzzMatchConsistency - spans are faithful and re-anchorable
// ===========================================================================

func FuzzMatchConsistency(f *testing.F) {
	for _, in := range seedInputs {
		f.Add(in)
	}

	pats := make([]*Pattern, len(seedMarked))
	for i, src := range seedMarked {
		pats[i] = MustCompile(src)
	}

	f.Fuzz(func(t *testing.T, input string) {
		for _, p := range pats {
			m := p.Search(input)
			if (m != nil) != p.HasMatch(input) {
				t.Fatalf("pattern %q: Search and HasMatch disagree on %q", p, input)
			}
			if m != nil {
				if m.Start < 0 || m.End < m.Start || m.End > len(input) {
					t.Fatalf("pattern %q: span [%d,%d) out of bounds", p, m.Start, m.End)
				}
				if m.Text != input[m.Start:m.End] {
					t.Fatalf("pattern %q: Text %q != input[%d:%d]", p, m.Text, m.Start, m.End)
				}
				again := p.MatchAt(input, m.Start)
				if again == nil || again.End != m.End {
					t.Errorf("pattern %q: MatchAt(%d) = %v, want the searched span [%d,%d)",
						p, m.Start, again, m.Start, m.End)
				}
			}

			prevEnd := 0
			for _, m := range p.FindAllMatches(input, -1) {
				if m.Start < prevEnd {
					t.Fatalf("pattern %q: overlapping matches on %q", p, input)
				}
				if m.Text != input[m.Start:m.End] {
					t.Fatalf("pattern %q: match text %q is not a slice of the input", p, m.Text)
				}
				prevEnd = m.End
			}
		}
	})
}
