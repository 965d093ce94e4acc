package rex

import (
	"reflect"
	"strings"
	"testing"

	"github.com/coregx/rex/bracket"
)

// TestSplit tests left-budget splitting
func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		max     int
		want    []string
	}{
		{"every delimiter", `,`, "a,b,c", -1, []string{"a", "b", "c"}},
		{"budget of one", `,\s*`, "a, b, c", 1, []string{"a", "b, c"}},
		{"budget of zero", `,`, "a,b,c", 0, []string{"a,b,c"}},
		{"budget beyond delimiters", `,`, "a,b", 5, []string{"a", "b"}},
		{"no delimiter", `;`, "a,b", -1, []string{"a,b"}},
		{"empty input", `,`, "", -1, []string{""}},
		{"delimiters at both ends", `,`, ",a,", -1, []string{"", "a", ""}},
		{"empty delimiter walks runes", ``, "ab", -1, []string{"", "a", "b", ""}},
		{"star delimiter", `a*`, "baa", -1, []string{"", "b", ""}},
		{"multibyte pieces", `,`, "α,β", -1, []string{"α", "β"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustCompile(tt.pattern).Split(tt.input, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

// TestRSplit tests right-budget splitting
func TestRSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  []string
	}{
		{"keep last two", "a,b,c,d", 2, []string{"a,b", "c", "d"}},
		{"keep last one", "a,b,c,d", 1, []string{"a,b,c", "d"}},
		{"every delimiter", "a,b,c,d", -1, []string{"a", "b", "c", "d"}},
		{"budget of zero", "a,b,c,d", 0, []string{"a,b,c,d"}},
		{"budget beyond delimiters", "a,b", 9, []string{"a", "b"}},
		{"no delimiter", "abc", 2, []string{"abc"}},
	}

	p := MustCompile(`,`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.RSplit(tt.input, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RSplit(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

// TestLSplit tests that LSplit budgets from the left
func TestLSplit(t *testing.T) {
	p := MustCompile(`,`)

	got := p.LSplit("a,b,c,d", 2)
	want := []string{"a", "b", "c,d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LSplit(2) = %q, want %q", got, want)
	}
}

// TestSplitAfter tests delimiter-keeping splits on the trailing side
func TestSplitAfter(t *testing.T) {
	p := MustCompile(`,`)

	tests := []struct {
		input string
		max   int
		want  []string
	}{
		{"a,b,c", -1, []string{"a,", "b,", "c"}},
		{"a,b,c", 1, []string{"a,", "b,c"}},
		{"abc", -1, []string{"abc"}},
	}

	for _, tt := range tests {
		got := p.SplitAfter(tt.input, tt.max)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitAfter(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

// TestSplitBefore tests delimiter-keeping splits on the leading side
func TestSplitBefore(t *testing.T) {
	p := MustCompile(`,`)

	tests := []struct {
		input string
		max   int
		want  []string
	}{
		{"a,b,c", -1, []string{"a", ",b", ",c"}},
		{"a,b,c", 1, []string{"a", ",b,c"}},
		{"abc", -1, []string{"abc"}},
	}

	for _, tt := range tests {
		got := p.SplitBefore(tt.input, tt.max)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitBefore(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

// TestSplitProtected tests bracket protection during splits
func TestSplitProtected(t *testing.T) {
	p := MustCompile(`,`)

	tests := []struct {
		name  string
		set   *bracket.Set
		input string
		max   int
		want  []string
	}{
		{
			name:  "delimiter inside region skipped",
			set:   bracket.DefaultSet(),
			input: "a,(b,c),d",
			max:   -1,
			want:  []string{"a", "(b,c)", "d"},
		},
		{
			name:  "skipped delimiter spends no budget",
			set:   bracket.DefaultSet(),
			input: "(a,b),c,d",
			max:   1,
			want:  []string{"(a,b)", "c,d"},
		},
		{
			name:  "unbalanced region protects to line end",
			set:   bracket.DefaultSet(),
			input: "a,(b,c",
			max:   -1,
			want:  []string{"a", "(b,c"},
		},
		{
			name:  "quotes protect when configured",
			set:   bracket.MustSet(append(bracket.DefaultPairs(), bracket.QuotePairs()...)...),
			input: `a,"b,c",d`,
			max:   -1,
			want:  []string{"a", `"b,c"`, "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Split(tt.input, tt.max, Protected(tt.set))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}

	t.Run("rsplit honors protection", func(t *testing.T) {
		got := p.RSplit("a,(b,c),d,e", 1, Protected(bracket.DefaultSet()))
		want := []string{"a,(b,c),d", "e"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("RSplit() = %q, want %q", got, want)
		}
	})

	t.Run("ambiguous protection set panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Split() with an ambiguous pattern pair did not panic")
			}
		}()
		set := bracket.MustSet(bracket.MustCompilePattern(`@+`, `@@`))
		p.Split("x @@ y@@@, z", -1, Protected(set))
	})
}

// TestSplitIndex tests delimiter span reporting and reconstruction
func TestSplitIndex(t *testing.T) {
	p := MustCompile(`,\s*`)

	spans := p.SplitIndex("a, b,c", -1)
	want := [][]int{{1, 3}, {4, 5}}
	if !reflect.DeepEqual(spans, want) {
		t.Fatalf("SplitIndex() = %v, want %v", spans, want)
	}

	if got := p.SplitIndex("a, b", 0); got != nil {
		t.Errorf("SplitIndex(max=0) = %v, want nil", got)
	}

	t.Run("pieces and spans reconstruct the input", func(t *testing.T) {
		input := "a, b,c , d"
		for _, max := range []int{-1, 1, 2} {
			pieces := p.Split(input, max)
			spans := p.SplitIndex(input, max)
			if len(pieces) != len(spans)+1 {
				t.Fatalf("max=%d: %d pieces for %d spans", max, len(pieces), len(spans))
			}
			var b strings.Builder
			b.WriteString(pieces[0])
			for i, sp := range spans {
				b.WriteString(input[sp[0]:sp[1]])
				b.WriteString(pieces[i+1])
			}
			if b.String() != input {
				t.Errorf("max=%d: reconstructed %q, want %q", max, b.String(), input)
			}
		}
	})
}

// TestSplitPackageFuncs tests the compile-and-split conveniences
func TestSplitPackageFuncs(t *testing.T) {
	got, err := RSplit(`,`, "a,b,c", 1)
	if err != nil {
		t.Fatalf("RSplit() error = %v", err)
	}
	if want := []string{"a,b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RSplit() = %q, want %q", got, want)
	}

	got, err = LSplit(`,`, "a,b,c", 1)
	if err != nil {
		t.Fatalf("LSplit() error = %v", err)
	}
	if want := []string{"a", "b,c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("LSplit() = %q, want %q", got, want)
	}

	if _, err := RSplit(`(`, "x", -1); err == nil {
		t.Error("RSplit() with a bad pattern: error = nil")
	}
	if _, err := LSplit(`(`, "x", -1); err == nil {
		t.Error("LSplit() with a bad pattern: error = nil")
	}
}

// BenchmarkSplit measures plain splitting.
func BenchmarkSplit(b *testing.B) {
	p := MustCompile(`,\s*`)
	input := strings.Repeat("field, ", 50) + "last"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Split(input, -1)
	}
}

// BenchmarkSplitProtected measures splitting with region discovery.
func BenchmarkSplitProtected(b *testing.B) {
	p := MustCompile(`,`)
	set := bracket.DefaultSet()
	input := strings.Repeat("a,(b,c),", 25) + "d"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Split(input, -1, Protected(set))
	}
}
