package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	findMax  int
	findLine bool
	findJSON bool
)

var findCmd = &cobra.Command{
	Use:   "find <pattern> [file]",
	Short: "Print pattern matches in the input",
	Long: `Prints every match of the pattern in the input, one per line.

The pattern may contain the region mark "{}": it jumps a balanced
bracket region, so 'f{}' finds calls to f across nested parentheses.

Examples:
  rex find 'func {}' main.go
  rex find --line 'TODO' notes.txt
  rex find --json --max 3 '\w+ = {}' config.ini`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().IntVar(&findMax, "max", -1, "maximum number of matches, -1 for all")
	findCmd.Flags().BoolVar(&findLine, "line", false, "prefix each match with line:col")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "print matches as JSON objects, one per line")
}

type jsonMatch struct {
	Line   int      `json:"line"`
	Col    int      `json:"col"`
	Start  int      `json:"start"`
	End    int      `json:"end"`
	Text   string   `json:"text"`
	Groups []string `json:"groups,omitempty"`
}

func runFind(cmd *cobra.Command, args []string) error {
	p, err := wrapPattern(args[0])
	if err != nil {
		return err
	}
	text, err := readInput(args)
	if err != nil {
		return err
	}

	matches := p.LineMatches(text)
	if findMax >= 0 && len(matches) > findMax {
		matches = matches[:findMax]
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	switch {
	case findJSON:
		enc := json.NewEncoder(w)
		for _, lm := range matches {
			jm := jsonMatch{
				Line:   lm.Line,
				Col:    lm.Col,
				Start:  lm.Start,
				End:    lm.End,
				Text:   lm.Text,
				Groups: lm.Groups,
			}
			if err := enc.Encode(jm); err != nil {
				return err
			}
		}
	case findLine:
		for _, lm := range matches {
			fmt.Fprintf(w, "%d:%d: %s\n", lm.Line, lm.Col, lm.Text)
		}
	default:
		for _, lm := range matches {
			fmt.Fprintln(w, lm.Text)
		}
	}
	return nil
}
