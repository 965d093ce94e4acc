package cmd

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/rex"
)

var (
	splitMax     int
	splitRight   bool
	splitAfter   bool
	splitBefore  bool
	splitProtect bool
	splitNul     bool
)

var splitCmd = &cobra.Command{
	Use:   "split <pattern> [file]",
	Short: "Split input on a delimiter pattern",
	Long: `Splits the input on matches of the delimiter pattern and prints one
piece per line. Without a file argument the input is read from stdin.

Examples:
  rex split ',' data.csv
  rex split --protect ',' calls.txt
  rex split --right --max 1 ':' spec.txt
  echo 'a,(b,c),d' | rex split --protect ','`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().IntVar(&splitMax, "max", -1, "maximum number of delimiters used, -1 for all")
	splitCmd.Flags().BoolVar(&splitRight, "right", false, "count the delimiter budget from the right end")
	splitCmd.Flags().BoolVar(&splitAfter, "after", false, "keep each delimiter at the end of its piece")
	splitCmd.Flags().BoolVar(&splitBefore, "before", false, "keep each delimiter at the start of its piece")
	splitCmd.Flags().BoolVar(&splitProtect, "protect", false, "do not split inside bracket regions")
	splitCmd.Flags().BoolVarP(&splitNul, "null", "0", false, "separate pieces with NUL instead of newline")
}

func runSplit(cmd *cobra.Command, args []string) error {
	p, err := wrapPattern(args[0])
	if err != nil {
		return err
	}
	text, err := readInput(args)
	if err != nil {
		return err
	}

	var opts []rex.SplitOption
	if splitProtect {
		opts = append(opts, rex.Protected(p.Brackets()))
	}

	var pieces []string
	switch {
	case splitAfter && splitBefore:
		return errors.New("--after and --before are mutually exclusive")
	case splitRight && (splitAfter || splitBefore):
		return errors.New("--right cannot be combined with --after or --before")
	case splitRight:
		pieces = p.RSplit(text, splitMax, opts...)
	case splitAfter:
		pieces = p.SplitAfter(text, splitMax, opts...)
	case splitBefore:
		pieces = p.SplitBefore(text, splitMax, opts...)
	default:
		pieces = p.Split(text, splitMax, opts...)
	}

	sep := byte('\n')
	if splitNul {
		sep = 0
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, piece := range pieces {
		if _, err := w.WriteString(piece); err != nil {
			return err
		}
		if err := w.WriteByte(sep); err != nil {
			return err
		}
	}
	return nil
}
