package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/rex"
)

var (
	flagMark       string
	flagIgnoreCase bool
	flagMultiline  bool
	flagDotAll     bool
)

var rootCmd = &cobra.Command{
	Use:   "rex",
	Short: "Bracket-aware pattern matching and splitting",
	Long: `rex matches and splits text with patterns that may contain the
region mark "{}". A mark jumps a balanced bracket region, so 'call{}'
finds calls across arbitrarily nested parentheses.

Commands:
  split    - split input on a delimiter pattern
  find     - print pattern matches in the input
  wrap     - show how a pattern compiles
  version  - print version information`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMark, "mark", "{}", "region mark token")
	rootCmd.PersistentFlags().BoolVarP(&flagIgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	rootCmd.PersistentFlags().BoolVarP(&flagMultiline, "multiline", "m", false, "^ and $ match at line boundaries")
	rootCmd.PersistentFlags().BoolVarP(&flagDotAll, "dotall", "s", false, ". matches newlines and regions may span lines")
}

// wrapPattern compiles a pattern with the shared pattern flags applied.
func wrapPattern(pattern string) (*rex.Pattern, error) {
	var opts []rex.Option
	if flagMark != "" {
		opts = append(opts, rex.WithMark(flagMark))
	}
	if flagIgnoreCase {
		opts = append(opts, rex.CaseInsensitive())
	}
	if flagMultiline {
		opts = append(opts, rex.Multiline())
	}
	if flagDotAll {
		opts = append(opts, rex.DotAll())
	}
	return rex.Wrap(pattern, opts...)
}

// readInput returns the contents of the optional file argument, or of
// stdin when no file is named.
func readInput(args []string) (string, error) {
	if len(args) > 1 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
