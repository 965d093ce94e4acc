package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/rex"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap <pattern>",
	Short: "Show how a pattern compiles",
	Long: `Compiles the pattern and prints its segments and configuration:
where the region marks cut the pattern, how many capture groups it has,
and which bracket pairs a region jump recognizes.

Examples:
  rex wrap 'func {} \{'
  rex wrap --mark '<>' 'Vec<>'`,
	Args: cobra.ExactArgs(1),
	RunE: runWrap,
}

func init() {
	rootCmd.AddCommand(wrapCmd)
}

func runWrap(cmd *cobra.Command, args []string) error {
	p, err := wrapPattern(args[0])
	if err != nil {
		return err
	}

	config := p.Config()
	segs := p.Segments()
	fmt.Printf("pattern:  %s\n", p.String())
	fmt.Printf("mark:     %q\n", config.Mark)
	fmt.Printf("flags:    %s\n", flagString(config))
	fmt.Printf("groups:   %d\n", p.NumSubexp())
	fmt.Printf("segments: %d\n", len(segs))
	for i, seg := range segs {
		fmt.Printf("  [%d] %q\n", i, seg)
	}
	set := p.Brackets()
	fmt.Println("brackets:")
	for i := 0; i < set.Len(); i++ {
		pair := set.Pair(i)
		line := fmt.Sprintf("  %q %q", pair.Open, pair.Close)
		if pair.Escape != "" {
			line += fmt.Sprintf(" escape %q", pair.Escape)
		}
		if pair.CrossLine {
			line += " crossline"
		}
		fmt.Println(line)
	}
	return nil
}

func flagString(config rex.Config) string {
	flags := ""
	if config.CaseInsensitive {
		flags += "i"
	}
	if config.Multiline {
		flags += "m"
	}
	if config.DotAll {
		flags += "s"
	}
	if flags == "" {
		return "none"
	}
	return flags
}
