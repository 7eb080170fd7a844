package cmd

import (
	"fmt"

	"github.com/msto63/wire/utils/stringx"
	"github.com/spf13/cobra"
)

var matchFold bool

var matchCmd = &cobra.Command{
	Use:   "match <text> <pattern>",
	Short: "Glob match text against a pattern",
	Long: `Matches text against a glob pattern: * matches any run of bytes,
? any single byte except '.'. Prints true or false; exits with status 1
when the text does not match.

Examples:
  wire match report.txt '*.txt'
  wire match -i README.MD '*.md'`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolVarP(&matchFold, "ignore-case", "i", false, "ASCII case-insensitive match")
}

func runMatch(cmd *cobra.Command, args []string) error {
	matched := stringx.Matches(args[0], args[1])
	if matchFold {
		matched = stringx.MatchesFold(args[0], args[1])
	}

	fmt.Fprintln(cmd.OutOrStdout(), matched)
	if !matched {
		return errSilent
	}
	return nil
}
