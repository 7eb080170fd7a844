package cmd

import (
	"fmt"

	"github.com/msto63/wire/utils/formatx"
	"github.com/msto63/wire/utils/stringx"
	"github.com/spf13/cobra"
)

var (
	tokenizeSplit  bool
	tokenizeFormat string
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <text> <delimiters>",
	Short: "Split text on delimiter bytes",
	Long: `Splits text on every byte of the delimiter set and prints one token
per line. Empty tokens are dropped. With --split each delimiter is kept as
a token of its own.

Examples:
  wire tokenize 'a,b;;c' ',;'
  wire tokenize --split 'key=value' '='
  wire tokenize --format '<\1>' 'x y z' ' '`,
	Args: cobra.ExactArgs(2),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().BoolVar(&tokenizeSplit, "split", false, "keep delimiters as tokens")
	tokenizeCmd.Flags().StringVar(&tokenizeFormat, "format", `\1\n`, "template applied to each token")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text, delims := unescape(args[0]), unescape(args[1])

	tokens := stringx.Tokenize(text, delims)
	if tokenizeSplit {
		tokens = stringx.Split(text, delims)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatx.Join(tokens, unescape(tokenizeFormat), "", ""))
	return nil
}
