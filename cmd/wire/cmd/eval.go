package cmd

import (
	"fmt"
	"strings"

	"github.com/msto63/wire/utils/evalx"
	"github.com/msto63/wire/utils/stringx"
	"github.com/spf13/cobra"
)

var evalPrecise bool

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluates + - * / with parentheses and unary signs.

Examples:
  wire eval '2 + 3 * 4'
  wire eval '(1.5 + 2.5) / -2'
  wire eval --precise '1 / 3'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalPrecise, "precise", false, "print the exact hexadecimal float")
}

func runEval(cmd *cobra.Command, args []string) error {
	value, err := evalx.Eval(strings.Join(args, " "))
	if err != nil {
		return err
	}

	if evalPrecise {
		fmt.Fprintln(cmd.OutOrStdout(), stringx.Precise(value))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), stringx.ToString(value))
	return nil
}
