package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	wireerror "github.com/msto63/wire/core/error"
	wirelog "github.com/msto63/wire/core/log"
	"github.com/msto63/wire/utils/interpx"
	"github.com/msto63/wire/utils/stringx"
	"github.com/spf13/cobra"
)

var (
	interpSet     []string
	interpEnv     []string
	interpMissing string
	interpExtract bool
	interpSymbols bool
)

var interpCmd = &cobra.Command{
	Use:   "interp <text>...",
	Short: "Interpolate $name references",
	Long: `Expands $name and $(name) references. $$ is a literal dollar sign.

Symbols come from, in increasing priority:
  the [symbols] section of the configuration file
  --env files (KEY=value lines)
  --set assignments, applied in order

Examples:
  wire interp --set name=World 'Hello, $name!'
  wire interp --env .env 'postgres://$DB_USER@$DB_HOST'
  wire interp --set 'greeting=Hi $name' --set name=ann '$greeting'
  wire interp --missing empty '[$undefined]'
  wire interp --extract '$a and $(b)'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInterp,
}

func init() {
	rootCmd.AddCommand(interpCmd)

	interpCmd.Flags().StringArrayVar(&interpSet, "set", nil, "assign a symbol (name=value, value is interpolated)")
	interpCmd.Flags().StringArrayVar(&interpEnv, "env", nil, "load symbols from an env file")
	interpCmd.Flags().StringVar(&interpMissing, "missing", "", "unresolved names: error or empty (default from interp.missing)")
	interpCmd.Flags().BoolVar(&interpExtract, "extract", false, "list referenced names instead of expanding")
	interpCmd.Flags().BoolVar(&interpSymbols, "symbols", false, "print the symbol table after expansion")
}

func runInterp(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	if interpExtract {
		for _, name := range interpx.Extract(text) {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	policy, err := interpx.ParseMissingPolicy(stringx.FirstNonBlank(interpMissing, cfg.GetString("interp.missing")))
	if err != nil {
		return err
	}

	symbols, err := buildSymbols(policy)
	if err != nil {
		return err
	}

	out, err := symbols.Expand(text, interpx.WithPolicy(policy), interpx.WithLogger(logger.WithName("interp")))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	if interpSymbols {
		fmt.Fprint(cmd.OutOrStdout(), renderTable("symbols", symbols.Snapshot()))
	}
	return nil
}

func buildSymbols(policy interpx.MissingPolicy) (*interpx.Symbols, error) {
	symbols := interpx.NewSymbols()
	symbols.Load(cfg.GetStringMap("symbols"))

	for _, path := range interpEnv {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, wireerror.Wrap(err, "failed to read env file").
				WithCode(wireerror.CodeNotFound).
				WithOperation("interp.env").
				WithDetail("path", path)
		}
		symbols.Load(values)
		logger.Debug("env file loaded", wirelog.Fields{
			"path":    path,
			"symbols": len(values),
		})
	}

	for _, assignment := range interpSet {
		if err := symbols.Assign(assignment, interpx.WithPolicy(policy)); err != nil {
			return nil, err
		}
	}

	return symbols, nil
}
