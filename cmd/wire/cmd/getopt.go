package cmd

import (
	"fmt"

	"github.com/msto63/wire/utils/getoptx"
	"github.com/spf13/cobra"
)

var getoptCmd = &cobra.Command{
	Use:   "getopt -- <args>...",
	Short: "Show how a command line is indexed",
	Long: `Parses the arguments after -- the way getoptx does and prints every
key. The first argument plays the role of the program name.

Examples:
  wire getopt -- ./app --user=me --pass=123 -h`,
	RunE: runGetopt,
}

func init() {
	rootCmd.AddCommand(getoptCmd)
}

func runGetopt(cmd *cobra.Command, args []string) error {
	opts := getoptx.Parse(args)

	values := make(map[string]string, len(opts.Keys()))
	for _, key := range opts.Keys() {
		values[key] = opts.Get(key)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderTable("getopt", values))
	fmt.Fprintf(out, "%s %d\n", mutedStyle.Render("size:   "), opts.Size())
	fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("cmdline:"), opts.Cmdline())
	return nil
}
