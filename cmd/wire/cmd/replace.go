package cmd

import (
	"fmt"
	"strings"

	wireerrors "github.com/msto63/wire/core/errors"
	wirelog "github.com/msto63/wire/core/log"
	"github.com/msto63/wire/utils/stringx"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var (
	replaceSorted bool
	replaceDiff   bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace <text> <from=to>...",
	Short: "Single-pass multi-pattern replacement",
	Long: `Replaces every target with its replacement in one left to right pass.
Inserted text is never scanned again.

By default pairs are tried last to first, so a later pair wins when two
targets match at the same position. With --sorted targets are tried in
descending key order instead.

Examples:
  wire replace '<a & b>' '&=&amp;' '<=&lt;' '>=&gt;'
  wire replace cat cat=dog ca=X            # Xt
  wire replace --sorted cat cat=dog ca=X   # dog
  wire replace --diff 'a-b-c' '-=+'`,
	Args: cobra.MinimumNArgs(2),
	RunE: runReplace,
}

func init() {
	rootCmd.AddCommand(replaceCmd)

	replaceCmd.Flags().BoolVar(&replaceSorted, "sorted", false, "try targets in descending key order")
	replaceCmd.Flags().BoolVar(&replaceDiff, "diff", false, "print the changes instead of the result")
}

func runReplace(cmd *cobra.Command, args []string) error {
	text := unescape(args[0])

	pairs := make([]string, 0, 2*(len(args)-1))
	for _, arg := range args[1:] {
		from, to, found := strings.Cut(arg, "=")
		if !found {
			return wireerrors.InvalidFormat(wireerrors.ModuleStringx, "replace", arg, "from=to")
		}
		pairs = append(pairs, unescape(from), unescape(to))
	}

	var table *stringx.ReplacementTable
	var err error
	if replaceSorted {
		mapping := make(map[string]string, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			mapping[pairs[i]] = pairs[i+1]
		}
		table, err = stringx.ReplacementTableFromMap(mapping)
	} else {
		table, err = stringx.NewReplacementTable(pairs...)
	}
	if err != nil {
		return err
	}

	logger.Debug("replacement table built", wirelog.Fields{
		"entries": table.Len(),
		"sorted":  replaceSorted,
	})

	result := table.Replace(text)
	if replaceDiff {
		fmt.Fprint(cmd.OutOrStdout(), renderDiff(text, result))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// renderDiff lists deleted, inserted and unchanged runs between before and
// after, one quoted run per line
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	var sb strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString(errorStyle.Render(fmt.Sprintf("- %q", diff.Text)))
		case diffmatchpatch.DiffInsert:
			sb.WriteString(insertStyle.Render(fmt.Sprintf("+ %q", diff.Text)))
		case diffmatchpatch.DiffEqual:
			sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %q", diff.Text)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
