package cmd

import (
	"fmt"
	"strings"

	wirelog "github.com/msto63/wire/core/log"
	"github.com/msto63/wire/utils/formatx"
	"github.com/spf13/cobra"
)

var (
	formatJoin   bool
	formatPre    string
	formatPost   string
	formatLabels string
)

var formatCmd = &cobra.Command{
	Use:   "format <template> [args...]",
	Short: "Positional formatting",
	Long: `Replaces \1..\9 in the template with the matching argument.
Placeholders without an argument are kept.

Examples:
  wire format '\1 says hi to \2' Alice Bob
  wire format --join '[\1]' x y z
  wire format --join --pre '{' --post '}' '\1,' a b
  wire format --labels 'user.name, count' '\1=\2\n' ann 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().BoolVar(&formatJoin, "join", false, "apply the template to each argument and concatenate")
	formatCmd.Flags().StringVar(&formatPre, "pre", "", "text before the joined output")
	formatCmd.Flags().StringVar(&formatPost, "post", "", "text after the joined output")
	formatCmd.Flags().StringVar(&formatLabels, "labels", "", "comma separated labels; template gets \\1=label \\2=value")
}

func runFormat(cmd *cobra.Command, args []string) error {
	template := unescape(args[0])
	values := args[1:]

	var out string
	switch {
	case formatLabels != "":
		out = formatx.Labeled(template, formatLabels, toAny(values)...)
	case formatJoin:
		out = formatx.Strings(values).Str(template, unescape(formatPre), unescape(formatPost))
	default:
		out = formatx.Format(template, toAny(values)...)
	}

	logger.Debug("formatted", wirelog.Fields{
		"template": args[0],
		"args":     len(values),
	})

	fmt.Fprint(cmd.OutOrStdout(), out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

// unescape turns \1..\9 into placeholder bytes and understands \n, \t and \\
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}

		switch c := s[i+1]; {
		case c >= '1' && c <= '9':
			sb.WriteByte(c - '0')
		case c == 'n':
			sb.WriteByte('\n')
		case c == 't':
			sb.WriteByte('\t')
		case c == '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		}
		i++
	}
	return sb.String()
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
