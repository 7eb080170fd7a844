package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	wireerrors "github.com/msto63/wire/core/errors"
	wirelog "github.com/msto63/wire/core/log"
	"github.com/msto63/wire/utils/evalx"
	"github.com/msto63/wire/utils/interpx"
	"github.com/msto63/wire/utils/stringx"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive symbol shell",
	Long: `Reads lines interactively. Assignments update the symbol table, every
other line is interpolated and printed. Tab completes $names.

  $(name) = value    assign (value is interpolated first)
  $name = value      assign
  :symbols           list the symbol table
  :eval <expr>       interpolate, then evaluate arithmetically
  :extract <text>    list the names referenced by text
  :level <level>     log level for this session (trace shows resolutions)
  :quit              leave

The table starts from the configuration, --env files and --set
assignments, as for the interp command.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringArrayVar(&interpSet, "set", nil, "assign a symbol before starting")
	replCmd.Flags().StringArrayVar(&interpEnv, "env", nil, "load symbols from an env file")
	replCmd.Flags().StringVar(&interpMissing, "missing", "", "unresolved names: error or empty")
}

func runREPL(cmd *cobra.Command, args []string) error {
	policy, err := interpx.ParseMissingPolicy(stringx.FirstNonBlank(interpMissing, cfg.GetString("interp.missing")))
	if err != nil {
		return err
	}

	symbols, err := buildSymbols(policy)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptStyle.Render("wire> "),
		AutoComplete:    &symbolCompleter{symbols: symbols},
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
		Stdout:          cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	session := newREPLSession(symbols, policy, logger.WithName("repl").WithOutput(rl.Stderr()), cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := session.handle(line)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render("error:"), err)
		}
		if quit {
			return nil
		}
	}
}

// replSession applies one line at a time to a symbol table
type replSession struct {
	symbols *interpx.Symbols
	opts    []interpx.Option
	logger  *wirelog.Logger
	out     io.Writer
}

// newREPLSession builds a session around logger; :level changes it in place
func newREPLSession(symbols *interpx.Symbols, policy interpx.MissingPolicy, logger *wirelog.Logger, out io.Writer) *replSession {
	return &replSession{
		symbols: symbols,
		opts:    []interpx.Option{interpx.WithPolicy(policy), interpx.WithLogger(logger)},
		logger:  logger,
		out:     out,
	}
}

func (s *replSession) handle(line string) (quit bool, err error) {
	line = stringx.Strip(line, "")
	if line == "" {
		return false, nil
	}

	if command, ok := strings.CutPrefix(line, ":"); ok {
		return s.command(command)
	}

	if isAssignment(line) {
		return false, s.symbols.Assign(line, s.opts...)
	}

	out, err := s.symbols.Expand(line, s.opts...)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(s.out, out)
	return false, nil
}

func (s *replSession) command(command string) (bool, error) {
	name, rest, _ := strings.Cut(command, " ")
	rest = stringx.Strip(rest, "")

	switch name {
	case "q", "quit", "exit":
		return true, nil

	case "symbols":
		fmt.Fprint(s.out, renderTable("symbols", s.symbols.Snapshot()))

	case "extract":
		fmt.Fprintln(s.out, strings.Join(interpx.Extract(rest), "\n"))

	case "eval":
		expr, err := s.symbols.Expand(rest, s.opts...)
		if err != nil {
			return false, err
		}
		value, err := evalx.Eval(expr)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, stringx.ToString(value))

	case "level":
		if rest == "" {
			fmt.Fprintln(s.out, s.logger.GetLevel())
			break
		}
		level, err := wirelog.ParseLevel(rest)
		if err != nil {
			return false, wireerrors.InvalidInput("repl", "level", rest, "trace, debug, info, warn, error or fatal")
		}
		s.logger.SetLevel(level)

	default:
		return false, wireerrors.InvalidInput("repl", "command", ":"+name, ":symbols, :eval, :extract, :level or :quit")
	}
	return false, nil
}

// isAssignment reports whether the text left of the first '=' is a single
// $name or $(name) reference
func isAssignment(line string) bool {
	left, _, found := strings.Cut(line, "=")
	if !found {
		return false
	}
	left = stringx.Strip(left, "")

	names := interpx.Extract(left)
	if len(names) != 1 {
		return false
	}
	return left == "$"+names[0] || left == "$("+names[0]+")"
}

// symbolCompleter completes $name prefixes from the symbol table
type symbolCompleter struct {
	symbols *interpx.Symbols
}

// Do implements readline.AutoCompleter
func (c *symbolCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	text := string(line[:pos])

	start := strings.LastIndexByte(text, '$')
	if start < 0 {
		return nil, 0
	}
	prefix := strings.TrimPrefix(text[start+1:], "(")
	if strings.ContainsAny(prefix, " )") {
		return nil, 0
	}

	for _, name := range c.symbols.Names() {
		if strings.HasPrefix(name, prefix) {
			newLine = append(newLine, []rune(name[len(prefix):]))
		}
	}
	return newLine, len([]rune(prefix))
}
