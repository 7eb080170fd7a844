package cmd

import (
	"errors"
	"fmt"
	"os"

	wireconfig "github.com/msto63/wire/core/config"
	wirelog "github.com/msto63/wire/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	cfg    *wireconfig.Config
	logger *wirelog.Logger
)

// errSilent fails the command with exit status 1 without printing
var errSilent = errors.New("silent failure")

var rootCmd = &cobra.Command{
	Use:   "wire",
	Short: "wire - string formatting, replacement and interpolation",
	Long: `wire bundles small text utilities behind one command.

Commands:
  format    - positional formatting with \1..\9 placeholders
  replace   - single-pass multi-pattern replacement
  interp    - $name interpolation from a symbol table
  eval      - arithmetic expressions
  match     - glob matching
  tokenize  - split text on delimiter bytes
  getopt    - show how a command line is indexed
  ini       - inspect and convert INI, TOML and YAML files

Configuration is read from --config or from wire.{toml,yaml,yml,ini} in the
working directory or the user config directory. WIRE_* environment
variables override file values.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errSilent) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./wire.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg)
	if err != nil {
		return err
	}
	wirelog.SetDefault(logger)

	if path := cfg.FilePath(); path != "" {
		logger.Debug("configuration loaded", wirelog.Fields{
			"path":   path,
			"format": cfg.Format().String(),
		})
	}
	return nil
}

func loadConfig() (*wireconfig.Config, error) {
	if cfgFile == "" {
		return wireconfig.Discover(wireconfig.DefaultDiscoveryOptions())
	}
	return wireconfig.LoadWithOptions(cfgFile, wireconfig.LoadOptions{
		Format:    wireconfig.FormatAuto,
		EnvPrefix: "WIRE",
	})
}

// newLogger builds the command logger from log.level and log.format.
// --verbose lowers the level to debug.
func newLogger(c *wireconfig.Config) (*wirelog.Logger, error) {
	level, err := wirelog.ParseLevel(c.GetString("log.level", wirelog.DefaultLevel().String()))
	if err != nil {
		return nil, err
	}
	if verbose {
		level = wirelog.LevelDebug
	}

	format, err := wirelog.ParseFormat(c.GetString("log.format", "console"))
	if err != nil {
		return nil, err
	}

	return wirelog.NewWithConfig(wirelog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "wire",
	}), nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
	if verbose && logger != nil {
		logger.LogError(err)
	}
}
