package cmd

import (
	"fmt"

	wireconfig "github.com/msto63/wire/core/config"
	wirelog "github.com/msto63/wire/core/log"
	"github.com/msto63/wire/utils/mapx"
	"github.com/spf13/cobra"
)

var (
	iniSection string
	iniTo      string
)

var iniCmd = &cobra.Command{
	Use:   "ini",
	Short: "Inspect and convert configuration files",
	Long: `Reads INI, TOML or YAML files (chosen by extension) and prints or
converts them. INI files use [section] headers, key=value lines and ;
comments.

Examples:
  wire ini show settings.ini
  wire ini show --section database settings.ini
  wire ini convert settings.ini --to toml`,
}

var iniShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print every key of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runINIShow,
}

var iniConvertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a file to toml, yaml or ini",
	Args:  cobra.ExactArgs(1),
	RunE:  runINIConvert,
}

func init() {
	rootCmd.AddCommand(iniCmd)
	iniCmd.AddCommand(iniShowCmd)
	iniCmd.AddCommand(iniConvertCmd)

	iniShowCmd.Flags().StringVar(&iniSection, "section", "", "only keys of this section")
	iniConvertCmd.Flags().StringVar(&iniTo, "to", "toml", "target format: toml, yaml or ini")
}

func runINIShow(cmd *cobra.Command, args []string) error {
	file, err := wireconfig.Load(args[0])
	if err != nil {
		return err
	}

	values := file.Flatten()
	title := fmt.Sprintf("%s (%s)", args[0], file.Format())
	if iniSection != "" {
		values = mapx.WithPrefix(values, iniSection+".")
		title = fmt.Sprintf("%s [%s]", title, iniSection)
	}

	fmt.Fprint(cmd.OutOrStdout(), renderTable(title, values))
	return nil
}

func runINIConvert(cmd *cobra.Command, args []string) error {
	format, err := wireconfig.ParseFormat(iniTo)
	if err != nil {
		return err
	}

	file, err := wireconfig.Load(args[0])
	if err != nil {
		return err
	}

	out, err := file.Encode(format)
	if err != nil {
		return err
	}

	logger.Debug("configuration converted", wirelog.Fields{
		"from": file.Format().String(),
		"to":   format.String(),
	})

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
