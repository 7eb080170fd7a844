package cmd

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	wireerror "github.com/msto63/wire/core/error"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.2.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionRequire string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Long: `Prints version and build information.

With --require the command only checks the version against a constraint
and fails when it is not satisfied, for use in scripts:

  wire version --require '>= 0.2, < 1.0'`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVar(&versionRequire, "require", "", "fail unless the version satisfies this constraint")
}

func runVersion(cmd *cobra.Command, args []string) error {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return wireerror.Wrap(err, fmt.Sprintf("invalid build version %q", Version)).
			WithCode(wireerror.CodeInternal)
	}

	if versionRequire != "" {
		return checkVersion(sv, versionRequire)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wire v%s\n", sv)
	fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
	fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
	fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

func checkVersion(sv *semver.Version, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return wireerror.Wrap(err, "invalid version constraint").
			WithCode(wireerror.CodeInvalidInput).
			WithDetail("constraint", constraint)
	}

	if ok, reasons := c.Validate(sv); !ok {
		return wireerror.New(fmt.Sprintf("wire v%s does not satisfy %s", sv, constraint)).
			WithCode(wireerror.CodeValidationFailed).
			WithDetail("reasons", fmt.Sprint(reasons))
	}
	return nil
}
