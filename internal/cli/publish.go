package cli

import (
	"github.com/mazinko450/mspyl/internal/dist"
	"github.com/spf13/cobra"
)

var (
	publishTestPyPI bool
	publishPyPI     bool
	publishGitHub   bool
	publishAll      bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish distribution artifacts",
	Long: `Upload built artifacts to the selected repositories. Each target is
attempted independently: a failure on one is reported but does not
prevent the other upload.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets := dist.Targets{
			TestPyPI: publishTestPyPI || publishAll,
			PyPI:     publishPyPI || publishAll,
			GitHub:   publishGitHub,
		}
		mgr := dist.New(newRunner(), cmd.OutOrStdout())
		return mgr.Publish(cmd.Context(), targets)
	},
}

func init() {
	publishCmd.Flags().BoolVar(&publishTestPyPI, "test-pypi", false, "Publish to TestPyPI")
	publishCmd.Flags().BoolVar(&publishPyPI, "pypi", false, "Publish to PyPI")
	publishCmd.Flags().BoolVar(&publishGitHub, "github", false, "Publish a GitHub release (not implemented)")
	publishCmd.Flags().BoolVar(&publishAll, "all", false, "Publish to TestPyPI and PyPI")
	rootCmd.AddCommand(publishCmd)
}
