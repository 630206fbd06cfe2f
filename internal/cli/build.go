package cli

import (
	"github.com/mazinko450/mspyl/internal/dist"
	"github.com/spf13/cobra"
)

var (
	buildSdist bool
	buildWheel bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build distribution artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := dist.New(newRunner(), cmd.OutOrStdout())
		return mgr.Build(cmd.Context(), buildSdist, buildWheel)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check installed packages for consistency",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := dist.New(newRunner(), cmd.OutOrStdout())
		return mgr.Check(cmd.Context())
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildSdist, "sdist", false, "Build a source distribution")
	buildCmd.Flags().BoolVar(&buildWheel, "wheel", false, "Build a wheel distribution")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
}
