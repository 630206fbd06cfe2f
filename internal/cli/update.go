package cli

import (
	"fmt"

	"github.com/mazinko450/mspyl/internal/packages"
	"github.com/spf13/cobra"
)

var (
	updatePython string
	updateAll    bool
)

var updateCmd = &cobra.Command{
	Use:   "update [package]",
	Short: "Update installed packages",
	Long: `Update a named package, or every installed package with --all.
Per-package failures during --all are reported and skipped; the run
continues with the remaining packages.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updatePython, "python", "p", "", "Python version to use")
	updateCmd.Flags().BoolVar(&updateAll, "all", false, "Update all packages")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	r := newRunner()
	interp := resolveInterp(cmd, r, updatePython)
	mgr := packages.New(r, interp, cmd.OutOrStdout())

	if len(args) == 1 {
		return mgr.Update(cmd.Context(), args[0])
	}
	if updateAll {
		return mgr.UpdateAll(cmd.Context())
	}
	return fmt.Errorf("specify a package name or use --all to update all packages")
}
