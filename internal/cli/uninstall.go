package cli

import (
	"github.com/mazinko450/mspyl/internal/packages"
	"github.com/spf13/cobra"
)

var uninstallPython string

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <args>",
	Short: "Uninstall Python packages",
	Long: `Uninstall one or more Python packages through uv.

The argument must start with the * sign and use ! in place of spaces,
e.g. mspyl uninstall '*requests!rich'.`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVarP(&uninstallPython, "python", "p", "", "Python version to use")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	r := newRunner()
	interp := resolveInterp(cmd, r, uninstallPython)

	mgr := packages.New(r, interp, cmd.OutOrStdout())
	return mgr.Uninstall(cmd.Context(), args[0])
}
