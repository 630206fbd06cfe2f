package cli

import (
	"github.com/mazinko450/mspyl/internal/packages"
	"github.com/spf13/cobra"
)

var installPython string

var installCmd = &cobra.Command{
	Use:   "install <args>",
	Short: "Install Python packages",
	Long: `Install one or more Python packages through uv.

The argument must start with the * sign and use ! in place of spaces,
e.g. mspyl install '*requests!rich'.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installPython, "python", "p", "", "Python version to use")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	r := newRunner()
	interp := resolveInterp(cmd, r, installPython)

	mgr := packages.New(r, interp, cmd.OutOrStdout())
	return mgr.Install(cmd.Context(), args[0])
}
