package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mazinko450/mspyl/internal/config"
	"github.com/mazinko450/mspyl/internal/venv"
	"github.com/spf13/cobra"
)

var (
	venvPath           string
	venvCreatePython   string
	venvRemoveWholeEnv bool
	venvUpdateAll      bool
	venvListPackages   bool
	venvListDeps       bool
	venvListOutdated   bool
	venvListAll        bool
)

var venvCmd = &cobra.Command{
	Use:   "venv",
	Short: "Manage virtual environments",
	Long:  `Create, activate, and manage Python virtual environments through uv.`,
}

func init() {
	venvCmd.PersistentFlags().StringVar(&venvPath, "path", "", "Name or path of the virtual environment")

	venvCreateCmd.Flags().StringVarP(&venvCreatePython, "python", "p", "", "Python version to use")
	venvRemoveCmd.Flags().BoolVar(&venvRemoveWholeEnv, "venv", false, "Remove the entire virtual environment")
	venvUpdateCmd.Flags().BoolVar(&venvUpdateAll, "all", false, "Update all outdated packages")
	venvListCmd.Flags().BoolVar(&venvListPackages, "packages", false, "List installed packages")
	venvListCmd.Flags().BoolVar(&venvListDeps, "deps", false, "List the dependency tree")
	venvListCmd.Flags().BoolVar(&venvListOutdated, "outdated", false, "List outdated packages")
	venvListCmd.Flags().BoolVar(&venvListAll, "all", false, "List everything")

	venvCmd.AddCommand(venvCreateCmd)
	venvCmd.AddCommand(venvActivateCmd)
	venvCmd.AddCommand(venvDeactivateCmd)
	venvCmd.AddCommand(venvAddCmd)
	venvCmd.AddCommand(venvRemoveCmd)
	venvCmd.AddCommand(venvUpdateCmd)
	venvCmd.AddCommand(venvListCmd)
	rootCmd.AddCommand(venvCmd)
}

// venvManager builds a Manager for the --path flag, falling back to the
// venv.path config key and then the conventional .venv directory.
func venvManager(cmd *cobra.Command) *venv.Manager {
	dir := venvPath
	if dir == "" {
		dir = config.Get(config.KeyVenvPath)
	}
	return venv.New(newRunner(), dir, cmd.OutOrStdout())
}

var venvCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new virtual environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return venvManager(cmd).Create(cmd.Context(), venvCreatePython)
	},
}

var venvActivateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Activate a virtual environment",
	Long: `Activate a virtual environment for subsequent mspyl venv commands.
Activation is scoped to each command invocation; it does not modify
your shell environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := venvManager(cmd).Activate()
		return err
	},
}

var venvDeactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Deactivate the current virtual environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		venvManager(cmd).Deactivate()
		return nil
	},
}

var venvAddCmd = &cobra.Command{
	Use:   "add <packages>",
	Short: "Add packages to the virtual environment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return venvManager(cmd).Add(cmd.Context(), args[0])
	},
}

var venvRemoveCmd = &cobra.Command{
	Use:   "remove [packages]",
	Short: "Remove packages or the entire virtual environment",
	Long: `Remove packages from the virtual environment, or with --venv and no
package names, remove the whole environment after confirmation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := venvManager(cmd)
		if len(args) == 1 && args[0] != "" {
			return mgr.Remove(cmd.Context(), args[0])
		}
		if !venvRemoveWholeEnv {
			return fmt.Errorf("specify packages to remove, or --venv to remove the environment")
		}
		fmt.Fprint(cmd.OutOrStdout(), "? Remove the virtual environment? (y/N) ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
			if answer != "y" && answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Removal cancelled.")
				return nil
			}
		}
		return mgr.RemoveVenv()
	},
}

var venvUpdateCmd = &cobra.Command{
	Use:   "update [packages]",
	Short: "Update packages in the virtual environment",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := venvManager(cmd)
		if venvUpdateAll {
			return mgr.UpdateAll(cmd.Context())
		}
		if len(args) == 1 {
			return mgr.Update(cmd.Context(), args[0])
		}
		return fmt.Errorf("specify packages to update, or --all")
	},
}

var venvListCmd = &cobra.Command{
	Use:   "list",
	Short: "List packages, dependencies, or outdated packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !venvListPackages && !venvListDeps && !venvListOutdated && !venvListAll {
			return fmt.Errorf("specify at least one of --packages, --deps, --outdated, or --all")
		}

		mgr := venvManager(cmd)
		ctx := cmd.Context()

		var firstErr error
		run := func(f func() error) {
			if err := f(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				if firstErr == nil {
					firstErr = err
				}
			}
		}

		if venvListPackages || venvListAll {
			run(func() error { return mgr.ListInstalled(ctx) })
		}
		if venvListDeps || venvListAll {
			run(func() error { return mgr.ListTree(ctx) })
		}
		if venvListOutdated || venvListAll {
			run(func() error { _, err := mgr.ListOutdated(ctx); return err })
		}
		return firstErr
	},
}
