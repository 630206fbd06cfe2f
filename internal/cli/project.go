package cli

import (
	"github.com/mazinko450/mspyl/internal/branding"
	"github.com/mazinko450/mspyl/internal/config"
	"github.com/mazinko450/mspyl/internal/project"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [project-dir] <args>",
	Short: "Create a new Python project",
	Long: `Initialize a new Python project with uv and write a pyproject.toml
template if uv did not create one.

The init arguments must start with the * sign and use ! in place of
spaces, e.g. mspyl create myproj '*myproj!--lib'.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runProjectCreate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [project-dir]",
	Short: "Delete a Python project",
	Long:  `Delete the project directory and everything under it. A directory that is already absent is treated as success.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProjectDelete,
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
}

// projectDirAndBlob splits the positional args: with two, the first is the
// project directory; with one, the directory defaults to ".".
func projectDirAndBlob(args []string) (string, string) {
	if len(args) == 2 {
		return args[0], args[1]
	}
	return ".", args[0]
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	dir, blobArg := projectDirAndBlob(args)

	templateURL := config.Get(config.KeyTemplateURL)
	if templateURL == "" {
		templateURL = branding.TemplateURL()
	}

	mgr := project.New(newRunner(), dir, templateURL, cmd.OutOrStdout())
	return mgr.Create(cmd.Context(), blobArg)
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	mgr := project.New(nil, dir, "", cmd.OutOrStdout())
	return mgr.Delete()
}
