package cli

import (
	"fmt"

	"github.com/mazinko450/mspyl/internal/packages"
	"github.com/mazinko450/mspyl/internal/python"
	"github.com/spf13/cobra"
)

var (
	listPython   bool
	listInternal bool
	listExternal bool
	listOutdated bool
	listAll      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Python versions, modules, or outdated packages",
	Long: `List installed Python versions, built-in modules, external modules,
outdated packages, or all of them. Each requested report runs
independently; an empty report prints "nothing found" and the
remaining reports still run.`,
	RunE: runListReports,
}

func init() {
	listCmd.Flags().BoolVar(&listPython, "python", false, "List installed Python versions")
	listCmd.Flags().BoolVar(&listInternal, "internal", false, "List built-in modules")
	listCmd.Flags().BoolVar(&listExternal, "external", false, "List external modules")
	listCmd.Flags().BoolVar(&listOutdated, "outdated", false, "List outdated packages")
	listCmd.Flags().BoolVar(&listAll, "all", false, "List everything")
	rootCmd.AddCommand(listCmd)
}

func runListReports(cmd *cobra.Command, args []string) error {
	if !listPython && !listInternal && !listExternal && !listOutdated && !listAll {
		return fmt.Errorf("specify at least one of --python, --internal, --external, --outdated, or --all")
	}

	r := newRunner()
	mgr := packages.New(r, python.Descriptor{}, cmd.OutOrStdout())
	ctx := cmd.Context()

	// Reports run independently in a fixed order; a failure in one is
	// reported but does not stop the rest.
	type namedReport struct {
		selected bool
		run      func() error
	}
	reports := []namedReport{
		{listPython || listAll, func() error { return mgr.ListInterpreters(ctx) }},
		{listInternal || listAll, func() error { return mgr.ListBuiltins(ctx) }},
		{listExternal || listAll, func() error { return mgr.ListExternal(ctx) }},
		{listOutdated || listAll, func() error { return mgr.Outdated(ctx, "") }},
	}

	var firstErr error
	for _, rep := range reports {
		if !rep.selected {
			continue
		}
		if err := rep.run(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
