package cli

import (
	"github.com/mazinko450/mspyl/internal/config"
	"github.com/mazinko450/mspyl/internal/python"
	"github.com/mazinko450/mspyl/internal/runner"
	"github.com/spf13/cobra"
)

// newRunner builds the shared command runner with the configured deadline.
func newRunner() *runner.Runner {
	return runner.New(config.Timeout())
}

// resolveInterp resolves the --python flag to an interpreter, falling
// back to the python.version config key. An empty result means system-wide
// invocation.
func resolveInterp(cmd *cobra.Command, r *runner.Runner, spec string) python.Descriptor {
	if spec == "" {
		spec = config.Get(config.KeyPythonVersion)
	}
	return python.Resolve(cmd.Context(), r, cmd.ErrOrStderr(), spec)
}
