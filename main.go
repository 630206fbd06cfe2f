package main

import (
	"errors"
	"os"

	"github.com/mazinko450/mspyl/internal/cli"
	"github.com/mazinko450/mspyl/internal/report"
	"github.com/mazinko450/mspyl/internal/runner"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		report.Errorf(os.Stderr, "Error: %v", err)

		// When uv itself failed, mirror its exit code.
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode > 0 {
			os.Exit(exitErr.ExitCode)
		}
		os.Exit(1)
	}
}
