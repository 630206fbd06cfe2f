// Package dist wraps uv's build, check, and publish surfaces.
package dist

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mazinko450/mspyl/internal/report"
	"github.com/mazinko450/mspyl/internal/runner"
	"github.com/mazinko450/mspyl/internal/uv"
)

// distGlob is passed to uv publish verbatim; uv expands it itself.
const distGlob = "dist/*"

// Manager orchestrates distribution operations.
type Manager struct {
	Runner *runner.Runner
	Out    io.Writer
}

// New returns a Manager writing user-facing output to out.
func New(r *runner.Runner, out io.Writer) *Manager {
	return &Manager{Runner: r, Out: out}
}

// Build produces distribution artifacts. With neither flag set uv builds
// its default artifact set.
func (m *Manager) Build(ctx context.Context, sdist, wheel bool) error {
	argv := uv.Command("build")
	if sdist {
		argv = append(argv, "--sdist")
	}
	if wheel {
		argv = append(argv, "--wheel")
	}

	if _, err := m.Runner.Run(ctx, argv, runner.Options{RequireSuccess: true}); err != nil {
		return err
	}
	report.Successf(m.Out, "Package built successfully.")
	return nil
}

// Check runs uv's read-only dependency consistency check.
func (m *Manager) Check(ctx context.Context) error {
	_, err := m.Runner.Run(ctx, uv.Pip("check"), runner.Options{RequireSuccess: true})
	return err
}

// Targets selects publish destinations.
type Targets struct {
	TestPyPI bool
	PyPI     bool
	GitHub   bool
}

// Publish uploads the built artifacts to each selected repository. Target
// failures are isolated: one repository failing is reported but does not
// prevent the other attempt. The operation fails as a whole only when
// every attempted upload failed. The GitHub target is a recognized no-op.
func (m *Manager) Publish(ctx context.Context, t Targets) error {
	attempted, failed := 0, 0

	if t.TestPyPI {
		attempted++
		argv := uv.Command("publish", "--repository", "testpypi", distGlob)
		if res, err := m.Runner.RunQuiet(ctx, argv, runner.Options{}); err != nil {
			report.Errorf(m.Out, "Error publishing to TestPyPI: %v", err)
			failed++
		} else if res.ExitCode != 0 {
			report.Errorf(m.Out, "Error publishing to TestPyPI: %s", strings.TrimSpace(res.Stderr))
			failed++
		} else {
			report.Successf(m.Out, "Published to TestPyPI.")
		}
	}

	if t.PyPI {
		attempted++
		argv := uv.Command("publish", distGlob)
		if res, err := m.Runner.RunQuiet(ctx, argv, runner.Options{}); err != nil {
			report.Errorf(m.Out, "Error publishing to PyPI: %v", err)
			failed++
		} else if res.ExitCode != 0 {
			report.Errorf(m.Out, "Error publishing to PyPI: %s", strings.TrimSpace(res.Stderr))
			failed++
		} else {
			report.Successf(m.Out, "Published to PyPI.")
		}
	}

	if t.GitHub {
		// Recognized but unimplemented target, not an error.
		report.Warningf(m.Out, "GitHub release publishing is not implemented yet.")
	}

	if attempted > 0 && failed == attempted {
		return fmt.Errorf("all %d publish targets failed", failed)
	}
	return nil
}
