// Package packages implements the system-wide package operations: install,
// uninstall, update, update-all, and the list family. All substantive work
// is delegated to uv; this layer builds argument vectors, classifies
// outcomes, and renders reports.
package packages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mazinko450/mspyl/internal/blob"
	"github.com/mazinko450/mspyl/internal/python"
	"github.com/mazinko450/mspyl/internal/report"
	"github.com/mazinko450/mspyl/internal/runner"
	"github.com/mazinko450/mspyl/internal/uv"
)

// Manager orchestrates package operations against uv. When Interp is a
// resolved descriptor, pip operations route through that interpreter;
// otherwise they run system-wide.
type Manager struct {
	Runner *runner.Runner
	Interp python.Descriptor
	Out    io.Writer
}

// New returns a Manager writing user-facing output to out.
func New(r *runner.Runner, interp python.Descriptor, out io.Writer) *Manager {
	return &Manager{Runner: r, Interp: interp, Out: out}
}

// installArgv builds the argv for a pip install-style call, honoring the
// pinned interpreter when one resolved.
func (m *Manager) installArgv(args []string, extraFlags ...string) []string {
	if m.Interp.Found() {
		return append(uv.PipVia(m.Interp.Path, "install", args...), extraFlags...)
	}
	argv := uv.Pip("install", args...)
	return append(append(argv, uv.FlagSystem), extraFlags...)
}

// Install installs the packages encoded in blobArg. Malformed blobs are
// rejected with the required format instead of a best-effort parse.
func (m *Manager) Install(ctx context.Context, blobArg string) error {
	if !blob.Valid(blobArg) {
		return fmt.Errorf("malformed argument: %s", blob.Usage)
	}
	args := blob.Decode(blobArg)

	argv := m.installArgv(args, uv.FlagCompile)
	res, err := m.Runner.Run(ctx, argv, runner.Options{RequireSuccess: true, Capture: true})
	if err != nil {
		return err
	}

	if out := strings.TrimSpace(res.Stdout); out != "" {
		fmt.Fprintln(m.Out, out)
	}
	report.Successf(m.Out, "Packages installed successfully.")
	return nil
}

// Uninstall removes the packages encoded in blobArg. Blob validation is
// strict here too, matching Install.
func (m *Manager) Uninstall(ctx context.Context, blobArg string) error {
	if !blob.Valid(blobArg) {
		return fmt.Errorf("malformed argument: %s", blob.Usage)
	}
	args := blob.Decode(blobArg)

	var argv []string
	if m.Interp.Found() {
		argv = uv.PipVia(m.Interp.Path, "uninstall", args...)
	} else {
		argv = append(uv.Pip("uninstall", args...), uv.FlagSystem)
	}

	if _, err := m.Runner.Run(ctx, argv, runner.Options{RequireSuccess: true, Capture: true}); err != nil {
		return err
	}
	report.Successf(m.Out, "Packages uninstalled successfully.")
	return nil
}

// Update upgrades a single named package.
func (m *Manager) Update(ctx context.Context, name string) error {
	argv := m.installArgv([]string{name}, uv.FlagUpgrade)
	if _, err := m.Runner.Run(ctx, argv, runner.Options{RequireSuccess: true, Capture: true}); err != nil {
		return err
	}
	report.Successf(m.Out, "Package %q updated successfully.", name)
	return nil
}

// UpdateAll lists installed packages via freeze and upgrades each one,
// isolating per-package failures: each is reported and the loop continues.
// The operation only fails as a whole when the initial listing fails or
// every single upgrade failed.
func (m *Manager) UpdateAll(ctx context.Context) error {
	freeze, err := m.Runner.RunQuiet(ctx, append(uv.Pip("freeze"), uv.FlagSystem), runner.Options{RequireSuccess: true})
	if err != nil {
		return fmt.Errorf("listing installed packages: %w", err)
	}

	names := freezeNames(freeze.Stdout)
	if len(names) == 0 {
		fmt.Fprintln(m.Out, "No packages installed.")
		return nil
	}

	failed := 0
	for i, name := range names {
		fmt.Fprintf(m.Out, "Updating %s (%d/%d)\n", name, i+1, len(names))

		argv := m.installArgv([]string{name}, uv.FlagUpgrade)
		res, err := m.Runner.RunQuiet(ctx, argv, runner.Options{})
		if err != nil {
			report.Errorf(m.Out, "Error updating %s: %v", name, err)
			failed++
			continue
		}
		if res.ExitCode != 0 {
			report.Errorf(m.Out, "Error updating %s: %s", name, strings.TrimSpace(res.Stderr))
			failed++
		}
	}

	if failed == len(names) {
		return fmt.Errorf("all %d package updates failed", failed)
	}
	if failed > 0 {
		report.Warningf(m.Out, "Updated %d packages, %d failed.", len(names)-failed, failed)
		return nil
	}
	report.Successf(m.Out, "All packages updated successfully.")
	return nil
}

// freezeNames extracts package names from pip freeze output: the first
// segment of each line split on the version separator.
func freezeNames(raw string) []string {
	var names []string
	for _, line := range report.Lines(raw) {
		name, _, _ := strings.Cut(line, "==")
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Outdated lists packages with newer versions available, optionally scoped
// to a single package name. An empty report is "nothing found", not an error.
func (m *Manager) Outdated(ctx context.Context, name string) error {
	argv := append(uv.Pip("list"), uv.FlagOutdated, uv.FlagSystem)
	if name != "" {
		argv = append(argv, name)
	}

	res, err := m.Runner.RunQuiet(ctx, argv, runner.Options{RequireSuccess: true})
	if err != nil {
		return err
	}

	rows := report.Parse(res.Stdout, 3)
	if len(rows) == 0 {
		report.Warningf(m.Out, "No outdated packages found.")
		return nil
	}
	report.Render(m.Out, "Outdated Packages", []string{"Package", "Current Version", "Latest Version"}, rows)
	return nil
}

// ListExternal lists installed third-party packages with their versions
// and locations.
func (m *Manager) ListExternal(ctx context.Context) error {
	res, err := m.Runner.RunQuiet(ctx, append(uv.Pip("list"), uv.FlagSystem), runner.Options{RequireSuccess: true})
	if err != nil {
		return err
	}

	rows := report.Parse(res.Stdout, 3)
	if len(rows) == 0 {
		report.Warningf(m.Out, "No external modules found.")
		return nil
	}
	report.Render(m.Out, "External Modules", []string{"Package", "Version", "Location"}, rows)
	return nil
}

// ListInterpreters renders every Python executable found on PATH with its
// reported version.
func (m *Manager) ListInterpreters(ctx context.Context) error {
	interps, err := python.Installed(ctx, m.Runner)
	if err != nil {
		return err
	}

	if len(interps) == 0 {
		report.Warningf(m.Out, "No Python interpreters found.")
		return nil
	}

	rows := make([]report.Row, 0, len(interps))
	for _, in := range interps {
		rows = append(rows, report.Row{in.Version, in.Path})
	}
	report.Render(m.Out, "Python Versions", []string{"Version", "Path"}, rows)
	return nil
}

// ListBuiltins asks the interpreter for its built-in module names and
// renders them. Like every other listing this is delegated, not mirrored:
// the interpreter owns the answer.
func (m *Manager) ListBuiltins(ctx context.Context) error {
	py := "python3"
	if m.Interp.Found() {
		py = m.Interp.Path
	}

	argv := []string{py, "-c", "import sys; print('\\n'.join(sys.builtin_module_names))"}
	res, err := m.Runner.RunQuiet(ctx, argv, runner.Options{RequireSuccess: true})
	if err != nil {
		return err
	}

	var rows []report.Row
	for _, name := range report.Lines(res.Stdout) {
		rows = append(rows, report.Row{name})
	}
	if len(rows) == 0 {
		report.Warningf(m.Out, "No built-in modules reported.")
		return nil
	}
	report.Render(m.Out, "Built-in Modules", []string{"Module"}, rows)
	return nil
}
