// Package venv manages Python virtual environments through uv. Commands
// that operate inside a venv receive an activated environment via an
// Overlay instead of process-global mutation.
package venv

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mazinko450/mspyl/internal/report"
	"github.com/mazinko450/mspyl/internal/runner"
	"github.com/mazinko450/mspyl/internal/uv"
)

// DefaultDir is the conventional virtual environment location.
const DefaultDir = ".venv"

// Manager orchestrates virtual-environment operations for one venv
// directory.
type Manager struct {
	Runner *runner.Runner
	Dir    string
	Out    io.Writer
}

// New returns a Manager for the venv at dir, defaulting to DefaultDir.
func New(r *runner.Runner, dir string, out io.Writer) *Manager {
	if dir == "" {
		dir = DefaultDir
	}
	return &Manager{Runner: r, Dir: dir, Out: out}
}

// Overlay returns the activation overlay for this venv.
func (m *Manager) Overlay() Overlay {
	return Overlay{VenvDir: m.Dir}
}

// env returns the process environment with this venv activated.
func (m *Manager) env() []string {
	return m.Overlay().Environ(os.Environ())
}

// Create initializes the virtual environment, optionally pinned to a
// Python version specifier.
func (m *Manager) Create(ctx context.Context, pythonSpec string) error {
	argv := uv.Command("venv", m.Dir)
	if pythonSpec != "" {
		argv = append(argv, "-p", pythonSpec)
	}

	if _, err := m.Runner.Run(ctx, argv, runner.Options{RequireSuccess: true}); err != nil {
		return err
	}
	report.Successf(m.Out, "Virtual environment created successfully.")
	return nil
}

// Activate verifies the venv exists and returns its activation overlay.
// Activation is scoped to commands run with the overlay; nothing outlives
// the current invocation.
func (m *Manager) Activate() (Overlay, error) {
	if _, err := os.Stat(m.Dir); err != nil {
		return Overlay{}, fmt.Errorf("virtual environment %s not found: %w", m.Dir, err)
	}
	report.Successf(m.Out, "Virtual environment activated.")
	return m.Overlay(), nil
}

// Deactivate reports deactivation. Since activation is invocation-scoped,
// there is no persistent state to undo.
func (m *Manager) Deactivate() {
	report.Successf(m.Out, "Virtual environment deactivated.")
}

// Add declares the packages as project dependencies and installs them into
// the venv.
func (m *Manager) Add(ctx context.Context, packages string) error {
	pkgs := strings.Fields(packages)
	if len(pkgs) == 0 {
		return fmt.Errorf("no packages given")
	}

	argv := append(uv.Command("add", uv.FlagCompile), pkgs...)
	if _, err := m.Runner.Run(ctx, argv, runner.Options{RequireSuccess: true, Env: m.env()}); err != nil {
		return err
	}
	report.Successf(m.Out, "Packages %s added successfully.", strings.Join(pkgs, ", "))
	return nil
}

// Remove uninstalls the packages from the venv and drops them from the
// project dependencies.
func (m *Manager) Remove(ctx context.Context, packages string) error {
	pkgs := strings.Fields(strings.ToLower(packages))
	if len(pkgs) == 0 {
		return fmt.Errorf("no packages given")
	}

	env := m.env()
	if _, err := m.Runner.Run(ctx, uv.Pip("uninstall", pkgs...), runner.Options{RequireSuccess: true, Env: env}); err != nil {
		return err
	}
	if _, err := m.Runner.Run(ctx, append(uv.Command("remove"), pkgs...), runner.Options{RequireSuccess: true, Env: env}); err != nil {
		return err
	}
	report.Successf(m.Out, "Packages %s removed successfully.", strings.Join(pkgs, ", "))
	return nil
}

// RemoveVenv deletes the virtual environment directory. An already absent
// directory is success, not an error.
func (m *Manager) RemoveVenv() error {
	m.Deactivate()
	if err := os.RemoveAll(m.Dir); err != nil {
		return fmt.Errorf("removing virtual environment %s: %w", m.Dir, err)
	}
	report.Successf(m.Out, "Virtual environment removed successfully.")
	return nil
}

// ListInstalled streams the venv's installed packages in freeze format.
func (m *Manager) ListInstalled(ctx context.Context) error {
	report.Successf(m.Out, "Installed packages:")
	_, err := m.Runner.Run(ctx, uv.Pip("freeze"), runner.Options{RequireSuccess: true, Env: m.env()})
	return err
}

// ListTree streams the venv's dependency tree.
func (m *Manager) ListTree(ctx context.Context) error {
	report.Successf(m.Out, "Dependencies tree:")
	_, err := m.Runner.Run(ctx, uv.Pip("tree"), runner.Options{RequireSuccess: true, Env: m.env()})
	return err
}

// ListOutdated renders the venv's outdated packages and returns the parsed
// rows for reuse by UpdateAll. An empty report is a valid outcome.
func (m *Manager) ListOutdated(ctx context.Context) ([]report.Row, error) {
	res, err := m.Runner.RunQuiet(ctx, append(uv.Pip("list"), uv.FlagOutdated), runner.Options{RequireSuccess: true, Env: m.env()})
	if err != nil {
		return nil, err
	}

	rows := report.Parse(res.Stdout, 3)
	if len(rows) == 0 {
		report.Warningf(m.Out, "No outdated packages found.")
		return nil, nil
	}
	report.Render(m.Out, "Available Updates", []string{"Package", "Current Version", "Latest Version"}, rows)
	return rows, nil
}

// Update upgrades the named packages inside the venv.
func (m *Manager) Update(ctx context.Context, packages string) error {
	pkgs := strings.Fields(packages)
	if len(pkgs) == 0 {
		return fmt.Errorf("no packages given")
	}
	return m.upgrade(ctx, pkgs)
}

// UpdateAll upgrades every outdated package in the venv. Nothing outdated
// is success.
func (m *Manager) UpdateAll(ctx context.Context) error {
	rows, err := m.ListOutdated(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		report.Successf(m.Out, "No packages to upgrade.")
		return nil
	}

	pkgs := make([]string, 0, len(rows))
	for _, row := range rows {
		pkgs = append(pkgs, row[0])
	}
	return m.upgrade(ctx, pkgs)
}

func (m *Manager) upgrade(ctx context.Context, pkgs []string) error {
	argv := append(uv.Pip("install", uv.FlagCompile, uv.FlagUpgrade), pkgs...)
	if _, err := m.Runner.Run(ctx, argv, runner.Options{RequireSuccess: true, Env: m.env()}); err != nil {
		return err
	}
	report.Successf(m.Out, "Packages upgraded successfully.")
	return nil
}
