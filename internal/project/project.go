// Package project creates and deletes uv-managed Python projects. Project
// initialization is delegated to `uv init`; a pyproject.toml template is
// fetched over HTTP only when uv did not leave one behind.
package project

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mazinko450/mspyl/internal/blob"
	"github.com/mazinko450/mspyl/internal/report"
	"github.com/mazinko450/mspyl/internal/runner"
	"github.com/mazinko450/mspyl/internal/uv"
)

// DescriptorFile is the project descriptor uv initializes.
const DescriptorFile = "pyproject.toml"

// Manager orchestrates project operations rooted at Dir.
type Manager struct {
	Runner      *runner.Runner
	Dir         string
	TemplateURL string
	Client      *http.Client
	Out         io.Writer
}

// New returns a Manager for the project at dir.
func New(r *runner.Runner, dir, templateURL string, out io.Writer) *Manager {
	return &Manager{
		Runner:      r,
		Dir:         dir,
		TemplateURL: templateURL,
		Client:      http.DefaultClient,
		Out:         out,
	}
}

// Create initializes a new project via `uv init` with the arguments encoded
// in blobArg, then writes the remote pyproject template if uv did not
// create a descriptor file. Both the init call and the template fetch are
// hard failures; the already-created directory is not rolled back.
func (m *Manager) Create(ctx context.Context, blobArg string) error {
	if !blob.Valid(blobArg) {
		return fmt.Errorf("malformed argument: %s", blob.Usage)
	}
	args := blob.Decode(blobArg)

	argv := append(uv.Command("init"), args...)
	if _, err := m.Runner.Run(ctx, argv, runner.Options{RequireSuccess: true}); err != nil {
		return fmt.Errorf("initializing project: %w", err)
	}

	descriptor := filepath.Join(m.Dir, DescriptorFile)
	if _, err := os.Stat(descriptor); err == nil {
		report.Successf(m.Out, "Project created successfully.")
		return nil
	}

	body, err := m.fetchTemplate(ctx)
	if err != nil {
		return fmt.Errorf("fetching %s template: %w", DescriptorFile, err)
	}
	if err := os.WriteFile(descriptor, body, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", DescriptorFile, err)
	}

	report.Successf(m.Out, "Project created successfully.")
	return nil
}

// fetchTemplate downloads the pyproject template. The body is returned
// byte-for-byte; any non-2xx response is an error.
func (m *Manager) fetchTemplate(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.TemplateURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating template request: %w", err)
	}
	req.Header.Set("User-Agent", "mspyl")

	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("template download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading template body: %w", err)
	}
	return body, nil
}

// Delete removes the project directory and everything under it. A
// nonexistent directory is success.
func (m *Manager) Delete() error {
	if err := os.RemoveAll(m.Dir); err != nil {
		return fmt.Errorf("removing project directory %s: %w", m.Dir, err)
	}
	report.Successf(m.Out, "Project deleted successfully.")
	return nil
}
