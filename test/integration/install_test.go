//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mazinko450/mspyl/internal/packages"
	"github.com/mazinko450/mspyl/internal/python"
	"github.com/mazinko450/mspyl/internal/runner"
)

func TestInstallThenUpdateAll(t *testing.T) {
	env := setupTestEnv(t, `case "$*" in
  *freeze*) printf 'requests==2.31.0\nrich==13.6.0\n' ;;
esac
exit 0
`)

	var out bytes.Buffer
	m := packages.New(runner.New(0), python.Descriptor{}, &out)
	ctx := context.Background()

	if err := m.Install(ctx, "*requests!rich"); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if err := m.UpdateAll(ctx); err != nil {
		t.Fatalf("UpdateAll: %v", err)
	}

	assertCalls(t, env,
		"pip install requests rich --system --compile-bytecode",
		"pip freeze --system",
		"pip install requests --system --upgrade",
		"pip install rich --system --upgrade",
	)
	assertContains(t, out.String(),
		"Packages installed successfully.",
		"Updating requests (1/2)",
		"Updating rich (2/2)",
		"All packages updated successfully.",
	)
}

func TestInstallWithPinnedInterpreterRoutesThroughIt(t *testing.T) {
	env := setupTestEnv(t, `case "$*" in
  "python find 3.12") echo "`+"$0"+`" ;;
esac
exit 0
`)

	var out bytes.Buffer
	r := runner.New(0)
	ctx := context.Background()

	// The stub answers python find with its own path, so the resolved
	// interpreter is itself an executable script.
	interp := python.Resolve(ctx, r, &out, "3.12")
	if !interp.Found() {
		t.Fatalf("interpreter did not resolve; output:\n%s", out.String())
	}

	m := packages.New(r, interp, &out)
	if err := m.Install(ctx, "*requests"); err != nil {
		t.Fatalf("Install: %v", err)
	}

	// Resolution probes both the venv and system scopes before installing
	// through the resolved interpreter.
	assertCalls(t, env,
		"python find 3.12",
		"python find 3.12 --system",
		"-m uv pip install requests --compile-bytecode",
	)
}

func TestOutdatedReportRendering(t *testing.T) {
	setupTestEnv(t, `printf 'Package Version Latest\n------- ------- ------\nrequests 2.31.0 2.32.3\n'
exit 0
`)

	var out bytes.Buffer
	m := packages.New(runner.New(0), python.Descriptor{}, &out)
	if err := m.Outdated(context.Background(), ""); err != nil {
		t.Fatalf("Outdated: %v", err)
	}

	assertContains(t, out.String(), "Outdated Packages", "requests", "2.31.0", "2.32.3")
}
