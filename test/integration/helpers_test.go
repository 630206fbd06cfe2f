//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to the isolated directories a test runs in.
type testEnv struct {
	BinDir  string // Stub executables, prepended to PATH
	HomeDir string // Fake $HOME so config reads/writes are sandboxed
	WorkDir string // Scratch directory for venvs and projects
	LogPath string // Argv log written by the stub uv
}

// setupTestEnv creates isolated temp directories, sandboxes $HOME, and
// installs a stub uv that appends its argv to LogPath and runs body.
func setupTestEnv(t *testing.T, uvBody string) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures not supported on windows")
	}

	env := &testEnv{
		BinDir:  t.TempDir(),
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.LogPath = filepath.Join(env.BinDir, "argv.log")

	script := "#!/bin/sh\necho \"$@\" >> \"" + env.LogPath + "\"\n" + uvBody
	if err := os.WriteFile(filepath.Join(env.BinDir, "uv"), []byte(script), 0755); err != nil {
		t.Fatalf("writing stub uv: %v", err)
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return env
}

// uvCalls returns every argv line the stub uv logged, oldest first.
func uvCalls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.LogPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading uv log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// assertCalls fails unless the stub uv saw exactly the given argv lines in order.
func assertCalls(t *testing.T, env *testEnv, want ...string) {
	t.Helper()
	got := uvCalls(t, env)
	if len(got) != len(want) {
		t.Fatalf("uv calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("uv call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// assertContains fails unless s contains every substr.
func assertContains(t *testing.T, s string, substrs ...string) {
	t.Helper()
	for _, sub := range substrs {
		if !strings.Contains(s, sub) {
			t.Errorf("output missing %q:\n%s", sub, s)
		}
	}
}

// readFile returns the file's contents, failing the test on error.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertNotExists fails the test if the path exists.
func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected path NOT to exist: %s", path)
	}
}
