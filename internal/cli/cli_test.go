package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mazinko450/mspyl/internal/config"
	"github.com/mazinko450/mspyl/internal/updater"
	"github.com/spf13/viper"
)

// runCLI executes the command tree with args in a sandboxed home directory
// and returns combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Fresh cache keeps the startup banner check from spawning a network
	// refresh during tests.
	if err := updater.SaveCache(config.Dir(), &updater.VersionCache{
		CurrentVersion: buildVersion,
		LatestVersion:  buildVersion,
		CheckedAt:      time.Now(),
	}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func sandboxHome(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
}

func TestVersionShort(t *testing.T) {
	sandboxHome(t)
	buildVersion = "1.2.3"
	defer func() { versionShort = false }()

	out, err := runCLI(t, "version", "--short")
	if err != nil {
		t.Fatalf("version --short: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("output = %q", out)
	}
}

func TestVersionJSON(t *testing.T) {
	sandboxHome(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc1234", "2026-01-01"
	defer func() { versionJSON = false }()

	out, err := runCLI(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	for _, want := range []string{`"version": "1.2.3"`, `"commit": "abc1234"`, `"date": "2026-01-01"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigSetGetRoundTrip(t *testing.T) {
	sandboxHome(t)

	if _, err := runCLI(t, "config", "set", config.KeyPythonVersion, "3.12"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	if _, err := os.Stat(config.FilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, err := runCLI(t, "config", "get", config.KeyPythonVersion)
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(out) != "3.12" {
		t.Errorf("config get output = %q", out)
	}
}

func TestConfigValidate(t *testing.T) {
	sandboxHome(t)

	out, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("validate with no config file: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Configuration is valid.") {
		t.Errorf("output = %q", out)
	}

	if err := os.MkdirAll(config.Dir(), 0755); err != nil {
		t.Fatal(err)
	}
	bad := []byte("python:\n  version: not-a-version\n")
	if err := os.WriteFile(config.FilePath(), bad, 0644); err != nil {
		t.Fatal(err)
	}

	out, err = runCLI(t, "config", "validate")
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(out, "/python/version") {
		t.Errorf("output missing issue path:\n%s", out)
	}
}

func TestInstallRejectsMalformedBlob(t *testing.T) {
	sandboxHome(t)

	_, err := runCLI(t, "install", "requests")
	if err == nil {
		t.Fatal("expected malformed-argument error")
	}
	if !strings.Contains(err.Error(), "malformed argument") {
		t.Errorf("error = %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	sandboxHome(t)

	if _, err := runCLI(t, "frobnicate"); err == nil {
		t.Fatal("expected unknown command error")
	}
}

func TestUpdateRequiresPackageOrAll(t *testing.T) {
	sandboxHome(t)
	defer func() { updateAll = false }()

	if _, err := runCLI(t, "update"); err == nil {
		t.Fatal("expected error without package or --all")
	}
}

func TestHelpListsCommandGroups(t *testing.T) {
	sandboxHome(t)

	out, err := runCLI(t, "--help")
	if err != nil {
		t.Fatalf("--help: %v", err)
	}
	for _, want := range []string{"install", "uninstall", "update", "list", "venv", "project", "build", "publish", "config", "doctor", "version"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
}
