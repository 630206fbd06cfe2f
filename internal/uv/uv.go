// Package uv builds argument vectors for the external uv executable. It
// owns the executable name resolution and the handful of uv flags mspyl
// composes; everything else about uv's CLI is treated as a black box.
package uv

import (
	"runtime"

	"github.com/mazinko450/mspyl/internal/config"
)

// Flags passed through to uv.
const (
	FlagSystem   = "--system"
	FlagUpgrade  = "--upgrade"
	FlagCompile  = "--compile-bytecode"
	FlagOutdated = "--outdated"
)

// Executable returns the uv program name to invoke. The uv.executable
// config key overrides the platform default.
func Executable() string {
	if override := config.Get(config.KeyUvExecutable); override != "" {
		return override
	}
	if runtime.GOOS == "windows" {
		return "uv.exe"
	}
	return "uv"
}

// Command returns a fresh argv for a top-level uv subcommand,
// e.g. Command("init", "myproj") → ["uv", "init", "myproj"].
func Command(args ...string) []string {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, Executable())
	return append(argv, args...)
}

// Pip returns a fresh argv for a `uv pip` subcommand,
// e.g. Pip("install", "requests") → ["uv", "pip", "install", "requests"].
func Pip(sub string, args ...string) []string {
	argv := make([]string, 0, len(args)+3)
	argv = append(argv, Executable(), "pip", sub)
	return append(argv, args...)
}

// PipVia returns a `pip` argv routed through a specific interpreter:
// ["<python>", "-m", "uv", "pip", <sub>, args...]. Used when the user
// pinned a Python version that resolved to a concrete path.
func PipVia(python, sub string, args ...string) []string {
	argv := make([]string, 0, len(args)+5)
	argv = append(argv, python, "-m", "uv", "pip", sub)
	return append(argv, args...)
}
