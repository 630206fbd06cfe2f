// Package python resolves Python interpreter paths through uv and probes
// installed interpreters on the system.
package python

import (
	"context"
	"io"
	"regexp"
	"runtime"
	"strings"

	"github.com/mazinko450/mspyl/internal/report"
	runpkg "github.com/mazinko450/mspyl/internal/runner"
	"github.com/mazinko450/mspyl/internal/uv"
)

// Descriptor pairs a requested version specifier with the interpreter path
// it resolved to. The zero value means "no interpreter pinned": callers
// fall back to a system-wide uv invocation.
type Descriptor struct {
	Spec string
	Path string
}

// Found reports whether resolution produced a concrete interpreter path.
func (d Descriptor) Found() bool { return d.Path != "" }

// specPattern matches <major>.<minor>[.<patch>][suffix], e.g. "3.12",
// "3.13.1", "3.14rc1".
var specPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?[A-Za-z0-9]*$`)

// ValidSpec reports whether spec is a recognizable version specifier.
func ValidSpec(spec string) bool {
	return specPattern.MatchString(spec)
}

// Resolve locates an interpreter matching spec by asking uv twice: once
// scoped to virtual-environment installations and once scoped to the
// system. The first candidate path wins. A spec that matches nothing
// degrades to a warning and an unpinned Descriptor, never an error.
func Resolve(ctx context.Context, r *runpkg.Runner, out io.Writer, spec string) Descriptor {
	if spec == "" {
		return Descriptor{}
	}
	if !ValidSpec(spec) {
		report.Warningf(out, "Ignoring malformed Python version %q (expected e.g. 3.12 or 3.13.1).", spec)
		return Descriptor{}
	}

	d := Descriptor{Spec: spec}

	var candidates []string
	for _, argv := range [][]string{
		uv.Command("python", "find", spec),
		uv.Command("python", "find", spec, uv.FlagSystem),
	} {
		res, err := r.RunQuiet(ctx, argv, runpkg.Options{})
		if err != nil {
			// uv missing entirely is reported by the first real call.
			continue
		}
		candidates = append(candidates, report.Lines(res.Stdout)...)
	}

	if len(candidates) == 0 {
		report.Warningf(out, "No Python %s versions found. Falling back to the system interpreter.", spec)
		return d
	}

	d.Path = candidates[0]
	return d
}

// Interpreter describes one installed Python executable.
type Interpreter struct {
	Version string
	Path    string
}

// Installed discovers Python executables on PATH and probes each for its
// version string.
func Installed(ctx context.Context, r *runpkg.Runner) ([]Interpreter, error) {
	var lookup []string
	if runtime.GOOS == "windows" {
		lookup = []string{"where.exe", "python"}
	} else {
		lookup = []string{"which", "-a", "python3"}
	}

	res, err := r.RunQuiet(ctx, lookup, runpkg.Options{RequireSuccess: true})
	if err != nil {
		return nil, err
	}

	var interps []Interpreter
	for _, path := range report.Lines(res.Stdout) {
		probe, err := r.RunQuiet(ctx, []string{path, "--version"}, runpkg.Options{})
		if err != nil {
			continue
		}
		version := strings.TrimSpace(probe.Stdout)
		if version == "" {
			version = strings.TrimSpace(probe.Stderr)
		}
		interps = append(interps, Interpreter{Version: version, Path: path})
	}
	return interps, nil
}
