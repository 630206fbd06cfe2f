package python

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	runpkg "github.com/mazinko450/mspyl/internal/runner"
	"github.com/mazinko450/mspyl/internal/uv"
)

// MinimumUvVersion is the oldest uv release whose pip and publish surfaces
// mspyl composes against.
const MinimumUvVersion = "0.4.0"

// UvVersion asks the installed uv for its version and returns the parsed
// value. uv prints "uv X.Y.Z (…)", so the second field is the version.
func UvVersion(ctx context.Context, r *runpkg.Runner) (*semver.Version, error) {
	res, err := r.RunQuiet(ctx, uv.Command("--version"), runpkg.Options{RequireSuccess: true})
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(res.Stdout)
	if len(fields) < 2 {
		return nil, fmt.Errorf("unexpected uv version output %q", strings.TrimSpace(res.Stdout))
	}
	v, err := semver.NewVersion(strings.TrimPrefix(fields[1], "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing uv version %q: %w", fields[1], err)
	}
	return v, nil
}

// UvSupported reports whether the installed uv meets MinimumUvVersion.
func UvSupported(v *semver.Version) bool {
	min := semver.MustParse(MinimumUvVersion)
	return !v.LessThan(min)
}
