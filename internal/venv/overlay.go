package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// virtualEnvVar marks an active virtual environment for child processes.
const virtualEnvVar = "VIRTUAL_ENV"

// Overlay is an explicit, invocation-scoped view of virtual-environment
// activation. Rather than mutating the process environment, an Overlay is
// applied to the environment slice handed to each external command, so
// activation never leaks across invocations and is testable without a real
// process environment.
type Overlay struct {
	VenvDir string
}

// BinDir returns the scripts directory inside the venv for this platform.
func (o Overlay) BinDir() string {
	name := "bin"
	if runtime.GOOS == "windows" {
		name = "Scripts"
	}
	return filepath.Join(o.VenvDir, name)
}

// PythonPath returns the interpreter path inside the venv.
func (o Overlay) PythonPath() string {
	name := "python3"
	if runtime.GOOS == "windows" {
		name = "python.exe"
	}
	return filepath.Join(o.BinDir(), name)
}

// Environ returns a copy of base with the venv activated: VIRTUAL_ENV set
// and the venv bin directory prepended to PATH. base is not modified.
func (o Overlay) Environ(base []string) []string {
	env := make([]string, len(base))
	copy(env, base)

	env = setEnv(env, virtualEnvVar, o.VenvDir)

	path := getEnv(env, "PATH")
	if path == "" {
		return setEnv(env, "PATH", o.BinDir())
	}
	return setEnv(env, "PATH", o.BinDir()+string(os.PathListSeparator)+path)
}

// Deactivated returns a copy of base with the venv removed: VIRTUAL_ENV
// dropped and every PATH entry under the venv directory stripped.
func (o Overlay) Deactivated(base []string) []string {
	env := make([]string, 0, len(base))
	for _, kv := range base {
		if strings.HasPrefix(kv, virtualEnvVar+"=") {
			continue
		}
		env = append(env, kv)
	}

	var kept []string
	for _, p := range strings.Split(getEnv(env, "PATH"), string(os.PathListSeparator)) {
		if p != "" && !strings.HasPrefix(p, o.VenvDir) {
			kept = append(kept, p)
		}
	}
	return setEnv(env, "PATH", strings.Join(kept, string(os.PathListSeparator)))
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

// getEnv reads an environment variable from the env slice.
func getEnv(env []string, key string) string {
	prefix := key + "="
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			return strings.TrimPrefix(e, prefix)
		}
	}
	return ""
}
