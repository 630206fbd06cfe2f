package venv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOverlay_Environ(t *testing.T) {
	o := Overlay{VenvDir: "/work/.venv"}
	base := []string{"PATH=/usr/bin:/bin", "HOME=/home/u"}

	env := o.Environ(base)

	if got := lookup(env, "VIRTUAL_ENV"); got != "/work/.venv" {
		t.Errorf("VIRTUAL_ENV = %q", got)
	}
	path := lookup(env, "PATH")
	if !strings.HasPrefix(path, o.BinDir()+string(os.PathListSeparator)) {
		t.Errorf("PATH = %q, want %q prepended", path, o.BinDir())
	}
	if !strings.Contains(path, "/usr/bin") {
		t.Errorf("PATH lost original entries: %q", path)
	}

	// base must not be modified.
	if base[0] != "PATH=/usr/bin:/bin" {
		t.Errorf("base was mutated: %v", base)
	}
}

func TestOverlay_EnvironWithoutPath(t *testing.T) {
	o := Overlay{VenvDir: "/work/.venv"}
	env := o.Environ([]string{"HOME=/home/u"})
	if got := lookup(env, "PATH"); got != o.BinDir() {
		t.Errorf("PATH = %q, want bare bin dir", got)
	}
}

func TestOverlay_Deactivated(t *testing.T) {
	o := Overlay{VenvDir: "/work/.venv"}
	activated := o.Environ([]string{"PATH=/usr/bin:/bin", "HOME=/home/u"})

	env := o.Deactivated(activated)

	if got := lookup(env, "VIRTUAL_ENV"); got != "" {
		t.Errorf("VIRTUAL_ENV survived deactivation: %q", got)
	}
	path := lookup(env, "PATH")
	if strings.Contains(path, "/work/.venv") {
		t.Errorf("PATH still references the venv: %q", path)
	}
	if !strings.Contains(path, "/usr/bin") {
		t.Errorf("PATH lost original entries: %q", path)
	}
}

func TestOverlay_ActivateDeactivateRoundTrip(t *testing.T) {
	o := Overlay{VenvDir: "/work/.venv"}
	base := []string{"PATH=/usr/bin:/bin"}

	env := o.Deactivated(o.Environ(base))
	if got := lookup(env, "PATH"); got != "/usr/bin:/bin" {
		t.Errorf("round trip PATH = %q, want original", got)
	}
}

func TestOverlay_BinDirAndPython(t *testing.T) {
	o := Overlay{VenvDir: "/work/.venv"}
	if !strings.HasPrefix(o.BinDir(), filepath.Join("/work", ".venv")) {
		t.Errorf("BinDir = %q", o.BinDir())
	}
	if !strings.HasPrefix(o.PythonPath(), o.BinDir()) {
		t.Errorf("PythonPath = %q not under BinDir", o.PythonPath())
	}
}

func lookup(env []string, key string) string {
	for _, kv := range env {
		if strings.HasPrefix(kv, key+"=") {
			return strings.TrimPrefix(kv, key+"=")
		}
	}
	return ""
}
