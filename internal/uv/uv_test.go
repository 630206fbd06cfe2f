package uv

import (
	"reflect"
	"runtime"
	"testing"

	"github.com/spf13/viper"
)

func defaultExecutable() string {
	if runtime.GOOS == "windows" {
		return "uv.exe"
	}
	return "uv"
}

func TestExecutable_Default(t *testing.T) {
	viper.Reset()
	if got := Executable(); got != defaultExecutable() {
		t.Errorf("Executable() = %q, want %q", got, defaultExecutable())
	}
}

func TestExecutable_ConfigOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("uv.executable", "/opt/uv/bin/uv")
	if got := Executable(); got != "/opt/uv/bin/uv" {
		t.Errorf("Executable() = %q, want override", got)
	}
}

func TestCommand(t *testing.T) {
	viper.Reset()
	got := Command("init", "myproj")
	want := []string{defaultExecutable(), "init", "myproj"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Command = %v, want %v", got, want)
	}
}

func TestPip(t *testing.T) {
	viper.Reset()
	got := Pip("install", "requests")
	want := []string{defaultExecutable(), "pip", "install", "requests"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Pip = %v, want %v", got, want)
	}
}

func TestPipVia(t *testing.T) {
	viper.Reset()
	got := PipVia("/usr/bin/python3.12", "install", "requests")
	want := []string{"/usr/bin/python3.12", "-m", "uv", "pip", "install", "requests"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PipVia = %v, want %v", got, want)
	}
}

func TestBuilders_ReturnFreshSlices(t *testing.T) {
	viper.Reset()
	first := Pip("install")
	first = append(first, "mutated")

	second := Pip("install")
	for _, tok := range second {
		if tok == "mutated" {
			t.Fatal("Pip reused a previous slice")
		}
	}
}
