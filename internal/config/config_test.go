package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestTimeout(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"unset", "", DefaultTimeout},
		{"valid", "90s", 90 * time.Second},
		{"composite", "1h30m", 90 * time.Minute},
		{"garbage", "soon", DefaultTimeout},
		{"negative", "-5m", DefaultTimeout},
		{"zero", "0s", DefaultTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			if tt.raw != "" {
				viper.Set(KeyTimeout, tt.raw)
			}
			if got := Timeout(); got != tt.want {
				t.Errorf("Timeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGet_UnsetKeyIsEmpty(t *testing.T) {
	viper.Reset()
	if got := Get(KeyVenvPath); got != "" {
		t.Errorf("Get(%q) = %q, want empty", KeyVenvPath, got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("MSPYL_TEMPLATE_URL", "https://example.com/template.toml")
	Load()
	if got := Get(KeyTemplateURL); got != "https://example.com/template.toml" {
		t.Errorf("Get(%q) = %q", KeyTemplateURL, got)
	}
}
