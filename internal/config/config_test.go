package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestHomeDir_EnvOverride(t *testing.T) {
	t.Setenv(HomeEnvVar, "/custom/hoard")

	home, err := HomeDir()
	if err != nil {
		t.Fatalf("HomeDir() error = %v", err)
	}
	if home != "/custom/hoard" {
		t.Errorf("HomeDir() = %q, want /custom/hoard", home)
	}
}

func TestHomeDir_Default(t *testing.T) {
	t.Setenv(HomeEnvVar, "")
	// Point XDG at an empty dir so no global config interferes
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	home, err := HomeDir()
	if err != nil {
		t.Fatalf("HomeDir() error = %v", err)
	}
	userHome, _ := os.UserHomeDir()
	if home != filepath.Join(userHome, HoardDir) {
		t.Errorf("HomeDir() = %q, want %q", home, filepath.Join(userHome, HoardDir))
	}
}

func TestDerivedPaths(t *testing.T) {
	home := "/h/.hoard"
	if got := TrovePath(home); got != filepath.Join(home, "trove.json") {
		t.Errorf("TrovePath() = %q", got)
	}
	if got := SettingsPath(home); got != filepath.Join(home, "config.json") {
		t.Errorf("SettingsPath() = %q", got)
	}
	if got := IndexPath(home); got != filepath.Join(home, "cache", "index.db") {
		t.Errorf("IndexPath() = %q", got)
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if len(settings) != 0 {
		t.Errorf("LoadSettings() = %v, want empty map", settings)
	}
}

func TestSetParameterToken(t *testing.T) {
	home := filepath.Join(t.TempDir(), "deep", "hoard")

	if err := SetParameterToken(home, "#1"); err != nil {
		t.Fatalf("SetParameterToken() error = %v", err)
	}

	token, ok := ParameterToken(home)
	if !ok || token != "#1" {
		t.Errorf("ParameterToken() = %q, %v; want #1, true", token, ok)
	}
}

func TestSetParameterToken_PreservesUnrelatedKeys(t *testing.T) {
	home := t.TempDir()
	path := SettingsPath(home)

	existing := map[string]any{"theme": "dark", "parameter_token": "old"}
	data, _ := json.Marshal(existing)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if err := SetParameterToken(home, "new"); err != nil {
		t.Fatalf("SetParameterToken() error = %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if settings["theme"] != "dark" {
		t.Errorf("theme = %v, want dark (unrelated keys preserved)", settings["theme"])
	}
	if settings[ParameterTokenKey] != "new" {
		t.Errorf("parameter_token = %v, want new", settings[ParameterTokenKey])
	}
}

func TestExpandPath(t *testing.T) {
	userHome, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"~/x", filepath.Join(userHome, "x")},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
