// Package config resolves hoard's file locations and user settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// HoardDir is the dotfile directory under the user's home.
	HoardDir = ".hoard"
	// TroveFile is the store file name.
	TroveFile = "trove.json"
	// SettingsFile is the settings file name.
	SettingsFile = "config.json"
	// CacheDir holds ephemeral files (the search index).
	CacheDir = "cache"
	// IndexFile is the SQLite search index file name.
	IndexFile = "index.db"

	// ParameterTokenKey is the recognized settings key.
	ParameterTokenKey = "parameter_token"
)

// HomeEnvVar overrides the hoard home directory when set.
const HomeEnvVar = "HOARD_HOME"

// HomeDir resolves the hoard home directory: the HOARD_HOME environment
// variable, else hoard_home from the global config, else ~/.hoard.
func HomeDir() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home, nil
	}
	if cfg, err := LoadGlobalConfig(); err == nil && cfg.HoardHome != "" {
		return ExpandPath(cfg.HoardHome), nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(userHome, HoardDir), nil
}

// TrovePath returns the store file path under the hoard home.
func TrovePath(home string) string {
	return filepath.Join(home, TroveFile)
}

// SettingsPath returns the settings file path under the hoard home.
func SettingsPath(home string) string {
	return filepath.Join(home, SettingsFile)
}

// IndexPath returns the search index path under the hoard home.
func IndexPath(home string) string {
	return filepath.Join(home, CacheDir, IndexFile)
}

// LoadSettings reads the settings file as a JSON object. A missing file
// yields an empty settings map.
func LoadSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}

// SaveSettings writes the settings file, creating parent directories as
// needed.
func SaveSettings(path string, settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// SetParameterToken sets the parameter token in the settings file under
// the given hoard home, preserving any unrelated keys already present.
func SetParameterToken(home, token string) error {
	path := SettingsPath(home)
	settings, err := LoadSettings(path)
	if err != nil {
		return err
	}
	settings[ParameterTokenKey] = token
	return SaveSettings(path, settings)
}

// ParameterToken reads the parameter token from the settings file under
// the given hoard home. The second return value reports whether the
// token is set.
func ParameterToken(home string) (string, bool) {
	settings, err := LoadSettings(SettingsPath(home))
	if err != nil {
		return "", false
	}
	token, ok := settings[ParameterTokenKey].(string)
	return token, ok
}

// ExpandPath expands a leading ~ to the user's home directory. Returns
// the path unchanged if it does not start with ~ or the home directory
// cannot be resolved.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
