package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the devup config directory under the user config base.
// On macOS this resolves to ~/Library/Application Support/devup; on Linux to
// $XDG_CONFIG_HOME/devup. Falls back to HOME when UserConfigDir is
// unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "devup"), nil
}

// SettingsPath returns the settings file path inside Dir.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}
