// Package settings holds the per-user devup configuration. The declared tool
// table is fixed in code, but which entries run and which count as required
// is configuration data, since that classification shifts between setups.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"devup/internal/config"
	"devup/internal/tools"
)

// Settings is the on-disk shape of settings.yaml.
type Settings struct {
	// Workspace is the directory the Claude launcher and MCP server target.
	Workspace string `yaml:"workspace" json:"workspace"`
	// Disabled lists tool IDs to skip entirely.
	Disabled []string `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	// Required overrides the per-tool required flag from the registry.
	Required map[string]bool `yaml:"required,omitempty" json:"required,omitempty"`
}

// Default returns the built-in settings used when no file exists.
func Default() Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	return Settings{Workspace: filepath.Join(home, "workspace")}
}

// Load reads settings.yaml, falling back to Default when the file is absent.
func Load() (Settings, error) {
	p, err := config.SettingsPath()
	if err != nil {
		return Default(), err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", p, err)
	}
	if strings.TrimSpace(s.Workspace) == "" {
		s.Workspace = Default().Workspace
	}
	s.Disabled = normalizeList(s.Disabled)
	return s, nil
}

// Save writes settings.yaml, creating the config directory when missing.
func Save(s Settings) error {
	p, err := config.SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	s.Disabled = normalizeList(s.Disabled)
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// Enabled reports whether a tool should be processed this run.
func (s Settings) Enabled(id tools.ToolID) bool {
	for _, d := range s.Disabled {
		if d == string(id) {
			return false
		}
	}
	return true
}

// IsRequired resolves a tool's required flag, with the settings override
// winning over the registry default.
func (s Settings) IsRequired(t tools.ToolSpec) bool {
	if v, ok := s.Required[string(t.ID)]; ok {
		return v
	}
	return t.Required
}

// Select filters the declared tool table down to the enabled entries.
func (s Settings) Select(all []tools.ToolSpec) []tools.ToolSpec {
	out := make([]tools.ToolSpec, 0, len(all))
	for _, t := range all {
		if s.Enabled(t.ID) {
			out = append(out, t)
		}
	}
	return out
}

func normalizeList(in []string) []string {
	m := map[string]bool{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		m[s] = true
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
