// Package artifacts renders and writes the config files devup fully owns.
// Unlike profile fragments these are overwritten on every run: their content
// is a pure function of the declared templates, never of prior file state.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Artifact is one overwrite-mode file.
type Artifact struct {
	Name string
	Path string
	Mode os.FileMode
	Body []byte
}

// WriteAtomic replaces path with data via a temp file and rename, so a
// crashed run never leaves a half-written config behind.
func WriteAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", tmpName, path, err)
	}
	return nil
}

// Write renders a and writes it atomically.
func (a Artifact) Write() error {
	mode := a.Mode
	if mode == 0 {
		mode = 0o644
	}
	return WriteAtomic(a.Path, a.Body, mode)
}

// ghosttyConfig is the flat `key = value` terminal config. Rendered sorted so
// repeated runs are byte-identical.
var ghosttyConfig = map[string]string{
	"theme":                "catppuccin-mocha",
	"font-family":          "JetBrainsMono Nerd Font",
	"font-size":            "13",
	"window-padding-x":     "8",
	"window-padding-y":     "8",
	"macos-titlebar-style": "tabs",
	"shell-integration":    "zsh",
}

func renderGhosttyConfig() []byte {
	keys := make([]string, 0, len(ghosttyConfig))
	for k := range ghosttyConfig {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("# Managed by devup; edits are overwritten on the next run.\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %s\n", k, ghosttyConfig[k])
	}
	return []byte(b.String())
}

// mcpServer mirrors one entry under mcpServers in the Claude Desktop config.
type mcpServer struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

type claudeDesktopConfig struct {
	MCPServers map[string]mcpServer `json:"mcpServers"`
}

func renderClaudeDesktopConfig(workspace string) ([]byte, error) {
	cfg := claudeDesktopConfig{
		MCPServers: map[string]mcpServer{
			"filesystem": {
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-filesystem", workspace},
				Env:     map[string]string{"MCP_FILESYSTEM_ROOT": workspace},
			},
		},
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func renderLauncherScript(workspace string) []byte {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("# Managed by devup: launch Claude Code in the declared workspace.\n")
	fmt.Fprintf(&b, "cd %q || exit 1\n", workspace)
	b.WriteString("exec claude \"$@\"\n")
	return []byte(b.String())
}

// All returns every declared artifact for the given home and workspace paths.
func All(home, workspace string) ([]Artifact, error) {
	desktop, err := renderClaudeDesktopConfig(workspace)
	if err != nil {
		return nil, err
	}
	return []Artifact{
		{
			Name: "ghostty config",
			Path: filepath.Join(home, ".config", "ghostty", "config"),
			Body: renderGhosttyConfig(),
		},
		{
			Name: "claude desktop config",
			Path: filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"),
			Body: desktop,
		},
		{
			Name: "claude workspace launcher",
			Path: filepath.Join(home, ".local", "bin", "claude-ws"),
			Mode: 0o755,
			Body: renderLauncherScript(workspace),
		},
	}, nil
}

// Apply writes every artifact, returning the first failure.
func Apply(home, workspace string) error {
	arts, err := All(home, workspace)
	if err != nil {
		return err
	}
	for _, a := range arts {
		if err := a.Write(); err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
	}
	return nil
}
