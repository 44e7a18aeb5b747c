package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// NpmInstallGlobal installs a package globally at its latest version.
func NpmInstallGlobal(ctx context.Context, pkg string) error {
	// Use --no-fund and --no-audit to speed up and reduce noise
	if err := runVisible(ctx, "npm", "install", "-g", fmt.Sprintf("%s@latest", pkg), "--no-fund", "--no-audit"); err != nil {
		return fmt.Errorf("npm install -g %s: %w", pkg, err)
	}
	return nil
}

// NpmGlobalVersion queries npm for a globally installed package version.
func NpmGlobalVersion(ctx context.Context, pkg string) (string, error) {
	out, err := runCmd(ctx, "npm", "ls", "-g", "--depth=0", pkg, "--json")
	if err != nil && out == "" {
		return "", err
	}
	var data struct {
		Dependencies map[string]struct {
			Version string `json:"version"`
		} `json:"dependencies"`
	}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		return "", err
	}
	if d, ok := data.Dependencies[pkg]; ok {
		return d.Version, nil
	}
	return "", fmt.Errorf("package not found: %s", pkg)
}
