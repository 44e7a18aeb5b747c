package tools

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// BrewPrefix returns the Homebrew prefix for the current architecture.
// Apple Silicon installs under /opt/homebrew, Intel under /usr/local.
func BrewPrefix() string {
	if runtime.GOARCH == "arm64" {
		return "/opt/homebrew"
	}
	return "/usr/local"
}

// BrewBinary resolves the brew executable. A fresh Homebrew install is not on
// PATH until the shell profile is reloaded, so the prefix locations are
// checked before PATH.
func BrewBinary() (string, bool) {
	for _, p := range []string{BrewPrefix() + "/bin/brew", "/opt/homebrew/bin/brew", "/usr/local/bin/brew"} {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, true
		}
	}
	if p, err := exec.LookPath("brew"); err == nil {
		return p, true
	}
	return "", false
}

// BrewInstall installs a formula (or a cask when cask is true).
func BrewInstall(ctx context.Context, name string, cask bool) error {
	brew, ok := BrewBinary()
	if !ok {
		return fmt.Errorf("brew not available; install Homebrew first")
	}
	args := []string{"install"}
	if cask {
		args = append(args, "--cask")
	}
	args = append(args, name)
	if err := runVisible(ctx, brew, args...); err != nil {
		return fmt.Errorf("brew install %s: %w", name, err)
	}
	return nil
}

// InstallHomebrew bootstraps Homebrew itself with the official install
// script. NONINTERACTIVE suppresses the script's confirmation prompt.
func InstallHomebrew(ctx context.Context) error {
	script := "/bin/bash -c \"$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)\""
	cmd := exec.CommandContext(ctx, "/bin/bash", "-c", script)
	cmd.Env = append(os.Environ(), "NONINTERACTIVE=1")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("homebrew install script: %w", err)
	}
	return nil
}
