package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const (
	lazyVimStarterRepo = "https://github.com/LazyVim/starter"
	ghosttyRepo        = "https://github.com/ghostty-org/ghostty"
	claudeCodePackage  = "@anthropic-ai/claude-code"
)

// Tools is the declared tool table. Order matters: Homebrew first, since most
// installs below delegate to it. Adding a tool means adding one entry here.
var Tools = []ToolSpec{
	{
		ID:          ToolHomebrew,
		DisplayName: "Homebrew",
		Binaries:    []string{"brew"},
		Required:    true,
		VersionArgs: [][]string{{"--version"}},
		Install:     InstallHomebrew,
	},
	{
		ID:          ToolPython,
		DisplayName: "Python 3",
		Binaries:    []string{"python3"},
		Package:     "python@3.12",
		VersionArgs: [][]string{{"--version"}},
		Install:     brewFormula("python@3.12"),
	},
	{
		ID:          ToolNode,
		DisplayName: "Node.js",
		Binaries:    []string{"node"},
		Package:     "node",
		VersionArgs: [][]string{{"--version"}},
		Install:     brewFormula("node"),
	},
	{
		ID:          ToolGit,
		DisplayName: "Git",
		Binaries:    []string{"git"},
		Package:     "git",
		Required:    true,
		VersionArgs: [][]string{{"--version"}},
		Install:     brewFormula("git"),
	},
	{
		ID:          ToolGitHubCLI,
		DisplayName: "GitHub CLI",
		Binaries:    []string{"gh"},
		Package:     "gh",
		AuthHint:    "run `gh auth login` to authenticate with GitHub",
		VersionArgs: [][]string{{"--version"}},
		Install:     brewFormula("gh"),
	},
	{
		ID:          ToolDocker,
		DisplayName: "Docker Desktop",
		Binaries:    []string{"docker"},
		AppBundle:   "/Applications/Docker.app",
		Package:     "docker",
		AuthHint:    "open Docker.app once to finish setup",
		VersionArgs: [][]string{{"--version"}},
		Install:     brewCask("docker"),
	},
	{
		ID:          ToolNeovim,
		DisplayName: "Neovim + LazyVim",
		Binaries:    []string{"nvim"},
		Package:     "neovim",
		VersionArgs: [][]string{{"--version"}},
		Install:     installNeovim,
	},
	{
		ID:          ToolGhostty,
		DisplayName: "Ghostty (from source)",
		Binaries:    []string{"ghostty"},
		AppBundle:   "/Applications/Ghostty.app",
		VersionArgs: [][]string{{"--version"}},
		Install:     installGhostty,
	},
	{
		ID:          ToolClaudeCode,
		DisplayName: "Claude Code (" + claudeCodePackage + ")",
		Binaries:    []string{"claude", "claude-code"},
		Package:     claudeCodePackage,
		AuthHint:    "run `claude` once to sign in",
		VersionArgs: [][]string{{"--version"}, {"-v"}},
		Install: func(ctx context.Context) error {
			return NpmInstallGlobal(ctx, claudeCodePackage)
		},
	},
	{
		ID:          ToolClaudeDesktop,
		DisplayName: "Claude Desktop",
		AppBundle:   "/Applications/Claude.app",
		Package:     "claude",
		AuthHint:    "open Claude.app and sign in",
		Install:     brewCask("claude"),
	},
}

// ByID looks a tool up in the declared table.
func ByID(id ToolID) (ToolSpec, bool) {
	for _, t := range Tools {
		if t.ID == id {
			return t, true
		}
	}
	return ToolSpec{}, false
}

func brewFormula(name string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return BrewInstall(ctx, name, false)
	}
}

func brewCask(name string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return BrewInstall(ctx, name, true)
	}
}

// installNeovim installs the editor via brew, then seeds the LazyVim starter
// config when no nvim config exists yet. An existing config is never touched.
func installNeovim(ctx context.Context) error {
	if err := BrewInstall(ctx, "neovim", false); err != nil {
		return err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	nvimDir := filepath.Join(home, ".config", "nvim")
	if _, err := os.Stat(nvimDir); err == nil {
		return nil
	}
	if err := GitClone(ctx, lazyVimStarterRepo, nvimDir); err != nil {
		return err
	}
	// The starter's git history should not shadow the user's own dotfiles repo.
	return os.RemoveAll(filepath.Join(nvimDir, ".git"))
}

// installGhostty builds the terminal from source and copies the app bundle
// into /Applications with elevated privileges.
func installGhostty(ctx context.Context) error {
	build := SourceBuild{
		Name: "ghostty",
		Dir:  filepath.Join(os.TempDir(), "devup-ghostty-build"),
		Fetch: func(ctx context.Context, dir string) error {
			return GitClone(ctx, ghosttyRepo, dir)
		},
		Build: func(ctx context.Context, dir string) error {
			if !HasBin("zig") {
				if err := BrewInstall(ctx, "zig", false); err != nil {
					return fmt.Errorf("zig toolchain: %w", err)
				}
			}
			cmd := buildCmd(ctx, dir, "zig", "build", "-Doptimize=ReleaseFast")
			return cmd.Run()
		},
		Deploy: func(ctx context.Context, dir string) error {
			bundle := filepath.Join(dir, "zig-out", "Ghostty.app")
			return runVisible(ctx, "sudo", "cp", "-R", bundle, "/Applications/")
		},
	}
	return build.Run(ctx)
}
