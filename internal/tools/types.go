package tools

import "context"

// Tool identifiers and metadata
type ToolID string

const (
	ToolHomebrew      ToolID = "homebrew"
	ToolPython        ToolID = "python"
	ToolNode          ToolID = "node"
	ToolGit           ToolID = "git"
	ToolGitHubCLI     ToolID = "gh"
	ToolDocker        ToolID = "docker"
	ToolNeovim        ToolID = "neovim"
	ToolGhostty       ToolID = "ghostty"
	ToolClaudeCode    ToolID = "claude"
	ToolClaudeDesktop ToolID = "claude-desktop"
)

// ToolSpec describes one installable capability: how to probe for it and how
// to install it when absent. The table in registry.go is immutable during a
// run; the settings file can disable entries or flip Required.
type ToolSpec struct {
	ID          ToolID
	DisplayName string
	Binaries    []string // candidate binary names in PATH
	AppBundle   string   // absolute path probe for GUI applications
	Package     string   // brew formula/cask or npm package backing the install
	Required    bool
	AuthHint    string // non-empty: tool may need interactive login once present
	VersionArgs [][]string
	Install     func(ctx context.Context) error
}

// InstallStatus is the outcome of one EnsureInstalled pass for a tool.
type InstallStatus string

const (
	StatusAlreadyPresent InstallStatus = "already-present"
	StatusInstalled      InstallStatus = "installed"
	StatusFailed         InstallStatus = "failed"
)

// InstallationRecord is appended for every processed ToolSpec and read by the
// reporter. Records live only for the duration of one run.
type InstallationRecord struct {
	ID          ToolID
	DisplayName string
	Path        string // resolved path, "" when not found
	Status      InstallStatus
	Err         string
	Required    bool
}

// CheckResult is a probe outcome enriched with version info for display.
type CheckResult struct {
	Installed bool
	Path      string
	Version   string
	Source    string // which probe produced the hit (binary name or app bundle)
}
