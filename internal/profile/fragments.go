package profile

import "fmt"

// Fragments returns the profile blocks devup maintains. Each marker doubles
// as the duplicate-detection line, so re-running never stacks duplicates.
func Fragments(brewPrefix string) []Fragment {
	return []Fragment{
		{
			Marker: "# devup: homebrew",
			Block: fmt.Sprintf(`# devup: homebrew
eval "$(%s/bin/brew shellenv)"`, brewPrefix),
		},
		{
			Marker: "# devup: local bin",
			Block: `# devup: local bin
export PATH="$HOME/.local/bin:$PATH"`,
		},
		{
			Marker: "# devup: editor aliases",
			Block: `# devup: editor aliases
alias vim="nvim"
alias vi="nvim"
export EDITOR="nvim"`,
		},
		{
			Marker: "# devup: anthropic api key",
			Block: `# devup: anthropic api key
# Populate before using Claude Code non-interactively.
export ANTHROPIC_API_KEY="${ANTHROPIC_API_KEY:-}"`,
		},
	}
}
