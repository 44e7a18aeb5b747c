package settings

import (
	"testing"

	tu "devup/internal/testutil"
	"devup/internal/tools"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)() // fallback

	st, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if st.Workspace == "" {
		t.Fatalf("expected default workspace")
	}
	if len(st.Disabled) != 0 {
		t.Fatalf("expected no disabled tools, got %v", st.Disabled)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	in := Settings{
		Workspace: "/work/space",
		Disabled:  []string{"docker", "docker", " ", "ghostty"},
		Required:  map[string]bool{"gh": true, "python": false},
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	st, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if st.Workspace != "/work/space" {
		t.Fatalf("workspace = %q", st.Workspace)
	}
	// normalized: deduped, trimmed, sorted
	if len(st.Disabled) != 2 || st.Disabled[0] != "docker" || st.Disabled[1] != "ghostty" {
		t.Fatalf("disabled = %v", st.Disabled)
	}
}

func TestEnabledAndSelect(t *testing.T) {
	st := Settings{Disabled: []string{"docker"}}
	if st.Enabled(tools.ToolDocker) {
		t.Fatalf("docker should be disabled")
	}
	if !st.Enabled(tools.ToolNeovim) {
		t.Fatalf("neovim should be enabled")
	}
	sel := st.Select(tools.Tools)
	if len(sel) != len(tools.Tools)-1 {
		t.Fatalf("Select kept %d of %d, want one fewer", len(sel), len(tools.Tools))
	}
	for _, s := range sel {
		if s.ID == tools.ToolDocker {
			t.Fatalf("disabled tool survived Select")
		}
	}
}

func TestIsRequired_SettingsOverrideWins(t *testing.T) {
	spec, ok := tools.ByID(tools.ToolGitHubCLI)
	if !ok {
		t.Fatalf("gh not in registry")
	}
	if spec.Required {
		t.Fatalf("test assumes gh is optional by default")
	}

	st := Settings{Required: map[string]bool{"gh": true}}
	if !st.IsRequired(spec) {
		t.Fatalf("override to required ignored")
	}
	st = Settings{}
	if st.IsRequired(spec) {
		t.Fatalf("registry default not honored")
	}

	brew, _ := tools.ByID(tools.ToolHomebrew)
	st = Settings{Required: map[string]bool{"homebrew": false}}
	if st.IsRequired(brew) {
		t.Fatalf("override to optional ignored")
	}
}
