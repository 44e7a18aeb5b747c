package report

import (
	"strings"
	"testing"

	"devup/internal/tools"
	"devup/internal/verify"
)

func TestRenderRecords_ListsEveryTool(t *testing.T) {
	records := []tools.InstallationRecord{
		{ID: "a", DisplayName: "Tool A", Path: "/usr/bin/a", Status: tools.StatusAlreadyPresent},
		{ID: "b", DisplayName: "Tool B", Path: "/usr/bin/b", Status: tools.StatusInstalled},
		{ID: "c", DisplayName: "Tool C", Status: tools.StatusFailed, Err: "boom"},
	}
	out := RenderRecords(records)
	for _, want := range []string{"Tool A", "/usr/bin/a", "Tool B", "Tool C", "boom", "1 tool(s) failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReport_Counters(t *testing.T) {
	rep := verify.Tally([]verify.Entry{
		{Name: "x", State: verify.StateMissing, Detail: "not installed"},
		{Name: "y", State: verify.StateWarning, Detail: "log in"},
		{Name: "z", State: verify.StateOk, Path: "/bin/z"},
	})
	out := RenderReport(rep)
	if !strings.Contains(out, "1 error(s), 1 warning(s)") {
		t.Fatalf("counter line wrong:\n%s", out)
	}
}

func TestHints_KeyedToFailures(t *testing.T) {
	records := []tools.InstallationRecord{
		{ID: tools.ToolGhostty, DisplayName: "Ghostty (from source)", Status: tools.StatusFailed, Err: "zig build failed"},
	}
	hints := Hints(records, verify.Report{})
	found := false
	for _, h := range hints {
		if strings.Contains(h, "Ghostty") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no ghostty hint in %v", hints)
	}
}

func TestHints_WarningDetailsSurface(t *testing.T) {
	rep := verify.Tally([]verify.Entry{
		{Name: "GitHub CLI", State: verify.StateWarning, Detail: "run `gh auth login` to authenticate with GitHub"},
	})
	hints := Hints(nil, rep)
	found := false
	for _, h := range hints {
		if strings.Contains(h, "gh auth login") {
			found = true
		}
	}
	if !found {
		t.Fatalf("auth warning not surfaced in hints: %v", hints)
	}
}

func TestHints_NoBrewPathHintWithoutInstallRecords(t *testing.T) {
	// Verification alone never raises the Homebrew PATH hint, regardless of
	// whether brew is reachable on this machine.
	hints := Hints(nil, verify.Report{})
	for _, h := range hints {
		if strings.Contains(h, "PATH") {
			t.Fatalf("PATH hint raised without an install run: %v", hints)
		}
	}
}

func TestRenderHints_Empty(t *testing.T) {
	out := RenderHints(nil)
	if !strings.Contains(out, "Everything checks out.") {
		t.Fatalf("unexpected all-clear output: %q", out)
	}
}
