// Package report renders the human-readable end-of-run summary: one line per
// tool with its resolved path, counters, and remediation hints keyed to the
// failures actually observed.
package report

import (
	"fmt"
	"strings"

	"devup/internal/installer"
	"devup/internal/tools"
	"devup/internal/verify"
)

// RenderRecords formats the installer's records.
func RenderRecords(records []tools.InstallationRecord) string {
	var b strings.Builder
	b.WriteString(headStyle.Render("Install summary"))
	b.WriteString("\n")
	for _, r := range records {
		switch r.Status {
		case tools.StatusAlreadyPresent:
			fmt.Fprintf(&b, "  %s %s %s\n", okStyle.Render("•"), r.DisplayName, mutedStyle.Render(r.Path))
		case tools.StatusInstalled:
			fmt.Fprintf(&b, "  %s %s %s\n", okStyle.Render("✓"), r.DisplayName, mutedStyle.Render(r.Path))
		case tools.StatusFailed:
			fmt.Fprintf(&b, "  %s %s %s\n", errStyle.Render("×"), r.DisplayName, mutedStyle.Render(r.Err))
		}
	}
	if n := installer.Failures(records); n > 0 {
		fmt.Fprintf(&b, "\n%s\n", errStyle.Render(fmt.Sprintf("%d tool(s) failed to install", n)))
	}
	return b.String()
}

// RenderReport formats a verification report.
func RenderReport(rep verify.Report) string {
	var b strings.Builder
	b.WriteString(headStyle.Render("Verification"))
	b.WriteString("\n")
	for _, e := range rep.Entries {
		switch e.State {
		case verify.StateOk:
			fmt.Fprintf(&b, "  %s %s %s\n", okStyle.Render("ok  "), e.Name, mutedStyle.Render(e.Path))
		case verify.StateWarning:
			fmt.Fprintf(&b, "  %s %s %s\n", warnStyle.Render("warn"), e.Name, mutedStyle.Render(e.Detail))
		case verify.StateMissing:
			fmt.Fprintf(&b, "  %s %s %s\n", errStyle.Render("miss"), e.Name, mutedStyle.Render(e.Detail))
		}
	}
	fmt.Fprintf(&b, "\n%d error(s), %d warning(s)\n", rep.Errors, rep.Warnings)
	return b.String()
}

// Hints returns remediation hints keyed to the specific failures observed.
// An empty slice means nothing needs attention.
func Hints(records []tools.InstallationRecord, rep verify.Report) []string {
	var hints []string

	// PATH hint only when brew itself is unreachable after an install run;
	// a bare verify has no install records and never raises it.
	if len(records) > 0 {
		if _, ok := tools.BrewBinary(); !ok {
			hints = append(hints, fmt.Sprintf("Homebrew is not reachable; ensure %s/bin is on PATH and restart the shell.", tools.BrewPrefix()))
		}
	}
	for _, r := range records {
		if r.Status != tools.StatusFailed {
			continue
		}
		switch r.ID {
		case tools.ToolGhostty:
			hints = append(hints, "Ghostty build failed; re-run after checking the build output, the scratch directory is cleaned automatically.")
		case tools.ToolClaudeCode:
			hints = append(hints, "Claude Code install failed; verify npm works (`npm ping`) and retry.")
		default:
			hints = append(hints, fmt.Sprintf("%s failed to install; re-run devup after fixing the error above.", r.DisplayName))
		}
	}
	for _, e := range rep.Entries {
		if e.State == verify.StateWarning && e.Detail != "" && !strings.HasPrefix(e.Detail, "not installed") {
			hints = append(hints, fmt.Sprintf("%s: %s", e.Name, e.Detail))
		}
	}
	return hints
}

// RenderHints formats hints, or an all-clear line when there are none.
func RenderHints(hints []string) string {
	if len(hints) == 0 {
		return okStyle.Render("Everything checks out.") + "\n"
	}
	var b strings.Builder
	b.WriteString(headStyle.Render("Next steps"))
	b.WriteString("\n")
	for _, h := range hints {
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("→"), h)
	}
	return b.String()
}
