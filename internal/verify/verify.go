// Package verify re-probes the environment after an install run and turns
// the outcome into an advisory report. Verification never escalates to a
// non-zero process exit; failures are reported, not thrown.
package verify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"devup/internal/tools"
)

// State classifies one verified item.
type State string

const (
	StateOk      State = "ok"
	StateMissing State = "missing"
	StateWarning State = "warning"
)

// Entry is one line of the verification report.
type Entry struct {
	Name   string
	State  State
	Path   string
	Detail string
}

// Report is the full verification outcome. Errors counts hard failures,
// Warnings the soft advisory ones; the two never overlap.
type Report struct {
	Entries  []Entry
	Errors   int
	Warnings int
}

// runtimeCheck probes an installed language runtime for a capability by
// running a short inline check and inspecting its exit status.
type runtimeCheck struct {
	Name string
	Bin  string
	Args []string
}

var runtimeChecks = []runtimeCheck{
	{Name: "python3 venv module", Bin: "python3", Args: []string{"-c", "import venv"}},
	{Name: "pip3", Bin: "pip3", Args: []string{"--version"}},
	{Name: "node eval", Bin: "node", Args: []string{"-e", "process.exit(0)"}},
	{Name: "npm", Bin: "npm", Args: []string{"--version"}},
}

// Run verifies every spec plus the runtime capability checks. isRequired
// resolves each tool's hard/soft classification (settings override included).
func Run(ctx context.Context, specs []tools.ToolSpec, isRequired func(tools.ToolSpec) bool) Report {
	entries := ToolEntries(specs, isRequired)
	entries = append(entries, runtimeEntries(ctx)...)
	return Tally(entries)
}

// ToolEntries re-probes each tool. A missing tool is always StateMissing; a
// present tool with a declared auth hint is StateWarning, never inferred
// from the tool's own output.
func ToolEntries(specs []tools.ToolSpec, isRequired func(tools.ToolSpec) bool) []Entry {
	entries := make([]Entry, 0, len(specs))
	for _, t := range specs {
		path, found := tools.Probe(t)
		switch {
		case !found && isRequired(t):
			entries = append(entries, Entry{Name: t.DisplayName, State: StateMissing, Detail: "not installed"})
		case !found:
			entries = append(entries, Entry{Name: t.DisplayName, State: StateWarning, Detail: "not installed (optional)"})
		case t.AuthHint != "":
			entries = append(entries, Entry{Name: t.DisplayName, State: StateWarning, Path: path, Detail: t.AuthHint})
		default:
			entries = append(entries, Entry{Name: t.DisplayName, State: StateOk, Path: path})
		}
	}
	return entries
}

func runtimeEntries(ctx context.Context) []Entry {
	entries := make([]Entry, 0, len(runtimeChecks))
	for _, c := range runtimeChecks {
		path, err := exec.LookPath(c.Bin)
		if err != nil {
			// The missing runtime is already reported at the tool level.
			continue
		}
		cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		cmd := exec.CommandContext(cctx, path, c.Args...)
		out, err := cmd.CombinedOutput()
		cancel()
		if err != nil {
			detail := strings.TrimSpace(string(out))
			if detail == "" {
				detail = err.Error()
			}
			entries = append(entries, Entry{Name: c.Name, State: StateMissing, Path: path, Detail: fmt.Sprintf("check failed: %s", detail)})
			continue
		}
		entries = append(entries, Entry{Name: c.Name, State: StateOk, Path: path})
	}
	return entries
}

// Tally builds a Report from entries, counting Missing as errors and
// Warning as warnings.
func Tally(entries []Entry) Report {
	rep := Report{Entries: entries}
	for _, e := range entries {
		switch e.State {
		case StateMissing:
			rep.Errors++
		case StateWarning:
			rep.Warnings++
		}
	}
	return rep
}
