// Package installer runs the sequential skip/install/fail loop over the
// declared tool table. Execution is strictly single-threaded; each install
// action blocks until its external process finishes.
package installer

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"devup/internal/system"
	"devup/internal/tools"
)

// goos is swapped in tests to simulate an unsupported platform.
var goos = runtime.GOOS

// lookPath is swapped in tests to simulate missing prerequisites.
var lookPath = exec.LookPath

var (
	ErrUnsupportedOS = errors.New("devup only supports macOS")
	ErrMissingPrereq = errors.New("missing required prerequisite")
)

// hardPrereqs must resolve on PATH before any tool is processed. They ship
// with the Xcode command line tools, so their absence means the machine is
// not ready for any install action.
var hardPrereqs = []string{"curl", "git"}

// CheckPreconditions verifies the fatal preconditions. A violation aborts
// the run before any side effect.
func CheckPreconditions() error {
	if goos != "darwin" {
		return fmt.Errorf("%w (running on %s)", ErrUnsupportedOS, goos)
	}
	for _, bin := range hardPrereqs {
		if _, err := lookPath(bin); err != nil {
			return fmt.Errorf("%w: %s not found on PATH", ErrMissingPrereq, bin)
		}
	}
	return nil
}

// EnsureInstalled converges one tool. A tool found by the probe is never
// re-installed; otherwise the install action runs and a re-probe decides
// between Installed and Failed. Failures are recorded, not returned: one
// broken optional tool must not stop the tools after it.
func EnsureInstalled(ctx context.Context, t tools.ToolSpec) tools.InstallationRecord {
	rec := tools.InstallationRecord{ID: t.ID, DisplayName: t.DisplayName, Required: t.Required}

	if path, found := tools.Probe(t); found {
		rec.Status = tools.StatusAlreadyPresent
		rec.Path = path
		system.Logger.Debug("already present", "tool", t.ID, "path", path)
		return rec
	}

	system.Logger.Info("installing", "tool", t.ID)
	if err := t.Install(ctx); err != nil {
		rec.Status = tools.StatusFailed
		rec.Err = err.Error()
		system.Logger.Error("install failed", "tool", t.ID, "err", err)
		return rec
	}

	if path, found := tools.Probe(t); found {
		rec.Status = tools.StatusInstalled
		rec.Path = path
		system.Logger.Info("installed", "tool", t.ID, "path", path)
		return rec
	}
	rec.Status = tools.StatusFailed
	rec.Err = "still not found after install"
	system.Logger.Error("install did not converge", "tool", t.ID)
	return rec
}

// Run processes specs in declared order and returns one record per spec.
func Run(ctx context.Context, specs []tools.ToolSpec) []tools.InstallationRecord {
	records := make([]tools.InstallationRecord, 0, len(specs))
	for i, t := range specs {
		fmt.Printf("[%d/%d] %s\n", i+1, len(specs), t.DisplayName)
		rec := EnsureInstalled(ctx, t)
		switch rec.Status {
		case tools.StatusAlreadyPresent:
			fmt.Printf("  • already present (%s)\n", rec.Path)
		case tools.StatusInstalled:
			fmt.Printf("  ✓ installed → %s\n", rec.Path)
		case tools.StatusFailed:
			fmt.Printf("  × failed: %s\n", rec.Err)
		}
		records = append(records, rec)
	}
	return records
}

// Failures counts failed records.
func Failures(records []tools.InstallationRecord) int {
	n := 0
	for _, r := range records {
		if r.Status == tools.StatusFailed {
			n++
		}
	}
	return n
}
