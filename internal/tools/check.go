package tools

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Probe tests whether a tool is currently present. Binaries are resolved on
// PATH; GUI applications fall back to a fixed app-bundle path. Probing never
// mutates state and absence is a normal outcome, not an error.
func Probe(t ToolSpec) (path string, found bool) {
	for _, bin := range t.Binaries {
		if p, err := exec.LookPath(bin); err == nil {
			return p, true
		}
	}
	if t.AppBundle != "" {
		if _, err := os.Stat(t.AppBundle); err == nil {
			return t.AppBundle, true
		}
	}
	return "", false
}

// Inspect probes a tool and, when found via PATH, asks it for a version
// string. Used by status listings; the installer itself only needs Probe.
func Inspect(t ToolSpec) CheckResult {
	for _, bin := range t.Binaries {
		path, err := exec.LookPath(bin)
		if err != nil {
			continue
		}
		for _, args := range t.VersionArgs {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			out, err := runCmd(ctx, path, args...)
			cancel()
			if err == nil && strings.TrimSpace(out) != "" {
				ver := ParseVersion(out)
				if ver == "" {
					ver = strings.Split(strings.TrimSpace(out), "\n")[0]
				}
				return CheckResult{Installed: true, Path: path, Version: ver, Source: bin}
			}
		}
		// Found binary but no version output; still consider installed
		return CheckResult{Installed: true, Path: path, Source: bin}
	}
	if t.AppBundle != "" {
		if _, err := os.Stat(t.AppBundle); err == nil {
			return CheckResult{Installed: true, Path: t.AppBundle, Source: "app bundle"}
		}
	}
	// Fallback for npm-backed tools whose bin link is not on PATH yet.
	if strings.HasPrefix(t.Package, "@") {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if ver, err := NpmGlobalVersion(ctx, t.Package); err == nil && ver != "" {
			return CheckResult{Installed: true, Version: ver, Source: "npm -g"}
		}
	}
	return CheckResult{}
}
