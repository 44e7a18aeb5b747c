package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendOnce_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, ".zprofile")
	frag := Fragment{Marker: "# devup: local bin", Block: "# devup: local bin\nexport PATH=\"$HOME/.local/bin:$PATH\""}

	changed, err := AppendOnce(target, frag)
	if err != nil {
		t.Fatalf("AppendOnce error: %v", err)
	}
	if !changed {
		t.Fatalf("expected first append to change the file")
	}
	first, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}

	// Second run is a no-op and leaves identical content.
	changed, err = AppendOnce(target, frag)
	if err != nil {
		t.Fatalf("AppendOnce error: %v", err)
	}
	if changed {
		t.Fatalf("expected second append to be a no-op")
	}
	second, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("content changed across runs:\nfirst: %q\nsecond: %q", first, second)
	}
	if n := strings.Count(string(second), frag.Marker); n != 1 {
		t.Fatalf("marker occurs %d times, want 1", n)
	}
}

func TestAppendOnce_BackupExactlyOnce(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, ".zprofile")
	original := "# pre-existing content\n"
	if err := os.WriteFile(target, []byte(original), 0o644); err != nil {
		t.Fatalf("seed target: %v", err)
	}

	if _, err := AppendOnce(target, Fragment{Marker: "# m1", Block: "# m1\nexport A=1"}); err != nil {
		t.Fatalf("AppendOnce error: %v", err)
	}
	bak := BackupPath(target)
	got, err := os.ReadFile(bak)
	if err != nil {
		t.Fatalf("backup not created: %v", err)
	}
	if string(got) != original {
		t.Fatalf("backup content = %q, want pre-mutation content %q", got, original)
	}

	// A later mutation must not overwrite the existing backup.
	if _, err := AppendOnce(target, Fragment{Marker: "# m2", Block: "# m2\nexport B=2"}); err != nil {
		t.Fatalf("AppendOnce error: %v", err)
	}
	got, err = os.ReadFile(bak)
	if err != nil {
		t.Fatalf("backup missing after second mutation: %v", err)
	}
	if string(got) != original {
		t.Fatalf("backup was overwritten: %q", got)
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	baks := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), BackupSuffix) {
			baks++
		}
	}
	if baks != 1 {
		t.Fatalf("found %d backup files, want exactly 1", baks)
	}
}

func TestAppendOnce_BackupForExistingEmptyFile(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, ".zprofile")
	// An empty profile file still exists; mutating it must leave a backup.
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatalf("seed target: %v", err)
	}

	changed, err := AppendOnce(target, Fragment{Marker: "# m", Block: "# m\nexport A=1"})
	if err != nil {
		t.Fatalf("AppendOnce error: %v", err)
	}
	if !changed {
		t.Fatalf("expected append to change the file")
	}
	got, err := os.ReadFile(BackupPath(target))
	if err != nil {
		t.Fatalf("pre-existing file mutated but no backup created: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("backup content = %q, want the empty pre-mutation content", got)
	}

	// A file that never existed gets no backup: nothing to preserve.
	fresh := filepath.Join(tmp, ".zshrc")
	if _, err := AppendOnce(fresh, Fragment{Marker: "# m", Block: "# m"}); err != nil {
		t.Fatalf("AppendOnce error: %v", err)
	}
	if _, err := os.Stat(BackupPath(fresh)); !os.IsNotExist(err) {
		t.Fatalf("backup created for a file that did not exist")
	}
}

func TestAppendOnce_CreatesParentDir(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "dir", "profile")
	if _, err := AppendOnce(target, Fragment{Marker: "# m", Block: "# m"}); err != nil {
		t.Fatalf("AppendOnce error: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("target not created: %v", err)
	}
}

func TestAppendOnce_EmptyMarker(t *testing.T) {
	tmp := t.TempDir()
	if _, err := AppendOnce(filepath.Join(tmp, "p"), Fragment{Block: "x"}); err == nil {
		t.Fatalf("expected error for empty marker")
	}
}

func TestAppendAll_CountsAndConverges(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, ".zprofile")
	frags := Fragments("/opt/homebrew")

	changed, err := AppendAll(target, frags)
	if err != nil {
		t.Fatalf("AppendAll error: %v", err)
	}
	if changed != len(frags) {
		t.Fatalf("changed = %d, want %d", changed, len(frags))
	}
	first, _ := os.ReadFile(target)

	changed, err = AppendAll(target, frags)
	if err != nil {
		t.Fatalf("AppendAll error: %v", err)
	}
	if changed != 0 {
		t.Fatalf("second run changed %d fragments, want 0", changed)
	}
	second, _ := os.ReadFile(target)
	if string(first) != string(second) {
		t.Fatalf("profile not stable across runs")
	}
}
