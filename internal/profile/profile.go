// Package profile mutates shell startup files idempotently. A fragment is
// appended only when its marker line is absent, and the first mutation of a
// file creates a one-time backup alongside it.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BackupSuffix is appended to a profile file's name for its pre-mutation copy.
const BackupSuffix = ".devup.bak"

// Fragment is one idempotent profile mutation. Marker is the line used for
// duplicate detection; Block is the full content appended when absent.
type Fragment struct {
	Marker string
	Block  string
}

// DefaultProfile returns the login-shell profile devup appends to.
// zsh has been the macOS default shell since Catalina.
func DefaultProfile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", errors.New("cannot determine user home directory")
	}
	return filepath.Join(home, ".zprofile"), nil
}

// AppendOnce appends frag.Block to target unless frag.Marker already occurs
// in the file. The parent directory is created when missing. Before the file
// is first mutated a backup copy is written next to it; an existing backup is
// never overwritten, so exactly one backup survives any number of runs.
// Returns true when the file was changed.
func AppendOnce(target string, frag Fragment) (bool, error) {
	if strings.TrimSpace(frag.Marker) == "" {
		return false, errors.New("empty fragment marker")
	}
	existing, err := os.ReadFile(target)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read %s: %w", target, err)
	}
	if strings.Contains(string(existing), frag.Marker) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, fmt.Errorf("create %s parent dir: %w", target, err)
	}
	// Any pre-existing file gets backed up before its first mutation, even an
	// empty one; only a file that did not exist at all has nothing to preserve.
	if exists {
		if err := backupOnce(target, existing); err != nil {
			return false, err
		}
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", target, err)
	}
	defer f.Close()

	block := frag.Block
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	// Keep appended blocks separated from whatever the file ends with.
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		block = "\n" + block
	}
	if _, err := f.WriteString(block); err != nil {
		return false, fmt.Errorf("append to %s: %w", target, err)
	}
	return true, nil
}

// AppendAll applies fragments in order and reports how many changed the file.
func AppendAll(target string, frags []Fragment) (changed int, err error) {
	for _, frag := range frags {
		did, err := AppendOnce(target, frag)
		if err != nil {
			return changed, err
		}
		if did {
			changed++
		}
	}
	return changed, nil
}

// BackupPath returns the backup file path for a profile file.
func BackupPath(target string) string {
	return target + BackupSuffix
}

// backupOnce writes content to the backup path unless a backup already exists.
func backupOnce(target string, content []byte) error {
	bak := BackupPath(target)
	if _, err := os.Stat(bak); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", bak, err)
	}
	if err := os.WriteFile(bak, content, 0o644); err != nil {
		return fmt.Errorf("write backup %s: %w", bak, err)
	}
	return nil
}
