package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// SourceBuild describes a build-from-source install: fetch a repository into
// a scratch directory, compile, then copy the result to its destination.
// The scratch directory is removed on both success and failure, and any
// stale directory from an aborted earlier run is removed before fetching.
type SourceBuild struct {
	Name string
	Dir  string // scratch working directory, removed unconditionally

	Fetch  func(ctx context.Context, dir string) error
	Build  func(ctx context.Context, dir string) error
	Deploy func(ctx context.Context, dir string) error
}

// Run executes the fetch/build/deploy sequence with scratch-dir hygiene.
func (s SourceBuild) Run(ctx context.Context) (err error) {
	if s.Dir == "" {
		return fmt.Errorf("%s: empty build dir", s.Name)
	}
	// A partial clone from a previous run would make fetch fail; start clean.
	if err := os.RemoveAll(s.Dir); err != nil {
		return fmt.Errorf("%s: clean stale build dir: %w", s.Name, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Dir), 0o755); err != nil {
		return fmt.Errorf("%s: create build parent dir: %w", s.Name, err)
	}
	defer func() {
		if rmErr := os.RemoveAll(s.Dir); rmErr != nil && err == nil {
			err = fmt.Errorf("%s: clean build dir: %w", s.Name, rmErr)
		}
	}()

	if err := s.Fetch(ctx, s.Dir); err != nil {
		return fmt.Errorf("%s: fetch: %w", s.Name, err)
	}
	if err := s.Build(ctx, s.Dir); err != nil {
		return fmt.Errorf("%s: build: %w", s.Name, err)
	}
	if err := s.Deploy(ctx, s.Dir); err != nil {
		return fmt.Errorf("%s: deploy: %w", s.Name, err)
	}
	return nil
}

// GitClone performs a shallow clone of repo into dir.
func GitClone(ctx context.Context, repo, dir string) error {
	if err := runVisible(ctx, "git", "clone", "--depth=1", repo, dir); err != nil {
		return fmt.Errorf("git clone %s: %w", repo, err)
	}
	return nil
}
