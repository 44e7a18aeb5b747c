package tools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func noop(ctx context.Context, dir string) error { return nil }

func TestSourceBuild_CleansUpOnSuccess(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	b := SourceBuild{
		Name: "demo",
		Dir:  dir,
		Fetch: func(ctx context.Context, d string) error {
			return os.MkdirAll(d, 0o755)
		},
		Build:  noop,
		Deploy: noop,
	}
	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("build dir not cleaned up after success")
	}
}

func TestSourceBuild_CleansUpOnFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	b := SourceBuild{
		Name: "demo",
		Dir:  dir,
		Fetch: func(ctx context.Context, d string) error {
			return os.MkdirAll(d, 0o755)
		},
		Build: func(ctx context.Context, d string) error {
			return errors.New("compile exploded")
		},
		Deploy: noop,
	}
	err := b.Run(context.Background())
	if err == nil {
		t.Fatalf("expected build failure")
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Fatalf("build dir left behind after failure")
	}
}

func TestSourceBuild_RemovesStaleDirBeforeFetch(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	// Simulate a partial clone left by an aborted earlier run.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("seed: %v", err)
	}
	stale := filepath.Join(dir, "partial")
	if err := os.WriteFile(stale, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	b := SourceBuild{
		Name: "demo",
		Dir:  dir,
		Fetch: func(ctx context.Context, d string) error {
			if _, err := os.Stat(stale); !os.IsNotExist(err) {
				t.Fatalf("stale content survived into fetch")
			}
			return os.MkdirAll(d, 0o755)
		},
		Build:  noop,
		Deploy: noop,
	}
	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
}

func TestSourceBuild_EmptyDir(t *testing.T) {
	b := SourceBuild{Name: "demo", Fetch: noop, Build: noop, Deploy: noop}
	if err := b.Run(context.Background()); err == nil {
		t.Fatalf("expected error for empty build dir")
	}
}
