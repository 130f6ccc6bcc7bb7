package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// LocalTree reads a working tree on disk. The ref is resolved once at
// construction: the HEAD commit when root sits inside a git repository,
// otherwise "worktree".
type LocalTree struct {
	root string
	ref  string
}

// NewLocalTree roots a tree at dir.
func NewLocalTree(dir string) (*LocalTree, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open %q: not a directory", dir)
	}
	return &LocalTree{root: abs, ref: resolveHead(abs)}, nil
}

// resolveHead returns the HEAD commit SHA, or "worktree" when root is not
// inside a repository (or HEAD is unborn).
func resolveHead(root string) string {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "worktree"
	}
	head, err := repo.Head()
	if err != nil {
		return "worktree"
	}
	return head.Hash().String()
}

// List returns the directory entries in os.ReadDir order (sorted by name),
// which keeps repeated scans deterministic.
func (t *LocalTree) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(t.root, filepath.FromSlash(dir)))
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{Name: e.Name(), Dir: e.IsDir()})
	}
	return out, nil
}

func (t *LocalTree) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(t.root, filepath.FromSlash(path)))
}

func (t *LocalTree) Ref() string { return t.ref }
