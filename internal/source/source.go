package source

import "context"

// Entry is one name in a directory listing.
type Entry struct {
	Name string
	Dir  bool
}

// Tree provides read access to one snapshot of a source tree. All reads from
// a Tree observe the ref it was constructed with, so a scan never mixes
// content from two commits.
type Tree interface {
	// List returns the entries of dir in listing order. The empty string
	// addresses the root.
	List(ctx context.Context, dir string) ([]Entry, error)

	// Fetch returns the full content of the file at path.
	Fetch(ctx context.Context, path string) ([]byte, error)

	// Ref identifies the snapshot: a commit SHA, a ref name, or "worktree"
	// for an unversioned local directory.
	Ref() string
}
