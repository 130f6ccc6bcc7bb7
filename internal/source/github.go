package source

import (
	"context"

	"github.com/todohawk/todohawk/internal/ghclient"
)

// GitHubTree reads a repository snapshot through the GitHub contents API.
// The same ref is passed on every call, so one scan never mixes commits.
type GitHubTree struct {
	client *ghclient.Client
	ref    string
}

// NewGitHubTree binds a contents client to a fixed ref. An empty ref means
// the repository's default branch.
func NewGitHubTree(client *ghclient.Client, ref string) *GitHubTree {
	return &GitHubTree{client: client, ref: ref}
}

func (t *GitHubTree) List(ctx context.Context, dir string) ([]Entry, error) {
	items, err := t.client.ListDirectory(ctx, dir, t.ref)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		out = append(out, Entry{Name: it.Name, Dir: it.Dir})
	}
	return out, nil
}

func (t *GitHubTree) Fetch(ctx context.Context, path string) ([]byte, error) {
	return t.client.GetFileContent(ctx, path, t.ref)
}

func (t *GitHubTree) Ref() string {
	if t.ref == "" {
		return "HEAD"
	}
	return t.ref
}
