package ghclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v30/github"
	"golang.org/x/oauth2"

	"github.com/todohawk/todohawk/internal/issues"
)

// Client wraps the GitHub API for one owner/repo pair: contents reads for
// tree scanning, plus issue search and creation for reconciliation.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// DirEntry is one item of a contents-API directory listing.
type DirEntry struct {
	Name string
	Dir  bool
}

// New builds a client for owner/repo. An empty token yields an
// unauthenticated client (fine for public-repo reads, not for writes).
func New(ctx context.Context, token, owner, repo string) *Client {
	c := &Client{owner: owner, repo: repo}
	if token == "" {
		c.gh = github.NewClient(nil)
		return c
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	c.gh = github.NewClient(oauth2.NewClient(ctx, ts))
	return c
}

// WithBaseURL overrides the API base URL (useful for tests or GH Enterprise).
func (c *Client) WithBaseURL(base string) (*Client, error) {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("base url %q: %w", base, err)
	}
	c.gh.BaseURL = u
	return c, nil
}

// ListDirectory lists dir at ref through the contents API, in API order.
func (c *Client) ListDirectory(ctx context.Context, dir, ref string) ([]DirEntry, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	_, contents, _, err := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, dir, opts)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", dir, err)
	}
	if contents == nil {
		return nil, fmt.Errorf("list %q: not a directory", dir)
	}
	out := make([]DirEntry, 0, len(contents))
	for _, item := range contents {
		out = append(out, DirEntry{Name: item.GetName(), Dir: item.GetType() == "dir"})
	}
	return out, nil
}

// GetFileContent fetches and decodes one file at ref.
func (c *Client) GetFileContent(ctx context.Context, path, ref string) ([]byte, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	file, _, _, err := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", path, err)
	}
	if file == nil {
		return nil, fmt.Errorf("fetch %q: not a file", path)
	}
	s, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return []byte(s), nil
}

// SearchIssues runs an issue search scoped to the bound repository and
// returns the first page. The text is quoted as a single phrase; interior
// quotes are dropped because the search syntax cannot escape them.
func (c *Client) SearchIssues(ctx context.Context, text string) ([]issues.TrackedIssue, error) {
	query := fmt.Sprintf(`"%s" repo:%s/%s in:title,body is:issue`,
		strings.ReplaceAll(text, `"`, " "), c.owner, c.repo)
	res, _, err := c.gh.Search.Issues(ctx, query, &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 30},
	})
	if err != nil {
		return nil, fmt.Errorf("search issues: %w", err)
	}
	out := make([]issues.TrackedIssue, 0, len(res.Issues))
	for i := range res.Issues {
		is := res.Issues[i]
		ti := issues.TrackedIssue{
			Number: is.GetNumber(),
			Title:  is.GetTitle(),
			Body:   is.GetBody(),
		}
		for j := range is.Labels {
			ti.Labels = append(ti.Labels, is.Labels[j].GetName())
		}
		out = append(out, ti)
	}
	return out, nil
}

// CreateIssue opens a new issue from the draft and returns its number.
func (c *Client) CreateIssue(ctx context.Context, draft issues.IssueDraft) (int, error) {
	req := &github.IssueRequest{
		Title: github.String(draft.Title),
		Body:  github.String(draft.Body),
	}
	if len(draft.Labels) > 0 {
		labels := append([]string(nil), draft.Labels...)
		req.Labels = &labels
	}
	if draft.Assignee != "" {
		req.Assignee = github.String(draft.Assignee)
	}
	created, _, err := c.gh.Issues.Create(ctx, c.owner, c.repo, req)
	if err != nil {
		return 0, fmt.Errorf("create issue: %w", err)
	}
	return created.GetNumber(), nil
}
