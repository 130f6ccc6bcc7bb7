package issues

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todohawk/todohawk/internal/event"
	"github.com/todohawk/todohawk/internal/types"
)

// fakeTracker scripts search results per query and records created drafts.
type fakeTracker struct {
	results   map[string][]TrackedIssue
	searchErr map[string]error
	createErr error
	created   []IssueDraft
	queries   []string
	nextNum   int
}

func (f *fakeTracker) SearchIssues(_ context.Context, text string) ([]TrackedIssue, error) {
	f.queries = append(f.queries, text)
	if err := f.searchErr[text]; err != nil {
		return nil, err
	}
	return f.results[text], nil
}

func (f *fakeTracker) CreateIssue(_ context.Context, draft IssueDraft) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, draft)
	f.nextNum++
	return f.nextNum, nil
}

func testReconciler(tr *fakeTracker) Reconciler {
	return Reconciler{
		Tracker: tr,
		Trigger: event.PullRequest{Number: 9, Author: "octocat"},
		Labels:  []string{"todo"},
		Log:     zerolog.Nop(),
	}
}

func finding() types.Finding {
	return types.Finding{
		Path: "pkg/store/store.go",
		Line: 40,
		Text: "// TODO: evict stale entries",
		Kind: types.KindTODO,
	}
}

func TestReconcileLinksByBodyPath(t *testing.T) {
	f := finding()
	tr := &fakeTracker{results: map[string][]TrackedIssue{
		"// TODO: evict stale entries": {
			{Number: 3, Title: "unrelated", Body: "seen in pkg/store/store.go line 40"},
		},
	}}
	sum := testReconciler(tr).Reconcile(context.Background(), []types.Finding{f})

	assert.Equal(t, RunSummary{Linked: 1}, sum)
	assert.Empty(t, tr.created)
}

func TestReconcileLinksByTitleKeyword(t *testing.T) {
	f := finding()
	tr := &fakeTracker{results: map[string][]TrackedIssue{
		"// TODO: evict stale entries": {
			{Number: 4, Title: "Fix the TODO in the store", Body: "no matching body text"},
		},
	}}
	sum := testReconciler(tr).Reconcile(context.Background(), []types.Finding{f})
	assert.Equal(t, RunSummary{Linked: 1}, sum)
}

func TestReconcileLinksByPathSearch(t *testing.T) {
	// Step one finds nothing acceptable; step two searches by path and the
	// body carries the raw text.
	f := finding()
	tr := &fakeTracker{results: map[string][]TrackedIssue{
		"// TODO: evict stale entries": {
			{Number: 5, Title: "noise", Body: "nothing relevant"},
		},
		"pkg/store/store.go": {
			{Number: 6, Title: "noise", Body: "tracking // TODO: evict stale entries here"},
		},
	}}
	sum := testReconciler(tr).Reconcile(context.Background(), []types.Finding{f})

	assert.Equal(t, RunSummary{Linked: 1}, sum)
	require.Len(t, tr.queries, 2)
	assert.Equal(t, "// TODO: evict stale entries", tr.queries[0])
	assert.Equal(t, "pkg/store/store.go", tr.queries[1])
}

func TestReconcileCreatesWhenUnmatched(t *testing.T) {
	f := finding()
	tr := &fakeTracker{}
	sum := testReconciler(tr).Reconcile(context.Background(), []types.Finding{f})

	assert.Equal(t, RunSummary{Created: 1}, sum)
	require.Len(t, tr.created, 1)
	d := tr.created[0]
	assert.Equal(t, "TODO: evict stale entries", d.Title)
	assert.Contains(t, d.Body, "Found during pull request #9.")
	assert.Equal(t, []string{"todo"}, d.Labels)
	assert.Equal(t, "octocat", d.Assignee)
}

func TestReconcileSearchFailureFailsOpen(t *testing.T) {
	f := finding()
	tr := &fakeTracker{searchErr: map[string]error{
		"// TODO: evict stale entries": errors.New("rate limited"),
		"pkg/store/store.go":           errors.New("rate limited"),
	}}
	sum := testReconciler(tr).Reconcile(context.Background(), []types.Finding{f})

	// Both searches failed; the finding is treated as untracked and created.
	assert.Equal(t, RunSummary{Created: 1}, sum)
	assert.Len(t, tr.created, 1)
}

func TestReconcileCreationFailureSkips(t *testing.T) {
	f := finding()
	other := types.Finding{Path: "cmd/run.go", Line: 2, Text: "// FIXME: flags", Kind: types.KindFIXME}
	tr := &fakeTracker{createErr: errors.New("403")}
	sum := testReconciler(tr).Reconcile(context.Background(), []types.Finding{f, other})

	// Every creation fails; both findings are skipped and the run continues.
	assert.Equal(t, RunSummary{Skipped: 2}, sum)
}

func TestReconcilePureFold(t *testing.T) {
	// Two runs over the same inputs produce equal summaries; nothing carries
	// over between calls.
	f := finding()
	tr1 := &fakeTracker{}
	tr2 := &fakeTracker{}
	s1 := testReconciler(tr1).Reconcile(context.Background(), []types.Finding{f, f})
	s2 := testReconciler(tr2).Reconcile(context.Background(), []types.Finding{f, f})
	assert.Equal(t, s1, s2)
	// Findings are handled independently: no cross-finding dedup.
	assert.Equal(t, RunSummary{Created: 2}, s1)
}

func TestEligible(t *testing.T) {
	pr := event.PullRequest{Number: 1, Author: "a"}
	assert.True(t, Eligible(true, pr))
	assert.False(t, Eligible(false, pr))
	assert.False(t, Eligible(true, event.Push{Commit: "c", Branch: "b"}))
	assert.False(t, Eligible(true, event.Unknown{}))
}
