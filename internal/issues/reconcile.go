package issues

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/todohawk/todohawk/internal/event"
	"github.com/todohawk/todohawk/internal/types"
)

// Tracker is the issue-tracker surface reconciliation needs. Search results
// arrive in tracker relevance order; both calls honor ctx.
type Tracker interface {
	SearchIssues(ctx context.Context, text string) ([]TrackedIssue, error)
	CreateIssue(ctx context.Context, draft IssueDraft) (int, error)
}

// RunSummary is the outcome of reconciling one finding list. Skipped counts
// findings whose issue creation failed; they are neither created nor linked.
type RunSummary struct {
	Created int
	Linked  int
	Skipped int
}

// Eligible reports whether reconciliation may run at all: it requires the
// explicit opt-in and a pull request trigger to attribute issues to.
func Eligible(createIssues bool, trigger event.TriggerContext) bool {
	if !createIssues {
		return false
	}
	_, ok := trigger.(event.PullRequest)
	return ok
}

// Reconciler matches findings against existing tracker issues and opens new
// ones for the rest.
type Reconciler struct {
	Tracker Tracker
	Trigger event.TriggerContext
	Labels  []string
	Log     zerolog.Logger
}

// Reconcile folds over the findings one at a time, each handled
// independently, and returns the summary. Search failures count as "no
// match", so a flaky search can only over-create, never lose a finding.
// Creation failures skip just that finding.
func (r Reconciler) Reconcile(ctx context.Context, findings []types.Finding) RunSummary {
	var sum RunSummary
	for _, f := range findings {
		if n, ok := r.findExisting(ctx, f); ok {
			r.Log.Debug().Int("issue", n).Str("path", f.Path).Int("line", f.Line).
				Msg("finding already tracked")
			sum.Linked++
			continue
		}
		n, err := r.Tracker.CreateIssue(ctx, Draft(f, r.Trigger, r.Labels))
		if err != nil {
			r.Log.Warn().Str("path", f.Path).Int("line", f.Line).Err(err).
				Msg("issue creation failed, skipping finding")
			sum.Skipped++
			continue
		}
		r.Log.Info().Int("issue", n).Str("path", f.Path).Int("line", f.Line).
			Msg("issue created")
		sum.Created++
	}
	return sum
}

// findExisting applies the two-step match heuristic. Step one searches by the
// finding's raw text and accepts an issue whose body mentions the file path
// or the text, or whose title mentions any marker keyword. Step two searches
// by file path and accepts an issue whose body contains the text.
func (r Reconciler) findExisting(ctx context.Context, f types.Finding) (int, bool) {
	text := strings.TrimSpace(f.Text)

	byText, err := r.Tracker.SearchIssues(ctx, text)
	if err != nil {
		r.Log.Warn().Str("path", f.Path).Err(err).Msg("issue search failed, assuming untracked")
	}
	for _, is := range byText {
		if strings.Contains(is.Body, f.Path) || strings.Contains(is.Body, text) || titleHasMarkerWord(is.Title) {
			return is.Number, true
		}
	}

	byPath, err := r.Tracker.SearchIssues(ctx, f.Path)
	if err != nil {
		r.Log.Warn().Str("path", f.Path).Err(err).Msg("issue search failed, assuming untracked")
		return 0, false
	}
	for _, is := range byPath {
		if strings.Contains(is.Body, text) {
			return is.Number, true
		}
	}
	return 0, false
}

func titleHasMarkerWord(title string) bool {
	lt := strings.ToLower(title)
	return strings.Contains(lt, "todo") || strings.Contains(lt, "fixme") || strings.Contains(lt, "hack")
}
