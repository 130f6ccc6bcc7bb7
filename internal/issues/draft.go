package issues

import (
	"fmt"
	"strings"

	"github.com/todohawk/todohawk/internal/event"
	"github.com/todohawk/todohawk/internal/types"
)

// TrackedIssue is the read-only view of an issue that already exists in the
// tracker. Reconciliation inspects it but never mutates it.
type TrackedIssue struct {
	Number int
	Title  string
	Body   string
	Labels []string
}

// IssueDraft carries everything needed to open a new issue for a finding.
type IssueDraft struct {
	Title    string
	Body     string
	Labels   []string
	Assignee string
}

var (
	commentOpeners = []string{"//", "/*", "#", "<!--"}
	commentClosers = []string{"*/", "-->"}
)

// CleanText normalizes a marker line for presentation: it strips one leading
// comment opener and one trailing closer, collapses whitespace runs to a
// single space, and trims.
func CleanText(raw string) string {
	s := strings.TrimSpace(raw)
	for _, o := range commentOpeners {
		if strings.HasPrefix(s, o) {
			s = strings.TrimPrefix(s, o)
			break
		}
	}
	for _, c := range commentClosers {
		if strings.HasSuffix(s, c) {
			s = strings.TrimSuffix(s, c)
			break
		}
	}
	return strings.Join(strings.Fields(s), " ")
}

// Title derives the issue title from a finding. Cleaned text that already
// leads with a marker keyword is kept as-is; anything else gets a "TODO: "
// prefix. Titles longer than 50 characters are cut and ellipsized.
func Title(f types.Finding) string {
	t := CleanText(f.Text)
	if !hasMarkerPrefix(t) {
		t = "TODO: " + t
	}
	if len(t) > 50 {
		t = t[:50] + "..."
	}
	return t
}

func hasMarkerPrefix(s string) bool {
	ls := strings.ToLower(s)
	for _, prefix := range []string{"todo:", "fixme:", "hack:"} {
		if strings.HasPrefix(ls, prefix) {
			return true
		}
	}
	return false
}

// Body renders the fixed Markdown body for a finding: location fields, the
// raw line in a code block, a context sentence for the trigger, and the
// follow-up checklist.
func Body(f types.Finding, trigger event.TriggerContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s found\n\n", f.Kind)
	fmt.Fprintf(&b, "**File:** `%s`\n", f.Path)
	fmt.Fprintf(&b, "**Line:** %d\n", f.Line)
	fmt.Fprintf(&b, "**Type:** %s\n\n", f.Kind)
	b.WriteString("```\n")
	b.WriteString(f.Text)
	b.WriteString("\n```\n\n")
	b.WriteString(contextSentence(trigger))
	b.WriteString("\n\n")
	b.WriteString("- [ ] Review this comment\n")
	b.WriteString("- [ ] Address the work it describes, or re-triage it\n")
	b.WriteString("- [ ] Close this issue\n")
	return b.String()
}

func contextSentence(trigger event.TriggerContext) string {
	switch t := trigger.(type) {
	case event.PullRequest:
		return fmt.Sprintf("Found during pull request #%d.", t.Number)
	case event.Push:
		return fmt.Sprintf("Found in commit %s on branch %s.", shortSHA(t.Commit), t.Branch)
	default:
		return "Found during an automated scan."
	}
}

func shortSHA(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}

// Draft assembles the full issue draft for a finding. The assignee is the
// pull request author when the trigger carries one; other triggers leave it
// empty and the draft is still valid.
func Draft(f types.Finding, trigger event.TriggerContext, labels []string) IssueDraft {
	d := IssueDraft{
		Title:  Title(f),
		Body:   Body(f, trigger),
		Labels: labels,
	}
	if pr, ok := trigger.(event.PullRequest); ok {
		d.Assignee = pr.Author
	}
	return d
}
