package markers

import (
	"regexp"

	"github.com/todohawk/todohawk/internal/types"
)

// pattern pairs a compiled comment-style expression with the kind it reports.
type pattern struct {
	re   *regexp.Regexp
	kind types.Kind
}

// The twelve recognized forms: each comment opener (//, /*, #, <!--) followed
// by optional whitespace and a keyword, case-insensitive. Order matters: every
// TODO form is tried before FIXME and every FIXME form before HACK, so a line
// carrying several keywords resolves to the highest-priority one.
var all = []pattern{
	{regexp.MustCompile(`(?i)//\s*todo`), types.KindTODO},
	{regexp.MustCompile(`(?i)/\*\s*todo`), types.KindTODO},
	{regexp.MustCompile(`(?i)#\s*todo`), types.KindTODO},
	{regexp.MustCompile(`(?i)<!--\s*todo`), types.KindTODO},
	{regexp.MustCompile(`(?i)//\s*fixme`), types.KindFIXME},
	{regexp.MustCompile(`(?i)/\*\s*fixme`), types.KindFIXME},
	{regexp.MustCompile(`(?i)#\s*fixme`), types.KindFIXME},
	{regexp.MustCompile(`(?i)<!--\s*fixme`), types.KindFIXME},
	{regexp.MustCompile(`(?i)//\s*hack`), types.KindHACK},
	{regexp.MustCompile(`(?i)/\*\s*hack`), types.KindHACK},
	{regexp.MustCompile(`(?i)#\s*hack`), types.KindHACK},
	{regexp.MustCompile(`(?i)<!--\s*hack`), types.KindHACK},
}

// Match classifies a single source line. It returns the kind of the first
// matching pattern, or false when no pattern matches. Evaluation stops at the
// first hit. Matching is line-based, not a tokenizer: a marker inside a
// string literal still counts.
func Match(line string) (types.Kind, bool) {
	for _, p := range all {
		if p.re.MatchString(line) {
			return p.kind, true
		}
	}
	return "", false
}

// Patterns returns the recognized expressions in evaluation order.
func Patterns() []string {
	out := make([]string, 0, len(all))
	for _, p := range all {
		out = append(out, p.re.String())
	}
	return out
}

// Kinds returns the marker keywords in priority order.
func Kinds() []types.Kind {
	return []types.Kind{types.KindTODO, types.KindFIXME, types.KindHACK}
}
