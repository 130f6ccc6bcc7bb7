package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/todohawk/todohawk/internal/types"
)

// PrintOptions carries presentation inputs shared by the renderers.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	Threshold    int
}

// sortedCopy orders findings by path then line. Renderers sort a copy so
// the caller's slice keeps scan order for JSON output.
func sortedCopy(findings []types.Finding) []types.Finding {
	out := make([]types.Finding, len(findings))
	copy(out, findings)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path == out[j].Path {
			return out[i].Line < out[j].Line
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// PrintTable renders findings as a bordered table followed by the summary
// footer.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	fs := sortedCopy(findings)
	if len(fs) == 0 {
		fmt.Fprintln(w, "No marker comments found ✅")
	} else {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Path", "Line", "Kind", "Text"})
		table.SetAutoWrapText(false)
		for _, f := range fs {
			table.Append([]string{f.Path, strconv.Itoa(f.Line), string(f.Kind), f.Text})
		}
		table.Render()
	}
	Summary(w, findings, opts)
}

// PrintText renders findings as plain aligned columns, one per line.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	fs := sortedCopy(findings)
	if len(fs) == 0 {
		fmt.Fprintln(w, "No marker comments found ✅")
	} else {
		// Column widths
		maxKind := 4
		for _, f := range fs {
			if l := len(f.Kind); l > maxKind {
				maxKind = l
			}
		}
		fmt.Fprintf(w, "Findings: %d\n", len(fs))
		for _, f := range fs {
			fmt.Fprintf(w, "%-*s %s:%d  %s\n", maxKind, f.Kind, f.Path, f.Line, f.Text)
		}
	}
	Summary(w, findings, opts)
}

// Summary prints the aggregate footer: counts by kind, scan stats, and the
// threshold verdict.
func Summary(w io.Writer, findings []types.Finding, opts PrintOptions) {
	var todo, fixme, hack int
	files := map[string]bool{}
	for _, f := range findings {
		files[f.Path] = true
		switch f.Kind {
		case types.KindFIXME:
			fixme++
		case types.KindHACK:
			hack++
		default:
			todo++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d in %d file(s) (todo: %d, fixme: %d, hack: %d)\n",
		len(findings), len(files), todo, fixme, hack)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	fmt.Fprintf(w, "Threshold: %d, %s\n", opts.Threshold,
		verdictLabel(ShouldFail(len(findings), opts.Threshold), opts.NoColor))
}

func verdictLabel(fail, noColor bool) string {
	c := color.New(color.FgGreen, color.Bold)
	label := "PASS"
	if fail {
		c = color.New(color.FgRed, color.Bold)
		label = "FAIL"
	}
	if noColor {
		c.DisableColor()
	}
	return c.Sprint(label)
}

// RoundDuration trims a duration for log fields.
func RoundDuration(d time.Duration) time.Duration {
	return d.Round(time.Millisecond)
}
