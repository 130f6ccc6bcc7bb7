package todohawk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/todohawk/todohawk/internal/action"
	"github.com/todohawk/todohawk/internal/config"
	"github.com/todohawk/todohawk/internal/engine"
	"github.com/todohawk/todohawk/internal/event"
	"github.com/todohawk/todohawk/internal/ghclient"
	"github.com/todohawk/todohawk/internal/issues"
	"github.com/todohawk/todohawk/internal/report"
	"github.com/todohawk/todohawk/internal/source"
)

var (
	flagPath         string
	flagRepo         string
	flagRef          string
	flagToken        string
	flagThreshold    int
	flagExclude      string
	flagInclude      string
	flagLabels       string
	flagCreateIssues bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan for TODO, FIXME and HACK comments",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "local path to scan")
	cmd.Flags().StringVar(&flagRepo, "repo", "", "owner/name of a GitHub repository to scan via the API")
	cmd.Flags().StringVar(&flagRef, "ref", "", "commit SHA, branch or tag for remote scans")
	cmd.Flags().StringVar(&flagToken, "token", "", "GitHub token (defaults to GITHUB_TOKEN)")
	cmd.Flags().IntVar(&flagThreshold, "threshold", config.DefaultThreshold, "highest finding count that still passes")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated path substrings to skip")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagLabels, "labels", "", "comma-separated labels for created issues")
	cmd.Flags().BoolVar(&flagCreateIssues, "create-issues", false, "file GitHub issues for findings on pull request runs")
}

func runScan(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	// Emit step outputs only when running inside a workflow.
	return runPipeline(cmd.Context(), opts, os.Getenv("GITHUB_OUTPUT") != "")
}

// resolveOptions applies precedence: flags > action inputs > local config
// file > global config file > built-in defaults.
func resolveOptions(cmd *cobra.Command) (config.Options, error) {
	localPath := flagPath
	if !cmd.Flags().Changed("path") {
		if p := action.Input("path"); p != "" {
			localPath = p
		}
	}
	abs, err := filepath.Abs(localPath)
	if err != nil {
		return config.Options{}, err
	}

	// Load configs: CLI > inputs > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	threshold, err := pickInt(cmd.Flags().Changed("threshold"), flagThreshold,
		action.Input("threshold"), lcfg.Threshold, gcfg.Threshold, config.DefaultThreshold)
	if err != nil {
		return config.Options{}, fmt.Errorf("threshold: %w", err)
	}

	repo := pickString(flagRepo, action.Input("repo"), lcfg.Repo, gcfg.Repo, "")
	// An explicit --path or path input keeps the scan local even when a
	// repo is configured for issue filing.
	path := abs
	if repo != "" && !cmd.Flags().Changed("path") && action.Input("path") == "" {
		path = ""
	}

	opts := config.Options{
		Token:     pickString(flagToken, action.Input("token"), nil, nil, os.Getenv("GITHUB_TOKEN")),
		Repo:      repo,
		Ref:       pickString(flagRef, action.Input("ref"), lcfg.Ref, gcfg.Ref, ""),
		Path:      path,
		Threshold: threshold,
		ExcludePatterns: config.SplitList(pickString(flagExclude, action.Input("exclude-patterns"),
			lcfg.ExcludePatterns, gcfg.ExcludePatterns, config.DefaultExcludes)),
		IncludeGlobs: pickString(flagInclude, action.Input("include-globs"),
			lcfg.IncludeGlobs, gcfg.IncludeGlobs, ""),
		CreateIssues: pickBool(cmd.Flags().Changed("create-issues"), flagCreateIssues,
			action.Input("create-issues"), lcfg.CreateIssues, gcfg.CreateIssues),
		IssueLabels: config.SplitList(pickString(flagLabels, action.Input("issue-labels"),
			lcfg.IssueLabels, gcfg.IssueLabels, config.DefaultLabels)),
	}
	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}

// runPipeline is the shared scan/report/reconcile flow behind the scan and
// action commands.
func runPipeline(ctx context.Context, opts config.Options, emitOutputs bool) error {
	log := newLogger()

	var (
		tree source.Tree
		gh   *ghclient.Client
		err  error
	)
	if opts.Repo != "" {
		owner, name, ok := strings.Cut(opts.Repo, "/")
		if !ok {
			return fmt.Errorf("repository %q is not owner/name", opts.Repo)
		}
		gh = ghclient.New(ctx, opts.Token, owner, name)
	}
	switch {
	case opts.Path != "":
		tree, err = source.NewLocalTree(opts.Path)
	case gh != nil:
		tree = source.NewGitHubTree(gh, opts.Ref)
	default:
		err = errors.New("nothing to scan: provide a path or a repository")
	}
	if err != nil {
		return err
	}

	cfg := engine.Config{
		Tree:            tree,
		ExcludePatterns: opts.ExcludePatterns,
		IncludeGlobs:    opts.IncludeGlobs,
		Log:             log,
	}
	interactive := !flagJSON && isatty.IsTerminal(os.Stderr.Fd())
	if interactive {
		_, _ = fmt.Fprintf(os.Stderr, "Scanning %s at %s...\n", scanTarget(opts), tree.Ref())
		scanned := 0
		cfg.Progress = func() {
			scanned++
			if scanned%25 == 0 {
				_, _ = fmt.Fprintf(os.Stderr, "\r%d files", scanned)
			}
		}
	}

	res, err := engine.ScanWithStats(ctx, cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if interactive && res.FilesScanned >= 25 {
		_, _ = fmt.Fprintln(os.Stderr)
	}
	log.Debug().
		Int("findings", len(res.Findings)).
		Int("files_scanned", res.FilesScanned).
		Dur("duration", report.RoundDuration(res.Duration)).
		Msg("scan complete")

	popts := report.PrintOptions{
		NoColor:      flagNoColor,
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
		Threshold:    opts.Threshold,
	}
	switch {
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, res.Findings); err != nil {
			return err
		}
	case flagText:
		report.PrintText(os.Stdout, res.Findings, popts)
	default:
		report.PrintTable(os.Stdout, res.Findings, popts)
	}

	var summary issues.RunSummary
	trigger := event.Detect()
	switch {
	case !opts.CreateIssues:
		// reconciliation disabled
	case !issues.Eligible(opts.CreateIssues, trigger):
		log.Info().Msg("issue creation enabled but this is not a pull request run, skipping")
	case gh == nil:
		log.Warn().Msg("issue creation needs a repository, skipping")
	default:
		rec := issues.Reconciler{Tracker: gh, Trigger: trigger, Labels: opts.IssueLabels, Log: log}
		summary = rec.Reconcile(ctx, res.Findings)
		log.Info().
			Int("created", summary.Created).
			Int("linked", summary.Linked).
			Int("skipped", summary.Skipped).
			Msg("issue reconciliation done")
	}

	if emitOutputs {
		if err := emitStepOutputs(res, summary); err != nil {
			return err
		}
	}

	if report.ShouldFail(len(res.Findings), opts.Threshold) {
		os.Exit(1)
	}
	return nil
}

func scanTarget(opts config.Options) string {
	if opts.Path != "" {
		return opts.Path
	}
	return opts.Repo
}

func emitStepOutputs(res engine.Result, summary issues.RunSummary) error {
	details, err := report.DetailsJSON(res.Findings)
	if err != nil {
		return err
	}
	outputs := []struct{ name, value string }{
		{"todo-count", strconv.Itoa(len(res.Findings))},
		{"todo-files", strconv.Itoa(res.FileCount)},
		{"todo-details", details},
		{"issues-created", strconv.Itoa(summary.Created)},
		{"issues-linked", strconv.Itoa(summary.Linked)},
	}
	for _, o := range outputs {
		if err := action.SetOutput(o.name, o.value); err != nil {
			return fmt.Errorf("set output %s: %w", o.name, err)
		}
	}
	return nil
}
