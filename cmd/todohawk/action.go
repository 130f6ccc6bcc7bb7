package todohawk

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/todohawk/todohawk/internal/action"
	"github.com/todohawk/todohawk/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Run as a GitHub Action step",
		Long:  "Reads configuration from INPUT_* variables and the workflow environment, scans the target repository, and always publishes step outputs.",
		RunE:  runAction,
	}
	rootCmd.AddCommand(cmd)
}

func runAction(cmd *cobra.Command, _ []string) error {
	opts, err := resolveActionOptions()
	if err != nil {
		return err
	}
	return runPipeline(cmd.Context(), opts, true)
}

// resolveActionOptions maps action inputs onto Options, falling back to the
// workflow's own environment for the repository, ref, and token.
func resolveActionOptions() (config.Options, error) {
	repo := action.Input("repo")
	if repo == "" {
		repo = os.Getenv("GITHUB_REPOSITORY")
	}
	ref := action.Input("ref")
	if ref == "" {
		ref = os.Getenv("GITHUB_SHA")
	}
	token := action.Input("token")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	threshold := config.DefaultThreshold
	if v := action.Input("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config.Options{}, fmt.Errorf("threshold input: %w", err)
		}
		threshold = n
	}
	excludes := action.Input("exclude-patterns")
	if excludes == "" {
		excludes = config.DefaultExcludes
	}
	labels := action.Input("issue-labels")
	if labels == "" {
		labels = config.DefaultLabels
	}

	opts := config.Options{
		Token:           token,
		Repo:            repo,
		Ref:             ref,
		Path:            action.Input("path"),
		Threshold:       threshold,
		ExcludePatterns: config.SplitList(excludes),
		IncludeGlobs:    action.Input("include-globs"),
		CreateIssues:    action.InputBool("create-issues"),
		IssueLabels:     config.SplitList(labels),
	}
	return opts, opts.Validate()
}
