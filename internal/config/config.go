package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither flags, environment, nor a config file
// provide a value.
const (
	DefaultThreshold = 10
	DefaultExcludes  = "node_modules,dist,build,.git"
	DefaultLabels    = "todo,enhancement"
)

// Options is the fully resolved configuration for one run, after flag,
// environment, file, and default precedence has been applied.
type Options struct {
	// Token authenticates GitHub API calls. Required for remote scans and
	// for issue creation.
	Token string

	// Repo is the owner/name slug to scan via the GitHub API. Empty means
	// scan Path on the local filesystem instead.
	Repo string `validate:"omitempty,contains=/"`

	// Ref is the commit SHA, branch, or tag for remote scans. Empty means
	// the repository's default branch.
	Ref string

	// Path is the local directory to scan when Repo is empty.
	Path string

	// Threshold is the highest finding count that still passes.
	Threshold int `validate:"min=0"`

	ExcludePatterns []string
	IncludeGlobs    string

	CreateIssues bool
	IssueLabels  []string
}

var validate = validator.New()

// Validate checks structural rules via struct tags, then the semantic
// rules that cut across fields.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msg := fmt.Sprintf("validation failed for '%s': rule '%s'", fe.Field(), fe.Tag())
				if fe.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", fe.Param())
				}
				msgs = append(msgs, msg)
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	if o.Repo != "" && o.Token == "" {
		return errors.New("a token is required to scan a remote repository")
	}
	if o.CreateIssues && o.Token == "" {
		return errors.New("a token is required to create issues")
	}
	return nil
}

// FileConfig is the on-disk YAML configuration shape for todohawk. Pointer
// fields distinguish "absent" from an explicit zero.
type FileConfig struct {
	Threshold       *int    `yaml:"threshold"`
	ExcludePatterns *string `yaml:"exclude_patterns"`
	IncludeGlobs    *string `yaml:"include_globs"`
	CreateIssues    *bool   `yaml:"create_issues"`
	IssueLabels     *string `yaml:"issue_labels"`
	Repo            *string `yaml:"repo"`
	Ref             *string `yaml:"ref"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .todohawk.yml/.yaml and todohawk.yml/.yaml.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".todohawk.yml", ".todohawk.yaml", "todohawk.yml", "todohawk.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "todohawk", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// SplitList splits a comma-separated list, trimming whitespace around each
// item and dropping empties.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
