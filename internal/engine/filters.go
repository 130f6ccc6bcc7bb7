package engine

import (
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// scanExtensions is the fixed allow-list of source extensions. The gate runs
// before any content fetch, so skipped files cost nothing.
var scanExtensions = map[string]bool{
	".c": true, ".cc": true, ".cpp": true, ".cs": true, ".css": true,
	".go": true, ".h": true, ".hpp": true, ".html": true, ".java": true,
	".js": true, ".jsx": true, ".kt": true, ".md": true, ".php": true,
	".py": true, ".rb": true, ".rs": true, ".scss": true, ".sh": true,
	".sql": true, ".swift": true, ".ts": true, ".tsx": true, ".vue": true,
	".xml": true, ".yaml": true, ".yml": true,
}

// Scannable reports whether the path's extension (lowercased) is in the
// allow-list.
func Scannable(p string) bool {
	return scanExtensions[strings.ToLower(path.Ext(p))]
}

// excluded reports whether p contains any of the exclusion substrings. Plain
// containment, not globbing: "dist" excludes dist/, redist/ and x/dist.js
// alike. An excluded directory is never listed, so exclusion is inherited by
// everything beneath it.
func excluded(p string, patterns []string) bool {
	for _, pat := range patterns {
		if pat != "" && strings.Contains(p, pat) {
			return true
		}
	}
	return false
}

// allowedByGlobs applies the optional include filter to a file path. Globs
// are comma-separated and, if provided, act as a positive filter; an empty
// list admits every file. Matching uses forward-slash semantics against the
// full relative path and its base name.
func allowedByGlobs(relPath, includeGlobs string) bool {
	includes := parseGlobsList(includeGlobs)
	if len(includes) == 0 {
		return true
	}
	rp := strings.ReplaceAll(relPath, "\\", "/")
	return matchAnyGlob(rp, includes)
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, path.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
