package engine

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/todohawk/todohawk/internal/markers"
	"github.com/todohawk/todohawk/internal/source"
	"github.com/todohawk/todohawk/internal/types"
)

// Config controls scanning behavior: where to read, what to skip, and where
// warnings go.
type Config struct {
	// Tree is the snapshot to scan. Required.
	Tree source.Tree

	// ExcludePatterns are plain substrings; a path containing any of them is
	// skipped, directories included.
	ExcludePatterns []string

	// IncludeGlobs optionally narrows files to comma-separated globs.
	IncludeGlobs string

	// Log receives non-fatal warnings. Use zerolog.Nop() to discard.
	Log zerolog.Logger

	// Progress, when set, is invoked once per scanned file.
	Progress func()
}

// Result contains findings and basic scan statistics.
type Result struct {
	// Findings in traversal order, then in-file line order.
	Findings []types.Finding
	// FileCount is the number of distinct paths among the findings.
	FileCount int
	// FilesScanned counts files that passed the filters and were handed to
	// the scanner, whether or not the fetch succeeded.
	FilesScanned int
	Duration     time.Duration
}

// Scan runs a scan and returns only findings (without stats).
func Scan(ctx context.Context, cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats walks the tree, scans every eligible file, and aggregates.
// Per-file fetch failures are warnings; only a nil tree or a cancelled
// context abort the run.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	if cfg.Tree == nil {
		return result, errors.New("engine: no tree provider")
	}

	started := time.Now()
	var out []types.Finding
	err := Walk(ctx, cfg, func(p string) error {
		if !Scannable(p) {
			return nil
		}
		result.FilesScanned++
		if cfg.Progress != nil {
			cfg.Progress()
		}
		fs, err := ScanFile(ctx, cfg.Tree, p)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			cfg.Log.Warn().Str("path", p).Err(err).Msg("could not read file, skipping")
			return nil
		}
		out = append(out, fs...)
		return nil
	})
	if err != nil {
		return result, err
	}

	result.Findings = out
	result.FileCount = distinctPaths(out)
	result.Duration = time.Since(started)
	return result, nil
}

// ScanFile fetches one file and returns its marker findings in line order.
// At most one finding is produced per line.
func ScanFile(ctx context.Context, tree source.Tree, p string) ([]types.Finding, error) {
	data, err := tree.Fetch(ctx, p)
	if err != nil {
		return nil, err
	}
	var out []types.Finding
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		t := sc.Text()
		kind, ok := markers.Match(t)
		if !ok {
			continue
		}
		out = append(out, types.Finding{
			Path: p,
			Line: line,
			Text: strings.TrimSpace(t),
			Kind: kind,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func distinctPaths(fs []types.Finding) int {
	seen := make(map[string]bool, len(fs))
	for _, f := range fs {
		seen[f.Path] = true
	}
	return len(seen)
}
