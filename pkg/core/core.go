package core

import (
	"context"
	"encoding/json"
	"io"

	"github.com/todohawk/todohawk/internal/engine"
	"github.com/todohawk/todohawk/internal/markers"
	"github.com/todohawk/todohawk/internal/report"
	"github.com/todohawk/todohawk/internal/source"
	"github.com/todohawk/todohawk/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Finding = types.Finding
type Result = engine.Result
type Tree = source.Tree

// Scan is the stable entrypoint for other programs.
func Scan(ctx context.Context, cfg Config) ([]Finding, error) {
	return engine.Scan(ctx, cfg)
}

// ScanWithStats also returns file and timing statistics.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	return engine.ScanWithStats(ctx, cfg)
}

// NewLocalTree opens a directory on disk as a scan target.
func NewLocalTree(root string) (Tree, error) { return source.NewLocalTree(root) }

// Patterns returns the marker patterns the scanner matches against.
// This is exposed for convenience to avoid importing internals directly.
func Patterns() []string { return markers.Patterns() }

// MarshalFindings pretty-prints findings as JSON for humans or pipelines.
func MarshalFindings(w io.Writer, findings []Finding) error {
	return report.WriteJSON(w, findings)
}

// UnmarshalFindings decodes findings JSON, useful for ingesting the
// todo-details output of an action run.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var fs []Finding
	if err := json.NewDecoder(r).Decode(&fs); err != nil {
		return nil, err
	}
	return fs, nil
}
