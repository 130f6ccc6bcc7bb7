package engine

import (
	"context"
	"path"
)

// Walk traverses the tree depth-first in pre-order with an explicit
// work-list and invokes handle for every file that survives the exclusion
// and include-glob filters. A directory listing failure downgrades to a
// warning and skips that subtree, so one unreadable directory cannot abort
// the scan.
func Walk(ctx context.Context, cfg Config, handle func(path string) error) error {
	stack := []string{""}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := cfg.Tree.List(ctx, dir)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			cfg.Log.Warn().Str("dir", dir).Err(err).Msg("directory listing failed, skipping subtree")
			continue
		}

		// Files are handled in listing order; subdirectories are pushed in
		// reverse so the stack pops them in listing order too, keeping the
		// traversal deterministic across runs.
		var dirs []string
		for _, e := range entries {
			p := path.Join(dir, e.Name)
			if excluded(p, cfg.ExcludePatterns) {
				continue
			}
			if e.Dir {
				dirs = append(dirs, p)
				continue
			}
			if !allowedByGlobs(p, cfg.IncludeGlobs) {
				continue
			}
			if err := handle(p); err != nil {
				return err
			}
		}
		for i := len(dirs) - 1; i >= 0; i-- {
			stack = append(stack, dirs[i])
		}
	}
	return nil
}
