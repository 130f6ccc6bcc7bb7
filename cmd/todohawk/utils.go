package todohawk

import (
	"fmt"
	"strconv"
	"strings"
)

func pickString(cli, env string, local, global *string, def string) string {
	if cli != "" {
		return cli
	}
	if env != "" {
		return env
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return def
}

// pickInt takes the flag value only when the flag was set on the command
// line, so an explicit 0 is distinguishable from the default.
func pickInt(set bool, cli int, env string, local, global *int, def int) (int, error) {
	if set {
		return cli, nil
	}
	if env != "" {
		n, err := strconv.Atoi(env)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q: %w", env, err)
		}
		return n, nil
	}
	if local != nil {
		return *local, nil
	}
	if global != nil {
		return *global, nil
	}
	return def, nil
}

func pickBool(set, cli bool, env string, local, global *bool) bool {
	if set {
		return cli
	}
	if env != "" {
		return strings.EqualFold(env, "true")
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
