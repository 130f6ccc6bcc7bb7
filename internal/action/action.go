// Package action reads GitHub Actions inputs and writes step outputs,
// following the same environment conventions as the official toolkit.
package action

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Input returns the value of an action input. Inputs arrive as INPUT_*
// environment variables with dashes mapped to underscores; the value is
// returned with surrounding whitespace trimmed.
func Input(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return strings.TrimSpace(os.Getenv(key))
}

// InputBool reads an input and reports whether it is the string "true",
// case-insensitively. Anything else, including absence, is false.
func InputBool(name string) bool {
	return strings.EqualFold(Input(name), "true")
}

// SetOutput publishes a step output. When GITHUB_OUTPUT is set the
// name=value pair is appended to that file, with multiline values framed
// by a heredoc and a random delimiter so the value cannot terminate the
// block early. Outside a workflow the pair goes to stdout.
func SetOutput(name, value string) error {
	outPath := os.Getenv("GITHUB_OUTPUT")
	if outPath == "" {
		_, err := fmt.Printf("%s=%s\n", name, value)
		return err
	}

	f, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var entry string
	if strings.Contains(value, "\n") {
		delim := "ghadelimiter_" + uuid.NewString()
		entry = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delim, value, delim)
	} else {
		entry = fmt.Sprintf("%s=%s\n", name, value)
	}
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
