package todohawk

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	body := "package demo\n\n// TODO: first marker\nvar x = 1 // FIXME: second marker\n"
	if err := os.WriteFile(filepath.Join(dir, "todo.go"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// runCLI executes the binary via `go run` as a subprocess to avoid os.Exit
// in-process. Workflow variables are pinned so host CI state cannot leak in.
func runCLI(t *testing.T, extraEnv []string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	cmd.Env = append(os.Environ(),
		"GITHUB_OUTPUT=",
		"GITHUB_EVENT_NAME=",
		"GITHUB_REPOSITORY=",
	)
	cmd.Env = append(cmd.Env, extraEnv...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	code := 0
	if ee, ok := err.(*exec.ExitError); ok {
		code = ee.ExitCode()
	} else if err != nil {
		t.Fatalf("execute: %v\nstderr: %s", err, errOut.String())
	}
	return out.String(), errOut.String(), code
}

func TestCLI_JSON_Shape(t *testing.T) {
	dir := writeFixture(t)
	stdout, stderr, code := runCLI(t, nil, "scan", "--json", "-p", dir)
	if code != 0 {
		t.Fatalf("expected exit 0 under default threshold, got %d\nstderr: %s", code, stderr)
	}
	var arr []map[string]any
	if err := json.Unmarshal([]byte(stdout), &arr); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, stdout)
	}
	if len(arr) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(arr))
	}
	first := arr[0]
	if first["path"] != "todo.go" || first["kind"] != "TODO" {
		t.Fatalf("unexpected first finding: %#v", first)
	}
	if first["line"].(float64) != 3 {
		t.Fatalf("expected line 3, got %v", first["line"])
	}
	if !strings.Contains(first["content"].(string), "TODO: first marker") {
		t.Fatalf("expected trimmed line content, got %v", first["content"])
	}
}

func TestCLI_ThresholdExitCode(t *testing.T) {
	dir := writeFixture(t)

	_, _, code := runCLI(t, nil, "scan", "--json", "--threshold", "1", "-p", dir)
	if code != 1 {
		t.Fatalf("2 findings over threshold 1 should exit 1, got %d", code)
	}

	_, _, code = runCLI(t, nil, "scan", "--json", "--threshold", "2", "-p", dir)
	if code != 0 {
		t.Fatalf("count equal to threshold should pass, got %d", code)
	}
}

func TestCLI_TableOutput(t *testing.T) {
	dir := writeFixture(t)
	stdout, _, code := runCLI(t, nil, "scan", "--no-color", "-p", dir)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout, "PATH") || !strings.Contains(stdout, "|") {
		t.Fatalf("expected bordered table, got: %q", stdout)
	}
	if !strings.Contains(stdout, "Threshold: 10, PASS") {
		t.Fatalf("expected verdict footer, got: %q", stdout)
	}
}

func TestCLI_PatternsList(t *testing.T) {
	stdout, _, code := runCLI(t, nil, "patterns")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 patterns, got %d:\n%s", len(lines), stdout)
	}
}

func TestCLI_ActionEmitsOutputs(t *testing.T) {
	dir := writeFixture(t)
	outFile := filepath.Join(t.TempDir(), "github_output")

	_, stderr, code := runCLI(t, []string{
		"INPUT_PATH=" + dir,
		"GITHUB_OUTPUT=" + outFile,
	}, "action")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d\nstderr: %s", code, stderr)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read outputs: %v", err)
	}
	out := string(data)
	for _, want := range []string{"todo-count=2", "todo-files=1", "issues-created=0", "issues-linked=0", `todo-details=[{"path":"todo.go"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("outputs missing %q:\n%s", want, out)
		}
	}
}
