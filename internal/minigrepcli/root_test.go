package minigrepcli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minigrep/internal/config"
	"minigrep/internal/runner"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"

func writePoem(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(p, []byte(poem), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func unsetIgnoreCase(t *testing.T) {
	t.Helper()
	t.Setenv(config.IgnoreCaseEnv, "")
	if err := os.Unsetenv(config.IgnoreCaseEnv); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}
}

func TestHelpMentionsUsage(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--help"})
	out, _, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "minigrep") || !strings.Contains(out, "IGNORE_CASE") {
		t.Fatalf("help missing expected text: %s", out)
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--version"})
	out, _, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != "dev" {
		t.Fatalf("out=%q", out)
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	unsetIgnoreCase(t)
	p := writePoem(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"rust", p})
	out, _, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "Trust me.\n" {
		t.Fatalf("out=%q", out)
	}
}

func TestSearchIgnoreCaseFromEnv(t *testing.T) {
	t.Setenv(config.IgnoreCaseEnv, "")
	p := writePoem(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"rUsT", p})
	out, _, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "Rust:\nTrust me.\n" {
		t.Fatalf("out=%q", out)
	}
}

func TestMissingFilePathIsError(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"foo"})
	out, errOut, _, err := ExecuteForTest(cmd)
	if !errors.Is(err, config.ErrMissingFilePath) {
		t.Fatalf("err=%v", err)
	}
	if out != "" {
		t.Fatalf("stdout=%q", out)
	}
	if !strings.Contains(errOut, "missing file path") {
		t.Fatalf("stderr=%q", errOut)
	}
}

func TestMissingQueryIsError(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{})
	_, _, _, err := ExecuteForTest(cmd)
	if !errors.Is(err, config.ErrMissingQuery) {
		t.Fatalf("err=%v", err)
	}
}

func TestMissingFileIsReadError(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"q", filepath.Join(t.TempDir(), "missing.txt")})
	out, _, _, err := ExecuteForTest(cmd)
	var readErr *runner.FileReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("err=%v", err)
	}
	if out != "" {
		t.Fatalf("stdout=%q", out)
	}
}

func TestJSONLOutput(t *testing.T) {
	unsetIgnoreCase(t)
	p := writePoem(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--jsonl", "three", p})
	out, _, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "{\"line\":3,\"col\":6,\"text\":\"Pick three.\"}\n" {
		t.Fatalf("out=%q", out)
	}
}

func TestExplainGoesToStderr(t *testing.T) {
	unsetIgnoreCase(t)
	p := writePoem(t)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--explain", "safe", p})
	out, errOut, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opts.Explain != "text" {
		t.Fatalf("Explain=%q", opts.Explain)
	}
	if out != "safe, fast, productive.\n" {
		t.Fatalf("out=%q", out)
	}
	if !strings.HasPrefix(errOut, "explain:\n") || !strings.Contains(errOut, "matches: 1") {
		t.Fatalf("stderr=%q", errOut)
	}
}

func TestDashQueryAfterDoubleDash(t *testing.T) {
	unsetIgnoreCase(t)
	p := filepath.Join(t.TempDir(), "flags.txt")
	if err := os.WriteFile(p, []byte("a -x b\nuse -v here\nplain\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	for query, want := range map[string]string{"-x": "a -x b\n", "-v": "use -v here\n"} {
		cmd := NewRootCommand()
		cmd.SetArgs([]string{"--", query, p})
		out, _, _, err := ExecuteForTest(cmd)
		if err != nil {
			t.Fatalf("query=%q execute: %v", query, err)
		}
		if out != want {
			t.Fatalf("query=%q out=%q", query, out)
		}
	}
}

func TestFlagsAfterQueryAreArguments(t *testing.T) {
	unsetIgnoreCase(t)
	p := filepath.Join(t.TempDir(), "flags.txt")
	if err := os.WriteFile(p, []byte("x --jsonl y\nplain line\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"plain", p, "--jsonl"})
	out, _, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opts.Jsonl {
		t.Fatal("--jsonl after the query should not be parsed as a flag")
	}
	if out != "plain line\n" {
		t.Fatalf("out=%q", out)
	}
}
