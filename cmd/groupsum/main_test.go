package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/groupsum/internal/domain"
)

// execute runs the root command with an isolated home directory so a real
// ~/.groupsum/config.toml never leaks into tests.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestExamplePayload(t *testing.T) {
	stdout, _, err := execute(t, "", "--example")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "part1=24000\npart2=45000\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestInputSources(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "input.txt", string(examplePayload))

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "positional file", args: []string{path}},
		{name: "input flag", args: []string{"--input", path}},
		{name: "short input flag", args: []string{"-i", path}},
		{name: "stdin by default", stdin: string(examplePayload)},
		{name: "stdin by dash", stdin: string(examplePayload), args: []string{"-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if want := "part1=24000\npart2=45000\n"; stdout != want {
				t.Fatalf("stdout = %q, want %q", stdout, want)
			}
		})
	}
}

func TestOutputOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "top one", args: []string{"--example", "--top", "1"}, want: "part1=24000\npart2=24000\n"},
		{name: "top five short", args: []string{"--example", "-k", "5"}, want: "part1=24000\npart2=55000\n"},
		{
			name: "json",
			args: []string{"--example", "--format", "json"},
			want: `{"part1":24000,"part2":45000,"groups":5,"top":[24000,11000,10000]}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if stdout != tt.want {
				t.Fatalf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestFewerGroupsThanTop(t *testing.T) {
	stdout, _, err := execute(t, "5\n\n6\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "part1=6\npart2=11\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}

	stdout, _, err = execute(t, "5\n\n6\n", "--strict")
	if !errors.Is(err, domain.ErrInsufficientGroups) {
		t.Fatalf("expected ErrInsufficientGroups, got %v", err)
	}
	if stdout != "" {
		t.Fatalf("expected no output, got %q", stdout)
	}
}

func TestFailures(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "input.txt", "1\n")

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr error
	}{
		{name: "malformed line", stdin: "1000\n\nabc\n", wantErr: domain.ErrParse},
		{name: "empty input", stdin: "", wantErr: domain.ErrEmptyInput},
		{name: "missing file", args: []string{filepath.Join(dir, "missing.txt")}, wantErr: os.ErrNotExist},
		{name: "invalid top", args: []string{"--example", "--top", "0"}, wantErr: domain.ErrInvalidConfig},
		{name: "invalid format", args: []string{"--example", "--format", "xml"}, wantErr: domain.ErrInvalidConfig},
		{name: "watch stdin", args: []string{"--watch"}, wantErr: domain.ErrInvalidConfig},
		{name: "input twice", args: []string{"--input", path, path}, wantErr: errConflictingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.stdin, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if stdout != "" {
				t.Fatalf("expected no output on failure, got %q", stdout)
			}
		})
	}
}

func TestExampleConflicts(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "input.txt", "1\n")

	if _, _, err := execute(t, "", "--example", path); err == nil {
		t.Fatal("expected error combining --example with an input")
	}

	t.Run("input from env", func(t *testing.T) {
		t.Setenv("GROUPSUM_INPUT", path)
		stdout, _, err := execute(t, "", "--example")
		if err == nil {
			t.Fatalf("expected error combining --example with GROUPSUM_INPUT, got output %q", stdout)
		}
	})

	t.Run("input from config file", func(t *testing.T) {
		cfgPath := writeFile(t, dir, "config.toml", `input = "`+filepath.ToSlash(path)+`"`+"\n")
		if _, _, err := execute(t, "", "--example", "--config", cfgPath); err == nil {
			t.Fatal("expected error combining --example with a configured input")
		}
	})
}

func TestConfigLayers(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", string(examplePayload))
	cfgPath := writeFile(t, dir, "config.toml", `
input = "`+filepath.ToSlash(input)+`"
top_k = 5
format = "json"
`)

	t.Run("file", func(t *testing.T) {
		stdout, _, err := execute(t, "", "--config", cfgPath)
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		if !strings.Contains(stdout, `"part2":55000`) {
			t.Fatalf("expected json with top 5 total, got %q", stdout)
		}
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("GROUPSUM_FORMAT", "text")
		stdout, _, err := execute(t, "", "--config", cfgPath)
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		if want := "part1=24000\npart2=55000\n"; stdout != want {
			t.Fatalf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("GROUPSUM_FORMAT", "json")
		t.Setenv("GROUPSUM_TOP_K", "1")
		stdout, _, err := execute(t, "", "--config", cfgPath, "--format", "text", "--top", "3")
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		if want := "part1=24000\npart2=45000\n"; stdout != want {
			t.Fatalf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("default path", func(t *testing.T) {
		home := t.TempDir()
		if err := os.MkdirAll(filepath.Join(home, ".groupsum"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		writeFile(t, filepath.Join(home, ".groupsum"), "config.toml", "top_k = 1\n")

		var stdout, stderr bytes.Buffer
		t.Setenv("HOME", home)
		cmd := newRootCommand(strings.NewReader(""), &stdout, &stderr)
		cmd.SetArgs([]string{"--example"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
		if want := "part1=24000\npart2=24000\n"; stdout.String() != want {
			t.Fatalf("stdout = %q, want %q", stdout.String(), want)
		}
	})

	t.Run("missing explicit config", func(t *testing.T) {
		if _, _, err := execute(t, "", "--example", "--config", filepath.Join(dir, "nope.toml")); err == nil {
			t.Fatal("expected error for missing config file")
		}
	})

	t.Run("invalid env", func(t *testing.T) {
		t.Setenv("GROUPSUM_TOP_K", "three")
		if _, _, err := execute(t, "", "--example"); err == nil {
			t.Fatal("expected error for invalid env value")
		}
	})
}

func TestLogsStayOffStdout(t *testing.T) {
	stdout, stderr, err := execute(t, "", "--example", "--log-level", "debug")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "part1=24000\npart2=45000\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
	if !strings.Contains(stderr, "solved") {
		t.Fatalf("expected log output on stderr, got %q", stderr)
	}
}
