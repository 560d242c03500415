package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestResolveRoot(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		flag string
		args []string
		want string
	}{
		{name: "flag wins over argument", flag: dir, args: []string{"/elsewhere"}, want: dir},
		{name: "positional argument", args: []string{dir}, want: dir},
		{name: "falls back to working directory", want: cwd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.Flags().String("root", "", "")
			if tt.flag != "" {
				if err := cmd.Flags().Set("root", tt.flag); err != nil {
					t.Fatal(err)
				}
			}
			got, err := resolveRoot(cmd, tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("resolveRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

// runCommand executes the root command with args against a fresh
// dependency graph and an isolated config home.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	InitDependencies()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

func TestTreeCommand(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"main.go":        "package main\n",
		"docs/notes.md":  "# notes\n",
		"docs/extra.txt": "extra\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out := runCommand(t, "tree", "--root", dir)
	for _, want := range []string{"📄 main.go", "📁 docs", "📄 notes.md"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out = runCommand(t, "tree", "--root", dir, "--ext", ".go")
	if !strings.Contains(out, "main.go") {
		t.Errorf("extension filter dropped main.go:\n%s", out)
	}
	if strings.Contains(out, "notes.md") {
		t.Errorf("extension filter kept notes.md:\n%s", out)
	}
}

func TestTreeCommand_EmptyView(t *testing.T) {
	out := runCommand(t, "tree", "--root", t.TempDir(), "--search", "nomatch")
	if !strings.Contains(out, "no matching files") {
		t.Errorf("empty view placeholder missing:\n%s", out)
	}
}
