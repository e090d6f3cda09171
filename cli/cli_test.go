package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"github.com/ardnew/xprovide/cli/cmd"
	"github.com/ardnew/xprovide/define"
	"github.com/ardnew/xprovide/log"
	"github.com/ardnew/xprovide/pkg"
)

// TestMain points the configuration and cache directories at a scratch
// directory so that Run never touches the user's own.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)

	home, err := os.MkdirTemp("", pkg.Name)
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))

	code := m.Run()

	os.RemoveAll(home)
	os.Exit(code)
}

func writeDefs(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range map[string]string{
		"flag.js":       "module.exports = true",
		"thing-dev.js":  "",
		"thing-prod.js": "",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

// run invokes Run with logging silenced and returns the command output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() { log.SetDefault(log.Make(os.Stderr)) })

	var out bytes.Buffer

	exit := func(code int) { t.Fatalf("exit(%d)", code) }
	err := Run(
		cmd.WithOutput(context.Background(), &out),
		exit,
		append([]string{"--log-level=error"}, args...)...,
	)

	return out.String(), err
}

func TestRun_Defs(t *testing.T) {
	dir := writeDefs(t)

	tests := []struct {
		mode  string
		thing string
	}{
		{"development", "thing-dev.js"},
		{"production", "thing-prod.js"},
		{"staging", "thing-prod.js"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out, err := run(t, "-p", dir, "-m", tt.mode, "defs", "-f", "json")
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			var got define.Table
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decode %q: %v", out, err)
			}

			want := define.Table{
				"FLAG":  {Module: filepath.Join(dir, "flag.js")},
				"THING": {Module: filepath.Join(dir, tt.thing)},
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun_Override(t *testing.T) {
	dir := writeDefs(t)

	out, err := run(t,
		"-p", dir,
		"-o", "THING=mock.js",
		"-o", "EXTRA=extra.json#a#b",
		"defs", "-f", "json",
	)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	var got define.Table
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}

	want := define.Table{
		"FLAG":  {Module: filepath.Join(dir, "flag.js")},
		"THING": {Module: "mock.js"},
		"EXTRA": {Module: "extra.json", Path: []string{"a", "b"}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_InvalidOverride(t *testing.T) {
	_, err := run(t, "-o", "THING=#member", "defs")
	if err == nil {
		t.Fatal("Run() succeeded with an override lacking a module")
	}
}

func TestRun_WithoutPath(t *testing.T) {
	out, err := run(t, "defs")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if strings.TrimSpace(out) != "" {
		t.Errorf("output = %q, want nothing", out)
	}
}

func TestRun_InitThenLoad(t *testing.T) {
	dir := writeDefs(t)

	t.Cleanup(func() { os.Remove(configPath(baseConfig) + extYAML) })

	if _, err := run(t, "-p", dir, "-m", "development", "init"); err != nil {
		t.Fatalf("init error: %v", err)
	}

	if _, err := run(t, "init"); err == nil {
		t.Error("second init succeeded without --force")
	}

	out, err := run(t, "lookup", "thing", "-f", "json")
	if err != nil {
		t.Fatalf("lookup error: %v", err)
	}

	var got struct {
		Key    string        `json:"key"`
		Target define.Target `json:"target"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}

	if want := filepath.Join(dir, "thing-dev.js"); got.Target.Module != want {
		t.Errorf("module = %q, want %q", got.Target.Module, want)
	}
}

func TestRun_Version(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}

	if want := pkg.Name + " " + pkg.Version() + "\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}
