package define

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/xprovide/log"
	"github.com/ardnew/xprovide/pkg"
)

// writeFiles creates each named file under a new temporary directory and
// returns the directory's absolute path.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}

	return abs
}

func load(t *testing.T, dir string) Tables {
	t.Helper()

	tables, err := Load(dir, WithLogger(log.Discard()))
	if err != nil {
		t.Fatalf("Load(%q) error: %v", dir, err)
	}

	return tables
}

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"flag", "FLAG"},
		{"FLAG", "FLAG"},
		{"feature.flagX", "FEATURE.FLAG_X"},
		{"apiUrl", "API_URL"},
		{"api-url", "API_URL"},
		{"api url", "API_URL"},
		{"a.b.c", "A.B.C"},
		{"FEATURE.FLAG_X", "FEATURE.FLAG_X"},
		{"__foo__", "FOO"},
		{"_ns._sub_", "NS.SUB"},
		{"-api-url-", "API_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Key(tt.in); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
			}

			if again := Key(Key(tt.in)); again != Key(tt.in) {
				t.Errorf("Key is not idempotent for %q: %q", tt.in, again)
			}
		})
	}
}

func TestPrefixes(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"A", nil},
		{"A.B", []string{"A"}},
		{"A.B.C", []string{"A", "A.B"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Prefixes(tt.in)); diff != "" {
			t.Errorf("Prefixes(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestModeEnv(t *testing.T) {
	tests := []struct {
		mode string
		want Env
	}{
		{"development", Development},
		{"dev", Development},
		{"Development", Development},
		{"production", Production},
		{"none", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		if got := ModeEnv(tt.mode); got != tt.want {
			t.Errorf("ModeEnv(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{in: "./flag.js", want: Target{Module: "./flag.js"}},
		{in: "lodash#get", want: Target{Module: "lodash", Path: []string{"get"}}},
		{in: "a#b#c", want: Target{Module: "a", Path: []string{"b", "c"}}},
		{in: "", wantErr: true},
		{in: "#member", wantErr: true},
		{in: "a##b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			if tt.wantErr {
				if !errors.Is(err, pkg.ErrInvalidTarget) {
					t.Fatalf("ParseTarget(%q) error = %v, want ErrInvalidTarget", tt.in, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseTarget(%q) error: %v", tt.in, err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTarget(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}

			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	for _, dir := range []string{"", filepath.Join(t.TempDir(), "absent")} {
		tables := load(t, dir)

		if len(tables.Development) != 0 || len(tables.Production) != 0 {
			t.Errorf("Load(%q) = %v, want empty tables", dir, tables)
		}

		if tables.Development == nil || tables.Production == nil {
			t.Errorf("Load(%q) returned nil tables", dir)
		}
	}
}

func TestLoad_NotADirectory(t *testing.T) {
	dir := writeFiles(t, map[string]string{"flag.js": "module.exports = true"})

	tables := load(t, filepath.Join(dir, "flag.js"))
	if len(tables.Development)+len(tables.Production) != 0 {
		t.Errorf("Load(file) = %v, want empty tables", tables)
	}
}

func TestLoad_ModuleDefinition(t *testing.T) {
	dir := writeFiles(t, map[string]string{"flag.js": "module.exports = true"})

	tables := load(t, dir)
	want := Table{"FLAG": {Module: filepath.Join(dir, "flag.js")}}

	for _, env := range []Env{Development, Production} {
		if diff := cmp.Diff(want, tables.For(env)); diff != "" {
			t.Errorf("%s table mismatch (-want +got):\n%s", env, diff)
		}
	}
}

func TestLoad_MemberDefinitions(t *testing.T) {
	dir := writeFiles(t, map[string]string{"flags.json": `{"a": 1, "b": 2}`})

	tables := load(t, dir)
	module := filepath.Join(dir, "flags.json")
	want := Table{
		"A": {Module: module, Path: []string{"a"}},
		"B": {Module: module, Path: []string{"b"}},
	}

	if diff := cmp.Diff(want, tables.Production); diff != "" {
		t.Errorf("production table mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(want, tables.Development); diff != "" {
		t.Errorf("development table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MemberKeysAreNormalized(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"flags.yaml": "feature.flagX: true\napiUrl: https://example.com\n",
	})

	tables := load(t, dir)
	module := filepath.Join(dir, "flags.yaml")
	want := Table{
		"FEATURE.FLAG_X": {Module: module, Path: []string{"feature.flagX"}},
		"API_URL":        {Module: module, Path: []string{"apiUrl"}},
	}

	if diff := cmp.Diff(want, tables.Production); diff != "" {
		t.Errorf("production table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvironmentSpecific(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"thing-dev.js":  "module.exports = 'dev'",
		"thing-prod.js": "module.exports = 'prod'",
	})

	tables := load(t, dir)

	if got := tables.Development["THING"].Module; got != filepath.Join(dir, "thing-dev.js") {
		t.Errorf("development THING = %q", got)
	}

	if got := tables.Production["THING"].Module; got != filepath.Join(dir, "thing-prod.js") {
		t.Errorf("production THING = %q", got)
	}

	if len(tables.Development) != 1 || len(tables.Production) != 1 {
		t.Errorf("unexpected extra definitions: %v", tables)
	}
}

func TestLoad_EnvironmentOverridesShared(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"api.js":     "module.exports = 'shared'",
		"api-dev.js": "module.exports = 'dev'",
	})

	tables := load(t, dir)

	if got := tables.Development["API"].Module; got != filepath.Join(dir, "api-dev.js") {
		t.Errorf("development API = %q, want the dev file", got)
	}

	if got := tables.Production["API"].Module; got != filepath.Join(dir, "api.js") {
		t.Errorf("production API = %q, want the shared file", got)
	}
}

func TestLoad_CallableKeepsRawName(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"makeThing-fn.js":     "module.exports = () => 1",
		"debugOnly-fn-dev.js": "module.exports = () => 2",
	})

	tables := load(t, dir)

	if _, ok := tables.Production["makeThing"]; !ok {
		t.Errorf("production table %v missing raw key makeThing", tables.Production)
	}

	if _, ok := tables.Production["MAKE_THING"]; ok {
		t.Error("callable key was normalized")
	}

	if _, ok := tables.Development["debugOnly"]; !ok {
		t.Errorf("development table %v missing debugOnly", tables.Development)
	}

	if _, ok := tables.Production["debugOnly"]; ok {
		t.Error("development callable leaked into production")
	}
}

func TestLoad_StaticScript(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"consts-static.js": `
const base = { timeout: 30 };
module.exports = Object.assign({}, base, { maxRetries: 3 });
`,
	})

	tables := load(t, dir)
	module := filepath.Join(dir, "consts-static.js")
	want := Table{
		"TIMEOUT":     {Module: module, Path: []string{"timeout"}},
		"MAX_RETRIES": {Module: module, Path: []string{"maxRetries"}},
	}

	if diff := cmp.Diff(want, tables.Production); diff != "" {
		t.Errorf("production table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_SkipsHiddenAndDirectories(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		".eslintrc":      "{}",
		"nested/deep.js": "module.exports = 1",
		"flag.js":        "module.exports = 1",
	})

	tables := load(t, dir)
	if diff := cmp.Diff([]string{"FLAG"}, tables.Production.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		want    error
		wantKey string
	}{
		{
			name:    "duplicate across extensions",
			files:   map[string]string{"x.js": "", "x.json": `{"x": 1}`},
			want:    pkg.ErrDuplicateDefinition,
			wantKey: "X",
		},
		{
			name:    "duplicate within environment",
			files:   map[string]string{"a-dev.json": `{"k": 1}`, "b-dev.yaml": "k: 2"},
			want:    pkg.ErrDuplicateDefinition,
			wantKey: "K",
		},
		{
			name:  "unsupported extension",
			files: map[string]string{"flag.js": "", "notes.txt": "hello"},
			want:  pkg.ErrUnsupportedExtension,
		},
		{
			name:  "malformed json",
			files: map[string]string{"broken.json": `{"a": `},
			want:  pkg.ErrMalformedDefinition,
		},
		{
			name:  "array root",
			files: map[string]string{"list.json": `[1, 2]`},
			want:  pkg.ErrMalformedDefinition,
		},
		{
			name:  "static script throws",
			files: map[string]string{"bad-static.js": `throw new Error("no")`},
			want:  pkg.ErrMalformedDefinition,
		},
		{
			name:  "static script requires",
			files: map[string]string{"dep-static.js": `module.exports = require("x")`},
			want:  pkg.ErrMalformedDefinition,
		},
		{
			name:  "static script exports primitive",
			files: map[string]string{"n-static.js": `module.exports = 42`},
			want:  pkg.ErrMalformedDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.files)

			_, err := Load(dir, WithLogger(log.Discard()))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Load() error = %v, want %v", err, tt.want)
			}

			var de *Error
			if !errors.As(err, &de) {
				t.Fatalf("Load() error %T is not *define.Error", err)
			}

			if de.Key != tt.wantKey {
				t.Errorf("error key = %q, want %q", de.Key, tt.wantKey)
			}
		})
	}
}

func TestLoad_SameKeySharedAndEnvironmentIsNotDuplicate(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"x.json":      `{"x": 1}`,
		"x-prod.json": `{"x": 2}`,
	})

	tables := load(t, dir)

	if got := tables.Production["X"].Module; got != filepath.Join(dir, "x-prod.json") {
		t.Errorf("production X = %q", got)
	}

	if got := tables.Development["X"].Module; got != filepath.Join(dir, "x.json") {
		t.Errorf("development X = %q", got)
	}
}

func TestLoad_Deterministic(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.json":  `{"one": 1, "two": 2}`,
		"b.js":    "",
		"c-fn.js": "",
	})

	first := load(t, dir)
	second := load(t, dir)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated loads differ (-first +second):\n%s", diff)
	}
}

func TestTables_Override(t *testing.T) {
	dir := writeFiles(t, map[string]string{"flag.js": ""})
	tables := load(t, dir)

	override := Target{Module: "./mock-flag.js"}
	got := tables.Override(map[string]Target{
		"FLAG":       override,
		"extra.name": {Module: "lodash", Path: []string{"get"}},
	})

	for _, env := range []Env{Development, Production} {
		table := got.For(env)

		if !table["FLAG"].Equal(override) {
			t.Errorf("%s FLAG = %v, want %v", env, table["FLAG"], override)
		}

		if _, ok := table["extra.name"]; !ok {
			t.Errorf("%s table missing verbatim override key", env)
		}
	}

	if tables.Production["FLAG"].Equal(override) {
		t.Error("Override modified the receiver")
	}
}

func TestTable_Keys(t *testing.T) {
	table := Table{"b": {}, "A.B": {}, "a": {}}

	if diff := cmp.Diff([]string{"A.B", "a", "b"}, table.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}
