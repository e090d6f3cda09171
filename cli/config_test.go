package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func TestLoadYAML(t *testing.T) {
	const doc = `
path: ./defs
log_level: debug
log-caller: true
jobs: 4
ratio: 0.5
override:
  API: ./mock/api.js
  PORT: 8080
`

	r, err := loadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("loadYAML() error: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"path", "./defs"},
		{"log-level", "debug"},
		{"log-caller", true},
		{"jobs", "4"},
		{"ratio", "0.5"},
		{"override", map[string]any{"API": "./mock/api.js", "PORT": "8080"}},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: tt.flag}})
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.flag, diff)
			}
		})
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	r, err := loadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("loadYAML() error: %v", err)
	}

	got, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "path"}})
	if err != nil || got != nil {
		t.Errorf("Resolve() = %v, %v; want nil, nil", got, err)
	}
}

func TestLoadYAML_Malformed(t *testing.T) {
	if _, err := loadYAML(strings.NewReader("path: [unterminated")); err == nil {
		t.Error("loadYAML() succeeded on malformed input")
	}
}
