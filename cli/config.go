package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// loadYAML is a [kong.ConfigurationLoader] that reads a YAML configuration
// file such as the one written by the init command.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML, "/path/to/config.yaml")
//
// Keys are flag names. Hyphens may be written as underscores, so "log-level"
// and "log_level" both configure --log-level. Mapping values configure map
// flags such as --override:
//
//	path: ./defs
//	mode: development
//	log_level: debug
//	override:
//	  API: ./mock/api.js
//
// Command-line flags override configuration file values. An empty document
// configures nothing.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var values map[string]any

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}

	out := make(config, len(values))
	for key, val := range values {
		out[key] = scalar(val)
	}

	return out, nil
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	for _, name := range []string{
		flag.Name,
		strings.ReplaceAll(flag.Name, "-", "_"),
	} {
		if value, ok := r[name]; ok {
			return value, nil
		}
	}

	// Not found: kong keeps the default.
	return nil, nil
}

// scalar converts a decoded YAML value into a form kong can parse. Kong
// parses numbers from strings, and decodes map flags from map[string]any.
func scalar(val any) any {
	switch v := val.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any:
		m := make(map[string]any, len(v))
		for key, elem := range v {
			m[key] = scalar(elem)
		}

		return m
	default:
		return v
	}
}
