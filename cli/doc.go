// Package cli contains the command line interface for xprovide.
//
// # Usage
//
//	xprovide [flags] <command> [args]
//
// Global flags select the definitions and the environment they are read for:
//
//   - --path, -p: the definitions directory. Without it every table is empty
//     and no reference is rewritten.
//   - --mode, -m: the host build mode. "development" (or "dev") selects the
//     development table; anything else selects production.
//   - --override, -o: KEY=module[#member] replaces or adds a definition in
//     both environments. Repeatable.
//
// Commands:
//
//   - defs: list the definitions of the active mode, or with --all those of
//     both environments.
//   - lookup KEY: show the target and substitute identifier of a definition.
//   - scan FILE...: report the provided references found in source modules.
//   - rewrite FILE: print a source module with its provided references
//     substituted and the required imports listed first.
//   - init: write the current flag values to the configuration file.
//   - version: print the program version.
//
// # Configuration
//
// Flags are read from config.json and then config.yaml (or config.yml) in the
// user configuration directory, for example ~/.config/xprovide. Keys are flag
// names; see [loadYAML] for the YAML form. Command-line flags take
// precedence.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
// The build then accepts:
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default
//     ~/.cache/xprovide/pprof)
//
// # Examples
//
//	# List development definitions
//	xprovide -p ./defs -m development defs
//
//	# Rewrite a module for production with one definition mocked
//	xprovide -p ./defs -o API=./mock/api.js rewrite main.expr
package cli
