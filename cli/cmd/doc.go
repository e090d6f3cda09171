// Package cmd implements the xprovide subcommands.
//
// Commands read their dependencies from the context prepared by package cli:
// the definitions plugin ([WithPlugin]), the host build mode ([WithMode]) and
// the output writer ([WithOutput]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
