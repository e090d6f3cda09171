package define

import (
	"path/filepath"
	"strings"
)

// Name suffixes recognized before the file extension.
const (
	SuffixDevelopment = "-dev"
	SuffixProduction  = "-prod"
	SuffixCallable    = "-fn"
	SuffixStatic      = "-static"
)

// Recognized file extensions.
const (
	ExtScript = ".js"
	ExtJSON   = ".json"
	ExtYAML   = ".yaml"
	ExtYML    = ".yml"
)

// strategy selects how a definition file becomes table entries.
type strategy int

const (
	// One entry, keyed by the normalized file name, targeting the module.
	strategyModule strategy = iota
	// One entry, keyed by the raw file name, targeting the module.
	strategyCallable
	// One entry per top-level member of the file's exported object.
	strategyMembers
)

func (s strategy) String() string {
	switch s {
	case strategyModule:
		return "module"
	case strategyCallable:
		return "callable"
	case strategyMembers:
		return "members"
	default:
		return "unknown"
	}
}

// entry is the classification of one definition file.
type entry struct {
	file     string // base name
	name     string // base name without extension and suffixes
	ext      string
	env      Env
	strategy strategy
}

// classify derives the environment and strategy of a definition file from
// its base name. The environment suffix is removed before the strategy
// suffix, so "helper-fn-dev.js" is a development callable named "helper".
func classify(file string) (entry, error) {
	ext := filepath.Ext(file)
	e := entry{
		file: file,
		name: strings.TrimSuffix(file, ext),
		ext:  ext,
		env:  Shared,
	}

	switch {
	case strings.HasSuffix(e.name, SuffixDevelopment):
		e.name = strings.TrimSuffix(e.name, SuffixDevelopment)
		e.env = Development
	case strings.HasSuffix(e.name, SuffixProduction):
		e.name = strings.TrimSuffix(e.name, SuffixProduction)
		e.env = Production
	}

	switch ext {
	case ExtScript:
		switch {
		case strings.HasSuffix(e.name, SuffixCallable):
			e.name = strings.TrimSuffix(e.name, SuffixCallable)
			e.strategy = strategyCallable
		case strings.HasSuffix(e.name, SuffixStatic):
			e.name = strings.TrimSuffix(e.name, SuffixStatic)
			e.strategy = strategyMembers
		default:
			e.strategy = strategyModule
		}

	case ExtJSON, ExtYAML, ExtYML:
		e.strategy = strategyMembers

	default:
		return entry{}, errUnsupportedExtension(file, ext)
	}

	return e, nil
}
