package define

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/xprovide/log"
	"github.com/ardnew/xprovide/pkg"
)

type loader struct {
	logger log.Logger
}

// Option configures [Load].
type Option = pkg.Option[loader]

// WithLogger sets the logger used to report progress. The default is
// [log.Default].
func WithLogger(logger log.Logger) Option {
	return func(l loader) loader {
		l.logger = logger

		return l
	}
}

// Load reads the definition files directly inside dir and returns the merged
// tables of both environments.
//
// An empty dir, or a path that does not name a directory, yields empty
// tables and no error. Subdirectories and hidden files are ignored. Entries
// are processed in lexical order, so the result and any error are
// deterministic.
func Load(dir string, opts ...Option) (Tables, error) {
	l := pkg.Apply(loader{logger: log.Default()}, opts...)
	logger := l.logger.With(slog.String("dir", dir))

	if dir == "" {
		logger.Debug("no definitions directory")

		return EmptyTables(), nil
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Debug("definitions directory not found")

		return EmptyTables(), nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return Tables{}, pkg.ErrReadDefinitions.Wrap(err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return Tables{}, pkg.ErrReadDefinitions.Wrap(err)
	}

	reg := newRegistry()

	for _, de := range entries {
		if skip(abs, de) {
			logger.Trace("skip", slog.String("file", de.Name()))

			continue
		}

		e, err := classify(de.Name())
		if err != nil {
			return Tables{}, err
		}

		if err := l.register(reg, abs, e); err != nil {
			return Tables{}, err
		}
	}

	tables := reg.merge()

	logger.Debug("loaded definitions",
		slog.Int(Development.String(), len(tables.Development)),
		slog.Int(Production.String(), len(tables.Production)),
	)

	return tables, nil
}

// skip reports whether a directory entry is not a definition file.
func skip(dir string, de fs.DirEntry) bool {
	if strings.HasPrefix(de.Name(), ".") {
		return true
	}

	if de.IsDir() {
		return true
	}

	if de.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, de.Name()))

		return err != nil || info.IsDir()
	}

	return false
}

// register adds the definitions contributed by one classified file.
func (l loader) register(reg *registry, dir string, e entry) error {
	module := filepath.Join(dir, e.file)

	logger := l.logger.With(
		slog.String("file", e.file),
		slog.String("env", e.env.String()),
		slog.String("strategy", e.strategy.String()),
	)

	add := func(key string, target Target) error {
		if err := reg.add(e, key, target); err != nil {
			return err
		}

		logger.Trace("define", slog.String("key", key), slog.String("target", target.String()))

		return nil
	}

	switch e.strategy {
	case strategyCallable:
		return add(e.name, Target{Module: module})

	case strategyModule:
		return add(Key(e.name), Target{Module: module})

	case strategyMembers:
		data, err := os.ReadFile(module)
		if err != nil {
			return pkg.ErrReadDefinitions.Wrap(err)
		}

		members, err := memberKeys(e, data)
		if err != nil {
			return errMalformedDefinition(e.file, err)
		}

		for _, member := range members {
			if err := add(Key(member), Target{Module: module, Path: []string{member}}); err != nil {
				return err
			}
		}
	}

	return nil
}
