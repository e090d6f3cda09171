package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/ardnew/xprovide/lang"
	"github.com/ardnew/xprovide/log"
	"github.com/ardnew/xprovide/pkg"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// source is one input module.
type source struct {
	name string
	text string
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: uint64(stat.Ino)}, true //nolint:unconvert
}

// readSources reads every named source in order. Paths naming the same file
// are read once; every occurrence of "-" names the single stdin reader of
// ctx, which is read where it first appears.
func readSources(ctx context.Context, paths []string) ([]source, error) {
	var (
		out   []source
		stdin bool
	)

	seen := make(map[fileKey]struct{})

	for _, path := range paths {
		if path == stdinSource {
			if stdin {
				continue
			}

			stdin = true

			data, err := io.ReadAll(inputFrom(ctx))
			if err != nil {
				return nil, pkg.ErrReadInput.Wrap(err)
			}

			out = append(out, source{name: "<stdin>", text: string(data)})

			continue
		}

		src, ok, err := readUniqueFile(path, seen)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, src)
		} else {
			log.DebugContext(ctx, "skip duplicate source", slog.String("path", path))
		}
	}

	return out, nil
}

// readUniqueFile reads the file at path unless a file with the same device
// and inode was already read.
func readUniqueFile(path string, seen map[fileKey]struct{}) (source, bool, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return source{}, false, pkg.ErrReadInput.Wrap(err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return source{}, false, pkg.ErrReadInput.Wrap(err)
	}

	if key, ok := makeFileKey(info); ok {
		if _, exists := seen[key]; exists {
			return source{}, false, nil
		}

		seen[key] = struct{}{}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return source{}, false, pkg.ErrReadInput.Wrap(err)
	}

	return source{name: path, text: string(data)}, true, nil
}

// process parses src, attaches the definitions of the active mode and runs
// the module.
func process(ctx context.Context, src source) (*lang.Module, error) {
	p, err := pluginFrom(ctx)
	if err != nil {
		return nil, err
	}

	m, err := lang.Parse(src.name, src.text, lang.WithLogger(log.Default()))
	if err != nil {
		return nil, ErrSource.With(slog.String("source", src.name)).Wrap(err)
	}

	p.Attach(m, m, modeFrom(ctx))

	if err := m.Run(); err != nil {
		return nil, ErrSource.With(slog.String("source", src.name)).Wrap(err)
	}

	return m, nil
}
