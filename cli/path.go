package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/xprovide/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config"

// Configuration file extensions, in the order they are loaded. Values from a
// later file take precedence.
const (
	extJSON = ".json"
	extYAML = ".yaml"
	extYML  = ".yml"
)

// defaultDirMode is the permission mode of created directories.
const defaultDirMode os.FileMode = 0o700

// configPath returns the path formed by joining the configuration directory
// with the given path elements.
//
// If no elements are given, it is equivalent to calling [pkg.ConfigDir].
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
