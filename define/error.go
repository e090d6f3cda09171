package define

import (
	"log/slog"

	"github.com/ardnew/xprovide/pkg"
)

// Error is a load-time error that names the file, key and environment it
// concerns. It wraps one of the sentinels in package pkg, so callers match
// it with errors.Is.
type Error struct {
	File string // base name of the offending file, if any
	Key  string // definition key, if any
	Env  Env    // classification the key was registered in

	err error
}

func newError(err error, file, key string, env Env) *Error {
	return &Error{File: file, Key: key, Env: env, err: err}
}

// Error implements the error interface.
func (e *Error) Error() string { return e.err.Error() }

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("error", e.err.Error())}

	if e.File != "" {
		attrs = append(attrs, slog.String("file", e.File))
	}

	if e.Key != "" {
		attrs = append(attrs,
			slog.String("key", e.Key),
			slog.String("env", e.Env.String()),
		)
	}

	return slog.GroupValue(attrs...)
}

func errUnsupportedExtension(file, ext string) *Error {
	return newError(
		pkg.ErrUnsupportedExtension.Wrapf("%s: %q", file, ext),
		file, "", Shared,
	)
}

func errDuplicateDefinition(file, prev, key string, env Env) *Error {
	return newError(
		pkg.ErrDuplicateDefinition.Wrapf(
			"%s: a definition named %q already exists for %s (from %s)",
			file, key, env, prev,
		),
		file, key, env,
	)
}

func errMalformedDefinition(file string, cause error) *Error {
	return newError(
		pkg.ErrMalformedDefinition.Wrapf("%s", file).Wrap(cause),
		file, "", Shared,
	)
}
